package scraper

import "testing"

func TestParseTagAttrs(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want map[string]string
	}{
		{
			"double quoted",
			`<meta property="og:title" content="Demo A">`,
			map[string]string{"property": "og:title", "content": "Demo A"},
		},
		{
			"single quoted",
			`<meta name='description' content='hello world'>`,
			map[string]string{"name": "description", "content": "hello world"},
		},
		{
			"mixed quotes",
			`<source src="/v.mp4" type='video/mp4'>`,
			map[string]string{"src": "/v.mp4", "type": "video/mp4"},
		},
		{
			"upper-case names lowered",
			`<META PROPERTY="og:image" CONTENT="x.png">`,
			map[string]string{"property": "og:image", "content": "x.png"},
		},
		{
			"entity decoded and trimmed",
			`<meta content="  Tom &amp; Jerry  ">`,
			map[string]string{"content": "Tom & Jerry"},
		},
		{
			"whitespace around equals",
			`<video src = "clip.webm" poster =  'p.jpg'>`,
			map[string]string{"src": "clip.webm", "poster": "p.jpg"},
		},
		{
			"unquoted value skipped",
			`<meta name=keywords content="go,video">`,
			map[string]string{"content": "go,video"},
		},
		{
			"duplicate attribute first wins",
			`<meta content="first" content="second">`,
			map[string]string{"content": "first"},
		},
		{
			"empty value",
			`<meta content="">`,
			map[string]string{"content": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTagAttrs(tt.tag)
			if len(got) != len(tt.want) {
				t.Fatalf("parseTagAttrs(%q) = %v, want %v", tt.tag, got, tt.want)
			}
			for k, want := range tt.want {
				if got[k] != want {
					t.Errorf("attr %q = %q, want %q", k, got[k], want)
				}
			}
		})
	}
}

func TestParseTagAttrsMalformed(t *testing.T) {
	// Malformed tags must never panic; unparseable attributes are absent.
	tags := []string{
		"",
		"<meta",
		`<meta ="orphan">`,
		`<meta content="unclosed>`,
		"<<<>>>",
		`<meta content='mismatched">`,
	}

	for _, tag := range tags {
		if attrs := parseTagAttrs(tag); attrs != nil {
			for name := range attrs {
				if name == "" {
					t.Errorf("parseTagAttrs(%q) produced an empty attribute name", tag)
				}
			}
		}
	}
}
