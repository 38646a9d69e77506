package scraper

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "no entities here", "no entities here"},
		{"amp", "a &amp; b", "a & b"},
		{"lt gt", "&lt;video&gt;", "<video>"},
		{"quot", "say &quot;hi&quot;", `say "hi"`},
		{"apos named", "it&apos;s", "it's"},
		{"apos numeric", "it&#39;s", "it's"},
		{"nbsp", "a&nbsp;b", "a b"},
		{"decimal", "&#65;", "A"},
		{"hex lower", "&#x41;", "A"},
		{"hex upper", "&#X41;", "A"},
		{"unknown named left verbatim", "&copy; 2024", "&copy; 2024"},
		{"unterminated entity", "a &amp b", "a &amp b"},
		{"bare ampersand", "tom & jerry", "tom & jerry"},
		{"trailing ampersand", "end&", "end&"},
		{"double encoded", "&amp;amp;", "&amp;"},
		{"invalid numeric", "&#zz;", "&#zz;"},
		{"zero code point", "&#0;", "&#0;"},
		{"mixed", "A &lt;b&gt; &amp; &#67;", "A <b> & C"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeEntities(tt.in); got != tt.want {
				t.Errorf("decodeEntities(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
