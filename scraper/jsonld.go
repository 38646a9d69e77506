package scraper

import (
	"encoding/json"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/reelscout/reelscout/models"
)

var (
	jsonLDPattern      = regexp.MustCompile(`(?is)<script[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// containerProperties are structured-data properties that commonly nest
// the entities we care about; they are walked first, before the
// object-valued-property fallback.
var containerProperties = []string{
	"video", "hasVideo", "itemListElement", "associatedMedia",
	"subjectOf", "mentions", "offers", "potentialAction", "mainEntity",
}

// collectJSONLD parses every <script type="application/ld+json"> block and
// walks the resulting graph. Blocks that fail to parse are skipped; a
// parse failure never aborts the scrape.
func collectJSONLD(e *extraction, html string) {
	for _, m := range jsonLDPattern.FindAllStringSubmatch(html, -1) {
		raw := strings.TrimSpace(htmlCommentPattern.ReplaceAllString(m[1], ""))
		if raw == "" {
			continue
		}

		var node any
		if err := json.Unmarshal([]byte(raw), &node); err != nil {
			// Some sites emit bare comma-joined objects; retry as an array.
			if strings.HasPrefix(raw, "[") {
				continue
			}
			if err := json.Unmarshal([]byte("["+raw+"]"), &node); err != nil {
				continue
			}
		}

		walkStructuredData(e, node, make(map[uintptr]struct{}))
	}
}

// walkStructuredData recurses through one JSON-LD graph, harvesting
// VideoObject and Product nodes. The visited set is keyed by node
// identity (the map's backing pointer), not structural equality, so
// cyclic or heavily cross-referenced graphs terminate while
// structurally-equal-but-distinct nodes are still both walked.
func walkStructuredData(e *extraction, node any, visited map[uintptr]struct{}) {
	switch n := node.(type) {
	case []any:
		for _, item := range n {
			walkStructuredData(e, item, visited)
		}
	case map[string]any:
		ptr := reflect.ValueOf(n).Pointer()
		if _, seen := visited[ptr]; seen {
			return
		}
		visited[ptr] = struct{}{}

		switch nodeType(n) {
		case "videoobject":
			harvestVideoObject(e, n)
		case "product":
			harvestProduct(e, n)
		}

		walked := make(map[string]struct{}, len(containerProperties))
		for _, prop := range containerProperties {
			if child, ok := n[prop]; ok {
				walked[prop] = struct{}{}
				walkStructuredData(e, child, visited)
			}
		}

		// Fallback: any other object-valued property may hide the video.
		// Keys are sorted so traversal order is deterministic.
		rest := make([]string, 0, len(n))
		for key, value := range n {
			if _, done := walked[key]; done {
				continue
			}
			switch value.(type) {
			case map[string]any, []any:
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			walkStructuredData(e, n[key], visited)
		}
	}
}

// nodeType returns the node's @type (or type) lower-cased. Multi-typed
// nodes yield their first string entry.
func nodeType(node map[string]any) string {
	raw, ok := node["@type"]
	if !ok {
		raw = node["type"]
	}

	switch t := raw.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(t))
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				return strings.ToLower(strings.TrimSpace(s))
			}
		}
	}
	return ""
}

func harvestVideoObject(e *extraction, node map[string]any) {
	if name, ok := node["name"].(string); ok {
		e.addTitle(name)
	}
	if desc, ok := node["description"].(string); ok {
		e.addDescription(desc)
	}
	if thumb := firstString(node["thumbnailUrl"]); thumb != "" {
		e.addThumbnail(thumb)
	}
	if duration, ok := node["duration"]; ok {
		e.addDuration(duration)
	}

	encodingFormat, _ := node["encodingFormat"].(string)
	if contentURL, ok := node["contentUrl"].(string); ok {
		e.sources.add(contentURL, encodingFormat, "Structured data video")
	}
	if embedURL, ok := node["embedUrl"].(string); ok {
		// Embed URLs are usually player pages, not media; admit them only
		// when an explicit playable type is inferable.
		if inferSourceType(embedURL, encodingFormat) != models.SourceTypeUnknown {
			e.sources.add(embedURL, encodingFormat, "Structured data embed")
		}
	}

	switch keywords := node["keywords"].(type) {
	case string:
		e.addTagList(keywords)
	case []any:
		for _, item := range keywords {
			if s, ok := item.(string); ok {
				e.addTag(s)
			}
		}
	}
}

func harvestProduct(e *extraction, node map[string]any) {
	if name, ok := node["name"].(string); ok {
		e.addTitle(name)
	}
	if desc, ok := node["description"].(string); ok {
		e.addDescription(desc)
	}
	if image := firstString(node["image"]); image != "" {
		e.addThumbnail(image)
	}

	switch brand := node["brand"].(type) {
	case string:
		e.addTag(brand)
	case map[string]any:
		if name, ok := brand["name"].(string); ok {
			e.addTag(name)
		}
	}
}

// firstString accepts a string or an array and returns the first string
// value found, or "".
func firstString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return s
			}
		}
	}
	return ""
}
