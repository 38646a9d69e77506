package scraper

import (
	"regexp"
	"strings"
)

// attrPattern matches one name="value" or name='value' pair inside a tag.
var attrPattern = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_:.-]*)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

// parseTagAttrs extracts an attribute map from one raw tag substring
// (e.g. a whole `<meta ...>` match). Attribute names are lower-cased;
// values are entity-decoded and trimmed. Malformed attributes are simply
// absent from the map — this function never fails.
func parseTagAttrs(tag string) map[string]string {
	matches := attrPattern.FindAllStringSubmatch(tag, -1)
	if len(matches) == 0 {
		return nil
	}

	attrs := make(map[string]string, len(matches))
	for _, m := range matches {
		name := strings.ToLower(m[1])
		value := m[2]
		if value == "" {
			value = m[3]
		}
		if _, exists := attrs[name]; exists {
			// First occurrence wins on duplicate attributes.
			continue
		}
		attrs[name] = strings.TrimSpace(decodeEntities(value))
	}
	return attrs
}
