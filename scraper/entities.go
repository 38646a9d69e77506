package scraper

import (
	"strconv"
	"strings"
)

// namedEntities is the small set of named entities the decoder understands.
// Anything outside this set (and the numeric forms) is left verbatim.
var namedEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",
	"nbsp": " ",
}

// decodeEntities decodes named and numeric HTML entities in s.
// Unrecognized entities are copied through unchanged; the function
// never fails and never loses data.
func decodeEntities(s string) string {
	amp := strings.IndexByte(s, '&')
	if amp < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:amp])

	for i := amp; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}

		semi := strings.IndexByte(s[i+1:], ';')
		// Entity names are short; a far-away semicolon means this '&'
		// does not start an entity.
		if semi < 0 || semi > 10 {
			b.WriteByte('&')
			i++
			continue
		}

		name := s[i+1 : i+1+semi]
		if decoded, ok := decodeEntity(name); ok {
			b.WriteString(decoded)
			i += semi + 2
			continue
		}

		b.WriteByte('&')
		i++
	}

	return b.String()
}

// decodeEntity resolves one entity body (the text between '&' and ';').
func decodeEntity(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	if name[0] == '#' {
		num := name[1:]
		base := 10
		if len(num) > 1 && (num[0] == 'x' || num[0] == 'X') {
			num = num[1:]
			base = 16
		}
		code, err := strconv.ParseInt(num, base, 32)
		if err != nil || code <= 0 || code > 0x10FFFF {
			return "", false
		}
		return string(rune(code)), true
	}

	decoded, ok := namedEntities[strings.ToLower(name)]
	return decoded, ok
}
