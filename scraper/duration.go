package scraper

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// isoDurationPattern matches the restricted ISO-8601 duration form
// P(T(nH)?(nM)?(nS)?)? — hours, minutes and seconds only.
var isoDurationPattern = regexp.MustCompile(`(?i)^P(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// normalizeDuration converts a duration signal to whole seconds.
// It accepts a finite positive number of seconds or an ISO-8601 duration
// string, rounds to the nearest integer, and accepts only strictly
// positive results. The second return value reports whether a usable
// duration was found; anything else is silently discarded.
func normalizeDuration(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return roundSeconds(v)
	case int:
		return roundSeconds(float64(v))
	case string:
		return normalizeDurationString(v)
	default:
		return 0, false
	}
}

func normalizeDurationString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return roundSeconds(f)
	}

	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	total := durationPart(m[1])*3600 + durationPart(m[2])*60 + durationPart(m[3])
	return roundSeconds(total)
}

func durationPart(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func roundSeconds(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	seconds := int(math.Round(f))
	if seconds <= 0 {
		return 0, false
	}
	return seconds, true
}
