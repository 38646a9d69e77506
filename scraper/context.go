package scraper

import (
	"net/url"
	"strings"
)

const (
	maxTags      = 20
	maxTagLength = 50
)

// extraction accumulates candidates from every collector during one scrape.
// Each scalar field keeps an ordered candidate list; the collectors run in
// fixed signal-priority order, so the first entry of each list is the
// winning value. Video candidates go through the registry instead, which
// merges rather than ignoring later signals.
type extraction struct {
	pageURL *url.URL

	canonicalURL string
	titles       []string
	descriptions []string
	thumbnails   []string
	durations    []int

	tags    []string
	tagSeen map[string]struct{}

	sources *sourceRegistry
}

func newExtraction(pageURL *url.URL) *extraction {
	return &extraction{
		pageURL: pageURL,
		tagSeen: make(map[string]struct{}),
		sources: newSourceRegistry(pageURL),
	}
}

func (e *extraction) addTitle(raw string) {
	if v := strings.TrimSpace(raw); v != "" {
		e.titles = append(e.titles, v)
	}
}

func (e *extraction) addDescription(raw string) {
	if v := strings.TrimSpace(raw); v != "" {
		e.descriptions = append(e.descriptions, v)
	}
}

// addThumbnail resolves the candidate against the page URL before storing.
func (e *extraction) addThumbnail(raw string) {
	if v := e.resolveURL(raw); v != "" {
		e.thumbnails = append(e.thumbnails, v)
	}
}

// addDuration records an already-validated duration signal.
func (e *extraction) addDuration(value any) {
	if seconds, ok := normalizeDuration(value); ok {
		e.durations = append(e.durations, seconds)
	}
}

// addTag records one tag, deduplicating on the trimmed value. Truncation
// to the tag length cap happens at assembly so dedup sees full strings.
func (e *extraction) addTag(raw string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return
	}
	if _, seen := e.tagSeen[v]; seen {
		return
	}
	e.tagSeen[v] = struct{}{}
	e.tags = append(e.tags, v)
}

// addTagList splits a comma-separated keyword list into individual tags.
func (e *extraction) addTagList(raw string) {
	for _, part := range strings.Split(raw, ",") {
		e.addTag(part)
	}
}

// setCanonical records the canonical URL; only the first one sticks.
func (e *extraction) setCanonical(raw string) {
	if e.canonicalURL != "" {
		return
	}
	e.canonicalURL = e.resolveURL(raw)
}

// resolveURL turns a possibly-relative URL into an absolute one, or ""
// when the value is empty or unparseable.
func (e *extraction) resolveURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	resolved := e.pageURL.ResolveReference(parsed)
	if !resolved.IsAbs() {
		return ""
	}
	return resolved.String()
}

func firstCandidate(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}

// cappedTags returns at most maxTags entries, each truncated to
// maxTagLength runes.
func (e *extraction) cappedTags() []string {
	tags := e.tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if runes := []rune(tag); len(runes) > maxTagLength {
			tag = strings.TrimSpace(string(runes[:maxTagLength]))
		}
		out = append(out, tag)
	}
	return out
}
