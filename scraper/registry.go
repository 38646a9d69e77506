package scraper

import (
	"net/url"
	"strings"

	"github.com/reelscout/reelscout/models"
)

// fileExtensions are URL path suffixes treated as progressive files.
var fileExtensions = []string{".mp4", ".webm", ".mov", ".m4v"}

// sourceRegistry deduplicates and merges video candidates keyed by
// normalized absolute URL. It is the single convergence point for every
// video signal: unlike the scalar candidate lists (strict first-wins),
// later signals may still fill gaps in an existing entry.
type sourceRegistry struct {
	pageURL *url.URL
	entries map[string]*models.VideoSource
	order   []string
}

func newSourceRegistry(pageURL *url.URL) *sourceRegistry {
	return &sourceRegistry{
		pageURL: pageURL,
		entries: make(map[string]*models.VideoSource),
	}
}

// add records one video candidate.
//
// New keys are stored with a type inferred from the URL and mime type.
// Existing keys are merged: label and mime type fill in only when absent,
// and the type upgrades from unknown to an explicit type but is never
// downgraded or changed once explicit.
func (r *sourceRegistry) add(rawURL, mimeType, label string) {
	normalized, ok := r.normalize(rawURL)
	if !ok {
		return
	}

	if existing, found := r.entries[normalized]; found {
		if existing.Label == "" {
			existing.Label = label
		}
		if existing.MimeType == "" {
			existing.MimeType = mimeType
		}
		if existing.Type == models.SourceTypeUnknown {
			if inferred := inferSourceType(normalized, mimeType); inferred != models.SourceTypeUnknown {
				existing.Type = inferred
			}
		}
		return
	}

	r.entries[normalized] = &models.VideoSource{
		URL:      normalized,
		Type:     inferSourceType(normalized, mimeType),
		Label:    label,
		MimeType: mimeType,
	}
	r.order = append(r.order, normalized)
}

// normalize resolves a raw URL against the page URL and applies the fixed
// textual normalization used for dedup keys. data: URLs and empty values
// are rejected.
func (r *sourceRegistry) normalize(rawURL string) (string, bool) {
	raw := strings.TrimSpace(decodeEntities(rawURL))
	raw = strings.ReplaceAll(raw, "&amp;", "&")
	if raw == "" {
		return "", false
	}
	if strings.HasPrefix(strings.ToLower(raw), "data:") {
		return "", false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	resolved := r.pageURL.ResolveReference(parsed)
	if !resolved.IsAbs() {
		return "", false
	}
	return resolved.String(), true
}

// inferSourceType classifies a source from its URL and declared mime type.
func inferSourceType(sourceURL, mimeType string) models.SourceType {
	u := strings.ToLower(sourceURL)
	m := strings.ToLower(mimeType)

	if strings.Contains(u, ".m3u8") || strings.Contains(m, "m3u8") || strings.Contains(m, "mpegurl") {
		return models.SourceTypeHLS
	}

	path := u
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for _, ext := range fileExtensions {
		if strings.HasSuffix(path, ext) {
			return models.SourceTypeFile
		}
	}

	if strings.Contains(m, "mp4") || strings.Contains(m, "webm") || strings.Contains(m, "quicktime") {
		return models.SourceTypeFile
	}

	return models.SourceTypeUnknown
}

// resolved returns the final source list: entries still typed unknown are
// dropped, and the rest are stable-sorted so every file source precedes
// every HLS source, preserving discovery order within each group.
func (r *sourceRegistry) resolved() []models.VideoSource {
	files := make([]models.VideoSource, 0, len(r.order))
	var streams []models.VideoSource

	for _, key := range r.order {
		entry := r.entries[key]
		switch entry.Type {
		case models.SourceTypeFile:
			files = append(files, *entry)
		case models.SourceTypeHLS:
			streams = append(streams, *entry)
		}
	}

	return append(files, streams...)
}
