package models

// SourceType classifies a discovered video source.
type SourceType string

const (
	// SourceTypeFile is a progressive-download file (mp4, webm, mov, m4v).
	SourceTypeFile SourceType = "file"

	// SourceTypeHLS is an HTTP Live Streaming manifest (m3u8).
	SourceTypeHLS SourceType = "hls"

	// SourceTypeUnknown is a source whose playback type could not be
	// determined from any signal. Unknown sources never survive into the
	// final ScrapeResult.
	SourceTypeUnknown SourceType = "unknown"
)

// VideoSource is one playable video candidate discovered on a page.
type VideoSource struct {
	// URL is the absolute, normalized source URL.
	URL string `json:"url"`

	// Type is the playback type. Only "file" and "hls" appear in results.
	Type SourceType `json:"type"`

	// Label describes which signal discovered the source,
	// e.g. "OpenGraph video", "Inline video 1", "Video source 1.2".
	Label string `json:"label,omitempty"`

	// MimeType is the declared MIME type, when a signal supplied one.
	MimeType string `json:"mime_type,omitempty"`
}

// ScrapeResult is the normalized outcome of scraping one product page.
// It is constructed once per scrape and never mutated afterwards.
type ScrapeResult struct {
	// OriginalURL is the fetched URL after following redirects.
	OriginalURL string `json:"original_url"`

	// CanonicalURL is the page's self-declared canonical URL, absolute.
	CanonicalURL string `json:"canonical_url,omitempty"`

	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// Tags holds at most 20 entries, each at most 50 characters.
	Tags []string `json:"tags"`

	// VideoSources is deduplicated by normalized URL and sorted so that
	// file sources precede HLS sources.
	VideoSources []VideoSource `json:"video_sources"`

	// DurationSeconds is the rounded video duration, 0 when unknown.
	DurationSeconds int `json:"duration_seconds,omitempty"`
}

// Video is a stored demo-video record created by the import flow.
type Video struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	ProductURL      string     `json:"product_url"`
	ThumbnailURL    string     `json:"thumbnail_url,omitempty"`
	VideoURL        string     `json:"video_url"`
	SourceType      SourceType `json:"source_type"`
	DurationSeconds int        `json:"duration_seconds,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	CreatedAt       int64      `json:"created_at"`
}
