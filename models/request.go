package models

// PreviewRequest is the payload for POST /api/v1/scrape/preview.
type PreviewRequest struct {
	// URL is the product page to scrape. Required.
	URL string `json:"url" binding:"required,url"`

	// MaxAge enables the preview cache: a cached result younger than
	// MaxAge milliseconds is returned instead of re-scraping.
	// Default: 0 (no caching).
	MaxAge int `json:"max_age_ms,omitempty" binding:"omitempty,min=0"`
}

// ImportRequest is the payload for POST /api/v1/videos/import.
// All fields other than URL are optional overrides merged over the
// scraped values.
type ImportRequest struct {
	// URL is the product page to scrape. Required.
	URL string `json:"url" binding:"required,url"`

	Title       string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description string `json:"description,omitempty" binding:"omitempty,max=5000"`

	// ProductURL overrides the stored product link (defaults to the
	// canonical URL, falling back to the fetched URL).
	ProductURL string `json:"product_url,omitempty" binding:"omitempty,url"`

	ThumbnailURL string `json:"thumbnail_url,omitempty" binding:"omitempty,url"`

	// PreferredVideoURL selects one of the discovered video sources.
	// When unset, the first source after sorting is used.
	PreferredVideoURL string `json:"preferred_video_url,omitempty" binding:"omitempty,url"`

	// Tags are prepended to the scraped tags.
	Tags []string `json:"tags,omitempty" binding:"omitempty,max=20,dive,max=50"`
}
