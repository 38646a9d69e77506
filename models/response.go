package models

// PreviewResponse is the response for POST /api/v1/scrape/preview.
type PreviewResponse struct {
	// Success indicates whether the scrape completed without errors.
	Success bool `json:"success"`

	// Result is the extracted metadata, populated only on success.
	Result *ScrapeResult `json:"result,omitempty"`

	// CacheStatus indicates whether the response was served from cache.
	// Values: "hit", "miss", or empty (caching not requested).
	CacheStatus string `json:"cache_status,omitempty"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// ImportResponse is the response for POST /api/v1/videos/import.
type ImportResponse struct {
	Success bool `json:"success"`

	// Video is the created record, populated only on success.
	Video *Video `json:"video,omitempty"`

	Timing TimingInfo `json:"timing"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// VideoResponse is the response for GET /api/v1/videos/:id.
type VideoResponse struct {
	Success bool         `json:"success"`
	Video   *Video       `json:"video,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// TimingInfo breaks down the time spent in each phase.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`

	// ScrapeMs is the time spent fetching and extracting the page.
	ScrapeMs int64 `json:"scrape_ms,omitempty"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"` // "healthy"
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
