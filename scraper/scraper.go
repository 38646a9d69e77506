// Package scraper extracts demo-video metadata and playable video sources
// from third-party product pages.
//
// The engine deliberately avoids a DOM tree: third-party markup is often
// malformed, and a tree parser changes failure semantics where the
// independent single-pass regex scanners here degrade gracefully. Every
// scanner shares one attribute tokenizer and one entity decoder; their
// signals converge in an extraction context whose candidate-list order
// defines scalar precedence, and in a registry that merges video
// candidates by normalized URL.
package scraper

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/reelscout/reelscout/config"
	"github.com/reelscout/reelscout/models"
)

// Scraper is the product-page extraction engine. It holds no per-scrape
// state; one instance serves any number of concurrent scrapes.
type Scraper struct {
	fetcher *fetcher
}

// NewScraper creates a Scraper from the fetch configuration.
func NewScraper(cfg config.ScraperConfig) *Scraper {
	return &Scraper{fetcher: newFetcher(cfg)}
}

// ScrapeProductPage fetches rawURL and extracts a normalized ScrapeResult.
//
// Fatal conditions (bad URL, fetch failure, non-success status, non-HTML
// content type) surface as *models.ScrapeError and no partial result is
// returned. Local parsing problems inside the page never abort the
// scrape; the affected signal is simply skipped.
func (s *Scraper) ScrapeProductPage(ctx context.Context, rawURL string) (*models.ScrapeResult, error) {
	start := time.Now()

	finalURL, body, err := s.fetcher.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	pageURL, parseErr := url.Parse(finalURL)
	if parseErr != nil {
		return nil, models.NewScrapeError(models.ErrCodeInternal, "resolve final URL", parseErr)
	}

	result := extract(pageURL, body)

	slog.Debug("scraped product page",
		"url", finalURL,
		"title", result.Title,
		"sources", len(result.VideoSources),
		"tags", len(result.Tags),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// extract runs every collector over the raw HTML in fixed signal-priority
// order and assembles the immutable result.
//
// Scalar fields are strict first-wins across that order: meta tags beat
// <title>, which beats JSON-LD, which beats the inline and brute-force
// scanners. Video sources instead merge in the registry regardless of
// which signal arrived first.
func extract(pageURL *url.URL, body string) *models.ScrapeResult {
	e := newExtraction(pageURL)

	collectMetaTags(e, body)
	collectCanonicalLink(e, body)
	collectTitleTag(e, body)
	collectJSONLD(e, body)
	collectInlineVideos(e, body)
	collectDirectURLs(e, body)
	collectDataDurations(e, body)

	duration := 0
	if len(e.durations) > 0 {
		duration = e.durations[0]
	}

	return &models.ScrapeResult{
		OriginalURL:     pageURL.String(),
		CanonicalURL:    e.canonicalURL,
		Title:           firstCandidate(e.titles),
		Description:     firstCandidate(e.descriptions),
		ThumbnailURL:    firstCandidate(e.thumbnails),
		Tags:            e.cappedTags(),
		VideoSources:    e.sources.resolved(),
		DurationSeconds: duration,
	}
}
