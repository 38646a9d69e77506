package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelscout/reelscout/config"
	"github.com/reelscout/reelscout/models"
	"github.com/reelscout/reelscout/webhook"
)

// ImportVideo returns a handler for POST /api/v1/videos/import.
//
// The page is scraped, user overrides are merged over the scraped values,
// a video source is selected, and the merged record is handed to the
// persistence boundary. When the scrape finds no playable source the
// request fails with 422 and persistence is never called.
func ImportVideo(sc ProductScraper, creator VideoCreator, whCfg config.WebhookConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		var req models.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ImportResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		scrapeStart := time.Now()
		result, err := sc.ScrapeProductPage(c.Request.Context(), req.URL)
		scrapeMs := time.Since(scrapeStart).Milliseconds()

		if err == nil && len(result.VideoSources) == 0 {
			err = models.NewScrapeError(models.ErrCodeNoVideo,
				fmt.Sprintf("no playable video source found at %s", req.URL), nil)
		}
		if err != nil {
			scrapeErr := asScrapeError(err)
			c.JSON(mapErrorToStatus(scrapeErr), models.ImportResponse{
				Success: false,
				Error:   scrapeErr.ToDetail(),
				Timing: models.TimingInfo{
					TotalMs:  time.Since(totalStart).Milliseconds(),
					ScrapeMs: scrapeMs,
				},
			})
			return
		}

		source := chooseSource(result.VideoSources, req.PreferredVideoURL)
		video := mergeOverrides(result, &req, source)

		created, err := creator.CreateVideo(c.Request.Context(), video)
		if err != nil {
			scrapeErr := asScrapeError(err)
			c.JSON(mapErrorToStatus(scrapeErr), models.ImportResponse{
				Success: false,
				Error:   scrapeErr.ToDetail(),
				Timing: models.TimingInfo{
					TotalMs: time.Since(totalStart).Milliseconds(),
				},
			})
			return
		}

		if whCfg.URL != "" {
			webhook.DeliverAsync(whCfg.URL, whCfg.Secret, &webhook.Event{
				Type:      "video.imported",
				VideoID:   created.ID,
				Timestamp: time.Now().Unix(),
				Data:      created,
			})
		}

		c.JSON(http.StatusCreated, models.ImportResponse{
			Success: true,
			Video:   created,
			Timing: models.TimingInfo{
				TotalMs:  time.Since(totalStart).Milliseconds(),
				ScrapeMs: scrapeMs,
			},
		})
	}
}

// chooseSource picks the source matching the client's preferred URL, or
// the first (highest-ranked) source when no preference matches.
func chooseSource(sources []models.VideoSource, preferred string) models.VideoSource {
	if preferred != "" {
		for _, s := range sources {
			if s.URL == preferred {
				return s
			}
		}
	}
	return sources[0]
}

// mergeOverrides lays user-supplied fields over the scraped result.
func mergeOverrides(result *models.ScrapeResult, req *models.ImportRequest, source models.VideoSource) *models.Video {
	video := &models.Video{
		Title:           firstNonEmpty(req.Title, result.Title, "Untitled demo"),
		Description:     firstNonEmpty(req.Description, result.Description),
		ProductURL:      firstNonEmpty(req.ProductURL, result.CanonicalURL, result.OriginalURL),
		ThumbnailURL:    firstNonEmpty(req.ThumbnailURL, result.ThumbnailURL),
		VideoURL:        source.URL,
		SourceType:      source.Type,
		DurationSeconds: result.DurationSeconds,
	}

	seen := make(map[string]struct{})
	for _, tag := range append(append([]string{}, req.Tags...), result.Tags...) {
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		video.Tags = append(video.Tags, tag)
		if len(video.Tags) == 20 {
			break
		}
	}

	return video
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
