package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelscout/reelscout/cache"
	"github.com/reelscout/reelscout/models"
)

// Preview returns a handler for POST /api/v1/scrape/preview.
//
// Orchestration flow:
//  1. Parse & validate request.
//  2. Optional cache lookup (client opts in via max_age_ms).
//  3. Scrape the product page.
//  4. Return the full ScrapeResult so the client can pick a source and
//     edit overrides before importing.
func Preview(sc ProductScraper, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		var req models.PreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.PreviewResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		if cc != nil && req.MaxAge > 0 {
			if cached, hit := cc.Get(cache.Key(req.URL), req.MaxAge); hit {
				cached.CacheStatus = "hit"
				cached.Timing = models.TimingInfo{
					TotalMs: time.Since(totalStart).Milliseconds(),
				}
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		scrapeStart := time.Now()
		result, err := sc.ScrapeProductPage(c.Request.Context(), req.URL)
		scrapeMs := time.Since(scrapeStart).Milliseconds()

		if err != nil {
			scrapeErr := asScrapeError(err)
			c.JSON(mapErrorToStatus(scrapeErr), models.PreviewResponse{
				Success: false,
				Error:   scrapeErr.ToDetail(),
				Timing: models.TimingInfo{
					TotalMs:  time.Since(totalStart).Milliseconds(),
					ScrapeMs: scrapeMs,
				},
			})
			return
		}

		resp := models.PreviewResponse{
			Success: true,
			Result:  result,
			Timing: models.TimingInfo{
				TotalMs:  time.Since(totalStart).Milliseconds(),
				ScrapeMs: scrapeMs,
			},
		}

		if cc != nil && req.MaxAge > 0 {
			cc.Set(cache.Key(req.URL), &resp)
			resp.CacheStatus = "miss"
		}

		c.JSON(http.StatusOK, resp)
	}
}
