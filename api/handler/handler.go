package handler

import (
	"context"
	"net/http"

	"github.com/reelscout/reelscout/models"
)

// ProductScraper is the extraction-engine boundary consumed by handlers.
type ProductScraper interface {
	ScrapeProductPage(ctx context.Context, url string) (*models.ScrapeResult, error)
}

// VideoCreator is the persistence boundary for the import flow.
type VideoCreator interface {
	CreateVideo(ctx context.Context, v *models.Video) (*models.Video, error)
}

// VideoGetter looks up previously imported videos.
type VideoGetter interface {
	GetVideo(ctx context.Context, id string) (*models.Video, error)
}

// asScrapeError normalizes any error into a *models.ScrapeError.
func asScrapeError(err error) *models.ScrapeError {
	if scrapeErr, ok := err.(*models.ScrapeError); ok {
		return scrapeErr
	}
	return models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeInvalidInput, models.ErrCodeInvalidURL, models.ErrCodeContentType:
		return http.StatusBadRequest // 400
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	case models.ErrCodeNoVideo:
		return http.StatusUnprocessableEntity // 422
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeHTTPError, models.ErrCodeFetchFailed:
		return http.StatusBadGateway // 502
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	default:
		return http.StatusInternalServerError // 500
	}
}
