package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelscout/reelscout/models"
	"github.com/reelscout/reelscout/store"
)

// GetVideo returns a handler for GET /api/v1/videos/:id.
func GetVideo(getter VideoGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, err := getter.GetVideo(c.Request.Context(), c.Param("id"))
		if err != nil {
			status := http.StatusInternalServerError
			code := models.ErrCodeInternal
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
				code = models.ErrCodeInvalidInput
			}
			c.JSON(status, models.VideoResponse{
				Success: false,
				Error:   &models.ErrorDetail{Code: code, Message: err.Error()},
			})
			return
		}

		c.JSON(http.StatusOK, models.VideoResponse{Success: true, Video: video})
	}
}
