package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelscout/reelscout/api/handler"
	"github.com/reelscout/reelscout/api/middleware"
	"github.com/reelscout/reelscout/cache"
	"github.com/reelscout/reelscout/config"
	"github.com/reelscout/reelscout/scraper"
	"github.com/reelscout/reelscout/store"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(sc *scraper.Scraper, st *store.Memory, cfg *config.Config, cc *cache.Cache, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")

	// Health — no auth required.
	v1.GET("/health", handler.Health(startTime))

	// Protected group — auth + rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	// Preview: scrape a product page, return metadata + video candidates.
	protected.POST("/scrape/preview", handler.Preview(sc, cc))

	// Import: scrape, merge overrides, persist the chosen source.
	protected.POST("/videos/import", handler.ImportVideo(sc, st, cfg.Webhook))
	protected.GET("/videos/:id", handler.GetVideo(st))

	return r
}
