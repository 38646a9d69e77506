package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Scraper   ScraperConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Webhook   WebhookConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// ScraperConfig controls the page fetcher.
type ScraperConfig struct {
	// FetchTimeout is the hard deadline for one page fetch.
	FetchTimeout time.Duration // default: 10s

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MB

	// UserAgent identifies the service to target sites.
	UserAgent string

	// Proxy is an optional proxy URL for outbound fetches
	// ("http://host:port" or "socks5://host:port").
	Proxy string
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: true

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per API key.
	Burst int // default: 10
}

// CacheConfig controls the preview response cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached previews.
	MaxEntries int // default: 1000
}

// WebhookConfig controls import event notifications.
type WebhookConfig struct {
	// URL is the endpoint receiving "video.imported" events.
	// Empty disables webhooks.
	URL string

	// Secret signs event payloads with HMAC-SHA256 when non-empty.
	Secret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("REELSCOUT_HOST", "0.0.0.0"),
			Port: envIntOr("REELSCOUT_PORT", 8080),
			Mode: envOr("REELSCOUT_MODE", "release"),
		},
		Scraper: ScraperConfig{
			FetchTimeout: envDurationOr("REELSCOUT_FETCH_TIMEOUT", 10*time.Second),
			MaxBodyBytes: envInt64Or("REELSCOUT_MAX_BODY_BYTES", 10*1024*1024),
			UserAgent:    envOr("REELSCOUT_USER_AGENT", "ReelscoutBot/1.0 (+https://reelscout.dev/bot)"),
			Proxy:        os.Getenv("REELSCOUT_PROXY"),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("REELSCOUT_AUTH_ENABLED", true),
			APIKeys: envSliceOr("REELSCOUT_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("REELSCOUT_RATE_RPS", 5.0),
			Burst:             envIntOr("REELSCOUT_RATE_BURST", 10),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("REELSCOUT_CACHE_MAX_ENTRIES", 1000),
		},
		Webhook: WebhookConfig{
			URL:    os.Getenv("REELSCOUT_WEBHOOK_URL"),
			Secret: os.Getenv("REELSCOUT_WEBHOOK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("REELSCOUT_LOG_LEVEL", "info"),
			Format: envOr("REELSCOUT_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
