package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings for different entity types
	GameTTL    time.Duration
	SummaryTTL time.Duration

	// MaxSummaries caps the recent-results index
	MaxSummaries int64
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		GameTTL:      time.Hour,
		SummaryTTL:   24 * time.Hour,
		MaxSummaries: 100,
	}
}
