package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultSlotLockTTL bounds how long an abandoned advisory slot lock
	// can block competing create calls.
	DefaultSlotLockTTL = 10 * time.Second

	// DefaultMaxAdvanceDays is how far ahead a booking date may lie.
	DefaultMaxAdvanceDays = 30

	// DefaultWatchRetryDelay is the backoff before reopening a broken
	// change subscription.
	DefaultWatchRetryDelay = 2 * time.Second

	DefaultPaginationLimit = 100
)
