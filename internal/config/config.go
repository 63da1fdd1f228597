// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the observability HTTP listen address, e.g. ":9090".
	// Only /healthz and /metrics are served; the domain API is in-process.
	Addr string `koanf:"addr"`

	// CurrentUserID is the identity every workflow acts as. No real
	// authentication exists; this stands in for the signed-in user.
	CurrentUserID string `koanf:"current_user_id"`

	// MatchedUserID is the placeholder counterpart a connection request is
	// paired with until real matching lands.
	MatchedUserID string `koanf:"matched_user_id"`

	// ReadLatencyMinMS and ReadLatencyMaxMS bound the simulated network
	// window for store reads.
	ReadLatencyMinMS int `koanf:"read_latency_min_ms"`
	ReadLatencyMaxMS int `koanf:"read_latency_max_ms"`

	// WriteLatencyMinMS and WriteLatencyMaxMS bound the simulated network
	// window for store mutations. Kept slower than reads to preserve the
	// loading-state feel of the original client.
	WriteLatencyMinMS int `koanf:"write_latency_min_ms"`
	WriteLatencyMaxMS int `koanf:"write_latency_max_ms"`

	// MessageWriteLatencyMS is the flat window for message sends, tuned
	// faster for a real-time chat feel.
	MessageWriteLatencyMS int `koanf:"message_write_latency_ms"`

	// MatchScore is the placeholder compatibility score in [0, 1] returned
	// by the scoring stub.
	MatchScore float64 `koanf:"match_score"`

	// ViewCacheTTLMS bounds how long a derived view may be served from
	// cache before being recomputed. Zero disables caching.
	ViewCacheTTLMS int `koanf:"view_cache_ttl_ms"`

	// NoticeQueueSize bounds the in-memory user-notice queue.
	NoticeQueueSize int `koanf:"notice_queue_size"`
}

// New creates a Config using provided options. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use (e.g.,
// loading from env/files) and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:              "info",
		Addr:                  ":9090",
		CurrentUserID:         "current-user",
		MatchedUserID:         "matched-user",
		ReadLatencyMinMS:      250,
		ReadLatencyMaxMS:      300,
		WriteLatencyMinMS:     300,
		WriteLatencyMaxMS:     400,
		MessageWriteLatencyMS: 200,
		MatchScore:            0.85,
		ViewCacheTTLMS:        2000,
		NoticeQueueSize:       256,
	}
	return c
}
