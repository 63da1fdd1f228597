package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr        = errors.New("addr must not be empty")
	ErrEmptyCurrentUser = errors.New("current_user_id must not be empty")
	ErrBadLatencyWindow = errors.New("latency window min must be >= 0 and <= max")
	ErrBadMatchScore    = errors.New("match_score must be in [0, 1]")
)
