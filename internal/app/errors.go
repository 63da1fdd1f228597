package service

import "errors"

// Sentinel kinds for workflow errors.
var (
	ErrAlreadyStarted = errors.New("service already started")
	ErrNotConfigured  = errors.New("service stores not configured")
	ErrEmptyMessage   = errors.New("message content is empty")
	ErrBadTransition  = errors.New("invalid status transition")
)
