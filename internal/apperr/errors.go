// Package apperr defines the sentinel errors shared across writedown packages.
package apperr

import "errors"

var (
	ErrConfiguration    = errors.New("configuration error")
	ErrNotADirectory    = errors.New("not a directory")
	ErrNotFound         = errors.New("not found")
	ErrInvalidContext   = errors.New("invalid context")
	ErrUsage            = errors.New("usage error")
	ErrIndexUnavailable = errors.New("index unavailable")
)
