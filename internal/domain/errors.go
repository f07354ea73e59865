package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrNoProviderAvailable = errors.New("no provider available")
	ErrPublishBlocked      = errors.New("publish blocked: on-air gate required")
	ErrProviderFailure     = errors.New("provider failure")
	ErrDuplicateOperation  = errors.New("duplicate operation")
)
