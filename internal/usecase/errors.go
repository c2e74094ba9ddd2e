package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUpstream              = errors.New("upstream api failure")
	ErrMalformedPayload      = errors.New("malformed upstream payload")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
