package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrBadThreshold = errors.New("threshold must be between 0 and 1")
	ErrBackpressure = errors.New("backpressure")
)
