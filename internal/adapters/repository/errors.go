package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrInvalidRow = errors.New("invalid score row")
)
