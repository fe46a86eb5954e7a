package config

import (
	"errors"
	"fmt"
)

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr                = errors.New("addr must not be empty")
	ErrInvalidThreshold         = errors.New("search_threshold must be within [0,1]")
	ErrInvalidContributingCount = errors.New("team_contributing_count must be at least 1")
)

// wrapLoad wraps errors from the underlying config providers.
func wrapLoad(err error) error {
	return fmt.Errorf("loading config: %w", err)
}
