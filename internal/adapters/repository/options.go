package repository

import "time"

// storeConfig collects construction-time settings for MemoryStore.
type storeConfig struct {
	rebuildDelay time.Duration
}

// Option applies a configuration option to the MemoryStore.
type Option func(*storeConfig)

// WithRebuildDelay sets how long the store waits after the last row write
// before recomputing standings.
func WithRebuildDelay(d time.Duration) Option {
	return func(c *storeConfig) {
		if d > 0 {
			c.rebuildDelay = d
		}
	}
}
