package seedtool

import "time"

// Protocol and pacing constants.
const (
	StatusOK             = 200
	StatusAccepted       = 202
	ProcessingDelay      = 2 * time.Second
	PercentageMultiplier = 100.0
)
