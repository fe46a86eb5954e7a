// Package seedtool submits a generated score dataset to a running engine
// instance and verifies the resulting standings end to end.
package seedtool

import "time"

// Config controls a seeding run.
type Config struct {
	BaseURL  string
	NumRows  int
	Seed     int64
	Workers  int
	Timeout  time.Duration
	TeamSize int
	Verbose  bool
}

// Stats accumulates counters over a seeding run.
type Stats struct {
	RowsGenerated  int
	RowsSubmitted  int
	RowsSuccessful int
	RowsDuplicate  int
	RowsFailed     int
	TeamsRetrieved int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}
