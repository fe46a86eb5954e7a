// Package repository defines the competition store interface and errors.
package repository

import (
	"context"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
)

// Store provides read/write access to the competition state.
type Store interface {
	// ReplaceAthletes swaps the full athlete directory. The store keeps its
	// own copy; callers may reuse the slice afterwards.
	ReplaceAthletes(ctx context.Context, athletes []model.Athlete)

	// Athletes returns a copy of the athlete directory in insertion order.
	Athletes(ctx context.Context) []model.Athlete

	// ApplyRow inserts or replaces the judged row for its
	// (athlete, team, subdivision, apparatus) key. Returns true when the
	// stored state changed.
	ApplyRow(ctx context.Context, row model.ScoreRow) (bool, error)

	// Rows returns a copy of all judged rows in first-applied order.
	Rows(ctx context.Context) []model.ScoreRow

	// Standings returns the aggregated results for the current rows. The
	// result may be served from a cache rebuilt after row bursts settle.
	Standings(ctx context.Context) standings.Results

	// Counts returns the number of athletes and judged rows held.
	Counts(ctx context.Context) (athletes, rows int)
}
