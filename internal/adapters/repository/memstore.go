// In-memory Store implementation.
//
// Rows are keyed by (athlete, team, subdivision, apparatus) so a corrected
// score from the judging table replaces the earlier one instead of double
// counting. Aggregated standings are cached behind an atomic pointer; row
// writes invalidate the cache and schedule a debounced rebuild so a burst of
// uploads triggers one recomputation, not one per row.
package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
	"github.com/devalpoteam/instascore-engine/pkg/debounce"
	"github.com/devalpoteam/instascore-engine/pkg/metrics"
)

// defaultRebuildDelay matches the UI's keystroke debounce.
const defaultRebuildDelay = 300 * time.Millisecond

// MemoryStore implements Store.
type MemoryStore struct {
	mu       sync.RWMutex
	athletes []model.Athlete
	rows     map[string]model.ScoreRow
	rowOrder []string

	snapshot atomic.Pointer[standings.Results]
	rebuild  *debounce.Trigger
}

// NewMemoryStore constructs a memory store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		rows: make(map[string]model.ScoreRow),
	}
	cfg := storeConfig{rebuildDelay: defaultRebuildDelay}
	for _, opt := range opts {
		opt(&cfg)
	}
	s.rebuild = debounce.New(cfg.rebuildDelay)
	return s
}

// Close cancels any pending standings rebuild.
func (s *MemoryStore) Close() error {
	s.rebuild.Stop()
	return nil
}

// ReplaceAthletes swaps the athlete directory.
func (s *MemoryStore) ReplaceAthletes(ctx context.Context, athletes []model.Athlete) {
	copied := make([]model.Athlete, len(athletes))
	copy(copied, athletes)

	s.mu.Lock()
	s.athletes = copied
	s.mu.Unlock()

	metrics.UpdateStoreAthletes(len(copied))
}

// Athletes returns a copy of the athlete directory.
func (s *MemoryStore) Athletes(ctx context.Context) []model.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Athlete, len(s.athletes))
	copy(out, s.athletes)
	return out
}

func rowKey(row model.ScoreRow) string {
	return row.AthleteName + "|" + row.TeamName + "|" + row.Subdivision + "|" + row.Apparatus
}

// ApplyRow inserts or replaces a judged row.
func (s *MemoryStore) ApplyRow(ctx context.Context, row model.ScoreRow) (bool, error) {
	key := rowKey(row)

	s.mu.Lock()
	old, exists := s.rows[key]
	if exists && old == row {
		s.mu.Unlock()
		return false, nil
	}
	if !exists {
		s.rowOrder = append(s.rowOrder, key)
	}
	s.rows[key] = row
	total := len(s.rows)
	s.mu.Unlock()

	metrics.UpdateStoreRows(total)

	// Invalidate the cache so reads between now and the rebuild see fresh
	// data, then coalesce the recomputation.
	s.snapshot.Store(nil)
	s.rebuild.Schedule(func() { s.rebuildNow(ctx) })

	return true, nil
}

// Rows returns a copy of all judged rows in first-applied order.
func (s *MemoryStore) Rows(ctx context.Context) []model.ScoreRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ScoreRow, 0, len(s.rowOrder))
	for _, key := range s.rowOrder {
		out = append(out, s.rows[key])
	}
	return out
}

// Standings returns the aggregated results, rebuilding synchronously when no
// fresh snapshot is available.
func (s *MemoryStore) Standings(ctx context.Context) standings.Results {
	if snap := s.snapshot.Load(); snap != nil {
		return *snap
	}
	return s.rebuildNow(ctx)
}

// Counts returns the number of athletes and judged rows held.
func (s *MemoryStore) Counts(ctx context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.athletes), len(s.rows)
}

// rebuildNow recomputes the standings snapshot from the current rows.
func (s *MemoryStore) rebuildNow(ctx context.Context) standings.Results {
	start := time.Now()

	results := standings.Aggregate(s.Rows(ctx))
	s.snapshot.Store(&results)

	metrics.RecordStandingsRebuild(float64(time.Since(start).Milliseconds()))
	metrics.UpdateStandingsLastUnix(float64(time.Now().Unix()))
	return results
}
