// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/devalpoteam/instascore-engine/internal/adapters/mq/queue"
	"github.com/devalpoteam/instascore-engine/internal/adapters/mq/worker"
	"github.com/devalpoteam/instascore-engine/internal/adapters/repository"
	"github.com/devalpoteam/instascore-engine/internal/domain/dedupe"
	"github.com/devalpoteam/instascore-engine/internal/domain/intent"
	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/search"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
	"github.com/devalpoteam/instascore-engine/internal/fixtures"
	"github.com/devalpoteam/instascore-engine/pkg/logger"
	"github.com/devalpoteam/instascore-engine/pkg/metrics"
)

// maxApparatusScore bounds accepted judged values. Artistic gymnastics
// scores under the open-ended code stay well below this.
const maxApparatusScore = 20.0

// rowValidator adapts domain validation to the worker.Validator interface.
type rowValidator struct{}

func (rowValidator) Validate(ctx context.Context, row model.ScoreRow) error {
	switch {
	case strings.TrimSpace(row.AthleteName) == "",
		strings.TrimSpace(row.TeamName) == "",
		strings.TrimSpace(row.Apparatus) == "":
		return repository.ErrInvalidRow
	case row.Value < 0 || row.Value > maxApparatusScore:
		return repository.ErrInvalidRow
	case row.ApparatusRank < 0:
		return repository.ErrInvalidRow
	}
	return nil
}

// Service implements the API dependencies for the search and standings
// system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store    repository.Store
	deduper  dedupe.Deduper
	queue    queue.Queue
	pool     *worker.Pool
	searcher *search.Engine
	provider fixtures.Provider

	// Configuration
	workerCount  int
	queueSize    int
	dedupeSize   int
	rebuildDelay time.Duration
	seedData     bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of ingestion workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithRebuildDelay sets the standings recomputation debounce delay.
func WithRebuildDelay(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.rebuildDelay = d
		}
	}
}

// WithProvider sets the data provider used to seed the store.
func WithProvider(p fixtures.Provider) Option {
	return func(s *Service) {
		s.provider = p
	}
}

// WithSeedData enables seeding the store from the provider at startup.
func WithSeedData(seed bool) Option {
	return func(s *Service) {
		s.seedData = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:  4,
		queueSize:    10_000,
		dedupeSize:   50_000,
		rebuildDelay: 300 * time.Millisecond,
		searcher:     search.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting competition engine service...")

	s.store = repository.NewMemoryStore(
		repository.WithRebuildDelay(s.rebuildDelay),
	)
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = queue.NewInMemoryQueue(
		queue.WithCapacity(s.queueSize),
	)
	s.pool = worker.NewPool(s.workerCount, s.queue, rowValidator{}, s.store)
	s.pool.Start(ctx)

	if s.seedData && s.provider != nil {
		s.seed(ctx)
	}

	s.started = true
	s.logger.Info(ctx, "competition engine service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// seed loads the provider's dataset straight into the store, bypassing the
// queue: startup data needs no idempotency tracking.
func (s *Service) seed(ctx context.Context) {
	athletes := s.provider.Athletes(ctx)
	s.store.ReplaceAthletes(ctx, athletes)

	rows := s.provider.ScoreRows(ctx)
	for _, row := range rows {
		if _, err := s.store.ApplyRow(ctx, row); err != nil {
			s.logger.Warn(ctx, "seed row rejected", logger.Error(err))
		}
	}
	s.logger.Info(ctx, "seeded demo dataset",
		logger.Int("athletes", len(athletes)),
		logger.Int("rows", len(rows)),
	)
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping competition engine service...")

	if s.pool != nil {
		s.pool.Stop()
	}
	if q, ok := s.queue.(*queue.InMemoryQueue); ok {
		_ = q.Close()
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(ctx, "competition engine service stopped")
}

// SeenAndRecord atomically checks whether a submission id was seen and
// records it if not. Returns true if it was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.deduper.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordRowDuplicate()
	}
	return seen
}

// Unrecord removes a submission id from the seen list, allowing a retry.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// Enqueue submits a score row for asynchronous processing.
func (s *Service) Enqueue(ctx context.Context, sub model.Submission) bool {
	ok := s.queue.Enqueue(ctx, sub)
	if ok {
		metrics.UpdateQueueSize(s.queue.Len(ctx))
	}
	return ok
}

// Search ranks the athlete directory against query. Implied keyword filters
// narrow the candidate set before scoring; the keyword boosts inside the
// engine then rank the survivors. A non-positive limit returns everything.
func (s *Service) Search(ctx context.Context, query string, threshold float64, limit int) []model.ScoredAthlete {
	start := time.Now()
	defer func() {
		metrics.RecordSearch()
		metrics.RecordSearchLatency(float64(time.Since(start).Milliseconds()))
	}()

	records := s.store.Athletes(ctx)

	parsed := intent.Parse(query)
	if parsed.MedalistOnly || parsed.ActiveOnly {
		filtered := records[:0:0]
		for _, r := range records {
			if parsed.MedalistOnly && !r.IsMedalist {
				continue
			}
			if parsed.ActiveOnly && !r.IsActive {
				continue
			}
			filtered = append(filtered, r)
		}
		records = filtered
	}

	results := s.searcher.Search(records, query, threshold)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Suggest returns autocomplete suggestions for query.
func (s *Service) Suggest(ctx context.Context, query string, maxSuggestions int) []string {
	start := time.Now()
	defer func() {
		metrics.RecordSuggestion()
		metrics.RecordSuggestLatency(float64(time.Since(start).Milliseconds()))
	}()

	return s.searcher.Suggest(s.store.Athletes(ctx), query, maxSuggestions)
}

// Results returns the current aggregated standings.
func (s *Service) Results(ctx context.Context) standings.Results {
	return s.store.Standings(ctx)
}

// ResultsForApparatus returns the athletes with a score on apparatus,
// ordered by their judged per-apparatus rank.
func (s *Service) ResultsForApparatus(ctx context.Context, apparatus string) []model.AthleteStanding {
	return standings.ForApparatus(s.store.Standings(ctx).Athletes, apparatus)
}

// Teams returns team standings under the best-N rule.
func (s *Service) Teams(ctx context.Context, contributingCount int) []model.TeamStanding {
	return standings.AggregateTeams(s.store.Standings(ctx).Athletes, contributingCount)
}

// TeamsForApparatus returns per-apparatus team totals, each with its own
// best-N selection over that apparatus's values.
func (s *Service) TeamsForApparatus(ctx context.Context, apparatus string, contributingCount int) []standings.TeamApparatusTotal {
	return standings.TeamApparatusTotals(s.store.Standings(ctx).Athletes, apparatus, contributingCount)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		athletes, rows := s.store.Counts(ctx)
		stats["queueLength"] = s.queue.Len(ctx)
		stats["totalAthletes"] = athletes
		stats["totalScoreRows"] = rows

		metrics.UpdateQueueSize(s.queue.Len(ctx))
		metrics.UpdateStoreAthletes(athletes)
		metrics.UpdateStoreRows(rows)
	}
	return stats
}
