// Package fixtures generates a deterministic demo dataset. It stands in for
// the production results feed behind the same Provider interface, so the
// engine and its callers never reach into ambient state: same seed, same
// athletes, same rows, on every run.
package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
)

// Default generation parameters.
const (
	defaultAthleteCount = 48

	scoreMin   = 7.0
	scoreRange = 2.5

	medalistRatio = 0.3
	activeRatio   = 0.7
)

// Provider supplies the record lists the engine's callers feed it.
type Provider interface {
	Athletes(ctx context.Context) []model.Athlete
	ScoreRows(ctx context.Context) []model.ScoreRow
}

// Generator implements Provider with a seeded dataset built once at
// construction.
type Generator struct {
	seed         int64
	athleteCount int

	athletes []model.Athlete
	rows     []model.ScoreRow
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the generator seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithAthleteCount sets how many athletes to generate.
func WithAthleteCount(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.athleteCount = count
		}
	}
}

// New constructs a Generator and builds its dataset.
func New(opts ...Option) *Generator {
	g := &Generator{
		seed:         1,
		athleteCount: defaultAthleteCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.generate()
	return g
}

// Athletes returns the generated athlete directory.
func (g *Generator) Athletes(ctx context.Context) []model.Athlete {
	out := make([]model.Athlete, len(g.athletes))
	copy(out, g.athletes)
	return out
}

// ScoreRows returns the generated judged rows.
func (g *Generator) ScoreRows(ctx context.Context) []model.ScoreRow {
	out := make([]model.ScoreRow, len(g.rows))
	copy(out, g.rows)
	return out
}

func (g *Generator) generate() {
	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic demo data

	g.athletes = make([]model.Athlete, 0, g.athleteCount)
	for i := 0; i < g.athleteCount; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		category := categories[rng.Intn(len(categories))]
		level := levels[rng.Intn(len(levels))]

		g.athletes = append(g.athletes, model.Athlete{
			// v5 UUIDs keep IDs stable across runs for the same dataset.
			ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("athlete-%d-%s", i, name))).String(),
			Name:          name,
			Club:          clubs[rng.Intn(len(clubs))],
			Category:      category,
			Level:         level,
			LastEventName: championships[rng.Intn(len(championships))],
			IsMedalist:    rng.Float64() < medalistRatio,
			IsActive:      rng.Float64() < activeRatio,
		})
	}

	g.rows = make([]model.ScoreRow, 0, len(g.athletes)*len(apparatuses))
	for _, a := range g.athletes {
		subdivision := a.Category + " " + a.Level
		for _, apparatus := range apparatuses {
			g.rows = append(g.rows, model.ScoreRow{
				AthleteName: a.Name,
				TeamName:    a.Club,
				Level:       a.Level,
				Band:        a.Category,
				Subdivision: subdivision,
				Apparatus:   apparatus,
				Value:       scoreMin + rng.Float64()*scoreRange,
			})
		}
	}

	assignApparatusRanks(g.rows)
}

// assignApparatusRanks fills ApparatusRank per (subdivision, apparatus) by
// value descending, the way a judging panel publishes per-apparatus places.
func assignApparatusRanks(rows []model.ScoreRow) {
	byPanel := make(map[string][]int)
	for i, row := range rows {
		key := row.Subdivision + "|" + row.Apparatus
		byPanel[key] = append(byPanel[key], i)
	}
	for _, indices := range byPanel {
		sort.SliceStable(indices, func(a, b int) bool {
			return rows[indices[a]].Value > rows[indices[b]].Value
		})
		for place, idx := range indices {
			rows[idx].ApparatusRank = place + 1
		}
	}
}
