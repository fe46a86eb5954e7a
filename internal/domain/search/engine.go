// Package search implements fuzzy athlete search and autocomplete
// suggestions over plain record lists. Every call is a pure function of its
// arguments; the engine keeps no state between calls beyond its collator
// language, which makes caller-side debounce-and-discard safe.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/devalpoteam/instascore-engine/internal/domain/intent"
	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/similarity"
)

// Field weights. The athlete name dominates; club, category, and last event
// matter progressively less.
const (
	nameWeight     = 1.0
	clubWeight     = 0.8
	categoryWeight = 0.7
	eventWeight    = 0.6
)

// Keyword hits outrank ordinary text similarity: a medalist matching a
// medalist keyword scores at least medalistFloor regardless of its text score.
const (
	medalistFloor = 0.9
	activeFloor   = 0.8
)

// DefaultThreshold is a reasonable similarity cutoff for general search
// boxes. Callers tune it per call site; both 0.2 and 0.3 are in use.
const DefaultThreshold = 0.2

// Engine scores athlete records against free-text queries.
type Engine struct {
	lang language.Tag
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLanguage sets the collation language used for name tie-breaks.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.lang = tag
	}
}

// New constructs an Engine. The default collation language is Spanish, the
// locale of the competition data this engine serves.
func New(opts ...Option) *Engine {
	e := &Engine{lang: language.Spanish}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search scores every record against query, drops records strictly below
// threshold, and returns the rest ranked. An empty or blank query returns
// all records in input order, unscored and unfiltered.
//
// Ordering: score descending, then medalists before non-medalists, then name
// ascending under locale-aware collation.
func (e *Engine) Search(records []model.Athlete, query string, threshold float64) []model.ScoredAthlete {
	if strings.TrimSpace(query) == "" {
		out := make([]model.ScoredAthlete, len(records))
		for i, r := range records {
			out[i] = model.ScoredAthlete{Athlete: r}
		}
		return out
	}

	parsed := intent.Parse(query)

	scored := make([]model.ScoredAthlete, 0, len(records))
	for _, r := range records {
		s := e.score(r, query, parsed)
		if s < threshold {
			continue
		}
		scored = append(scored, model.ScoredAthlete{Athlete: r, Score: s})
	}

	coll := collate.New(e.lang)
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].IsMedalist != scored[j].IsMedalist {
			return scored[i].IsMedalist
		}
		return coll.CompareString(scored[i].Name, scored[j].Name) < 0
	})
	return scored
}

// score computes the record's overall score: the maximum of the weighted
// per-field similarities, lifted to the keyword floors when the query carries
// a matching keyword and the record's flag is set.
func (e *Engine) score(r model.Athlete, query string, parsed intent.Query) float64 {
	best := nameWeight * similarity.Score(r.Name, query)
	if s := clubWeight * similarity.Score(r.Club, query); s > best {
		best = s
	}
	if s := categoryWeight * similarity.Score(r.Category+" "+r.Level, query); s > best {
		best = s
	}
	if s := eventWeight * similarity.Score(r.LastEventName, query); s > best {
		best = s
	}
	if parsed.MedalistOnly && r.IsMedalist && best < medalistFloor {
		best = medalistFloor
	}
	if parsed.ActiveOnly && r.IsActive && best < activeFloor {
		best = activeFloor
	}
	return best
}
