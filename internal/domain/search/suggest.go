package search

import (
	"strings"
	"unicode/utf8"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/textnorm"
)

// Suggest derives a short, deduplicated list of literal field values that
// contain the query, for autocomplete. Results keep first-encountered order
// and are not re-ranked. Queries shorter than two folded runes yield nothing.
func (e *Engine) Suggest(records []model.Athlete, query string, maxSuggestions int) []string {
	folded := textnorm.Fold(query)
	if utf8.RuneCountInString(folded) < 2 || maxSuggestions <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(literal string) {
		if literal == "" {
			return
		}
		if !strings.Contains(textnorm.Fold(literal), folded) {
			return
		}
		if _, dup := seen[literal]; dup {
			return
		}
		seen[literal] = struct{}{}
		out = append(out, literal)
	}

	for _, r := range records {
		add(r.Name)
		add(r.Club)
		add(r.Category + " " + r.Level)
		add(r.LastEventName)
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
