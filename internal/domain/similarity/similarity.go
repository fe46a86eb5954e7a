// Package similarity scores how well two strings match using containment and
// word-overlap heuristics. Substring hits are a perfect score on purpose:
// prefix/substring typing is the dominant interaction on the search box, and
// edit distance would be both costlier and worse for that use.
package similarity

import (
	"strings"

	"github.com/devalpoteam/instascore-engine/internal/domain/textnorm"
)

// Score returns a similarity in [0,1] between a and b.
//
// Both inputs are folded first. If either folded string contains the other,
// the score is 1.0. Otherwise the score is the fraction of b's words that
// contain (or are contained by) some word of a, over the larger word count.
func Score(a, b string) float64 {
	na := textnorm.Fold(a)
	nb := textnorm.Fold(b)

	// A blank side never matches anything; this also guards the empty-string
	// substring check, which would otherwise report a perfect score.
	if na == "" || nb == "" {
		return 0
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 1.0
	}

	wordsA := strings.Fields(na)
	wordsB := strings.Fields(nb)

	matches := 0
	for _, wb := range wordsB {
		for _, wa := range wordsA {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				matches++
				break
			}
		}
	}

	denom := len(wordsA)
	if len(wordsB) > denom {
		denom = len(wordsB)
	}
	if denom == 0 {
		return 0
	}
	return float64(matches) / float64(denom)
}
