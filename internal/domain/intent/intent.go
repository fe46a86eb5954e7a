// Package intent classifies a free-text query into implicit filters plus a
// residual text query. It lets a single search box double as a keyword-driven
// filter: "medallistas activos juvenil" narrows to medalists, to recently
// active athletes, and searches for "juvenil".
package intent

import (
	"strings"

	"github.com/devalpoteam/instascore-engine/internal/domain/textnorm"
)

// Keyword stems matched against folded query tokens. A token counts as a hit
// when it contains the stem, so "medallista" and "campeona" both match.
var (
	medalistKeywords = []string{"medal", "oro", "plata", "bronce", "podium", "ganador", "campeon"}
	activeKeywords   = []string{"activ", "recient", "nuevo", "actual"}
)

// Query is the result of classifying a raw search query.
type Query struct {
	// MedalistOnly is set when the query carries a medalist keyword.
	MedalistOnly bool

	// ActiveOnly is set when the query carries an active/recent keyword.
	ActiveOnly bool

	// Residual is the query with keyword tokens removed, in their original
	// literal form. Untouched when no keyword matched.
	Residual string
}

// Parse classifies the query in a single pass over its tokens.
func Parse(query string) Query {
	var out Query
	tokens := strings.Fields(query)
	plain := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		folded := textnorm.Fold(tok)
		switch {
		case containsAny(folded, medalistKeywords):
			out.MedalistOnly = true
		case containsAny(folded, activeKeywords):
			out.ActiveOnly = true
		default:
			plain = append(plain, tok)
		}
	}
	if out.MedalistOnly || out.ActiveOnly {
		out.Residual = strings.Join(plain, " ")
	} else {
		out.Residual = query
	}
	return out
}

func containsAny(token string, stems []string) bool {
	for _, stem := range stems {
		if strings.Contains(token, stem) {
			return true
		}
	}
	return false
}
