// Package standings converts flat per-apparatus score rows into all-around
// athlete rankings and team rankings. Every function is a pure computation
// over its inputs; composites are rebuilt from scratch on each call.
package standings

import (
	"sort"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
)

// Results is the output of aggregating a row list.
type Results struct {
	// Apparatuses is the distinct apparatus set across all rows, sorted
	// ascending. Downstream per-apparatus views use this canonical order.
	Apparatuses []string `json:"apparatuses"`

	// Athletes holds one composite per (athlete, team, subdivision), ranked
	// by all-around total.
	Athletes []model.AthleteStanding `json:"athletes"`
}

// Aggregate groups rows into athlete composites and assigns overall ranks.
//
// The all-around total is a running sum over exactly the rows present for an
// athlete: a missing apparatus contributes nothing, which is not the same as
// scoring it zero. Equal totals receive consecutive distinct ranks in input
// order; shared ranks for ties are a pending rules question, see DESIGN.md.
func Aggregate(rows []model.ScoreRow) Results {
	apparatusSet := make(map[string]struct{})
	groups := make(map[string]*model.AthleteStanding)
	var order []string

	for _, row := range rows {
		apparatusSet[row.Apparatus] = struct{}{}

		key := row.AthleteName + "|" + row.TeamName + "|" + row.Subdivision
		st, ok := groups[key]
		if !ok {
			st = &model.AthleteStanding{
				AthleteName: row.AthleteName,
				TeamName:    row.TeamName,
				Level:       row.Level,
				Band:        row.Band,
				Subdivision: row.Subdivision,
				Scores:      make(map[string]float64),
				Positions:   make(map[string]int),
			}
			groups[key] = st
			order = append(order, key)
		}
		st.Scores[row.Apparatus] = row.Value
		st.Positions[row.Apparatus] = row.ApparatusRank
		st.AllAround += row.Value
	}

	apparatuses := make([]string, 0, len(apparatusSet))
	for a := range apparatusSet {
		apparatuses = append(apparatuses, a)
	}
	sort.Strings(apparatuses)

	athletes := make([]model.AthleteStanding, 0, len(order))
	for _, key := range order {
		athletes = append(athletes, *groups[key])
	}
	sort.SliceStable(athletes, func(i, j int) bool {
		return athletes[i].AllAround > athletes[j].AllAround
	})
	for i := range athletes {
		athletes[i].OverallRank = i + 1
	}

	return Results{Apparatuses: apparatuses, Athletes: athletes}
}

// ForApparatus returns the subset of athletes with a score for apparatus,
// ordered by the externally supplied per-apparatus rank. The judged rank is
// trusted as-is, not recomputed from values.
func ForApparatus(athletes []model.AthleteStanding, apparatus string) []model.AthleteStanding {
	var out []model.AthleteStanding
	for _, a := range athletes {
		if _, ok := a.Scores[apparatus]; ok {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Positions[apparatus] < out[j].Positions[apparatus]
	})
	return out
}
