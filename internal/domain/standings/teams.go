package standings

import (
	"sort"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
)

// TeamApparatusTotal is a team's score on a single apparatus, computed with
// its own best-N selection over that apparatus's values.
type TeamApparatusTotal struct {
	TeamName          string  `json:"team_name"`
	Apparatus         string  `json:"apparatus"`
	Total             float64 `json:"total"`
	ContributingCount int     `json:"contributing_count"`
	Rank              int     `json:"rank"`
}

// AggregateTeams groups athlete composites by team and ranks teams by the
// sum of their best contributingCount members' all-around totals. Teams with
// fewer members than contributingCount count all of them. Non-contributing
// members stay in the member list for display.
func AggregateTeams(athletes []model.AthleteStanding, contributingCount int) []model.TeamStanding {
	groups := make(map[string][]model.AthleteStanding)
	var order []string

	for _, a := range athletes {
		if _, ok := groups[a.TeamName]; !ok {
			order = append(order, a.TeamName)
		}
		groups[a.TeamName] = append(groups[a.TeamName], a)
	}

	teams := make([]model.TeamStanding, 0, len(order))
	for _, name := range order {
		members := groups[name]
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].AllAround > members[j].AllAround
		})

		n := contributingCount
		if n > len(members) {
			n = len(members)
		}
		if n < 0 {
			n = 0
		}

		var score float64
		for i := range members {
			members[i].ContributingToTeam = i < n
			if i < n {
				score += members[i].AllAround
			}
		}

		teams = append(teams, model.TeamStanding{
			TeamName:          name,
			Members:           members,
			ContributingCount: n,
			TeamScore:         score,
		})
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].TeamScore > teams[j].TeamScore
	})
	for i := range teams {
		teams[i].TeamRank = i + 1
	}
	return teams
}

// TeamApparatusTotals computes per-apparatus team scores. The best-N
// selection runs over that apparatus's values alone, so the contributing
// members may differ from the all-around contributing set. That divergence
// matches competition rules and is deliberate: do not derive these totals
// from the all-around selection.
func TeamApparatusTotals(athletes []model.AthleteStanding, apparatus string, contributingCount int) []TeamApparatusTotal {
	groups := make(map[string][]float64)
	var order []string

	for _, a := range athletes {
		v, ok := a.Scores[apparatus]
		if !ok {
			continue
		}
		if _, seen := groups[a.TeamName]; !seen {
			order = append(order, a.TeamName)
		}
		groups[a.TeamName] = append(groups[a.TeamName], v)
	}

	totals := make([]TeamApparatusTotal, 0, len(order))
	for _, name := range order {
		values := groups[name]
		sort.Sort(sort.Reverse(sort.Float64Slice(values)))

		n := contributingCount
		if n > len(values) {
			n = len(values)
		}
		if n < 0 {
			n = 0
		}

		var total float64
		for _, v := range values[:n] {
			total += v
		}
		totals = append(totals, TeamApparatusTotal{
			TeamName:          name,
			Apparatus:         apparatus,
			Total:             total,
			ContributingCount: n,
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	for i := range totals {
		totals[i].Rank = i + 1
	}
	return totals
}
