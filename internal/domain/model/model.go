// Package model contains domain models passed between layers.
package model

// Athlete is a searchable competitor record. The engine treats it as
// immutable; ownership stays with the data provider.
type Athlete struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Club          string `json:"club"`
	Category      string `json:"category"`
	Level         string `json:"level"`
	LastEventName string `json:"last_event_name"`
	IsMedalist    bool   `json:"is_medalist"`
	IsActive      bool   `json:"is_active"`
}

// ScoredAthlete pairs an athlete with its search score in [0,1].
// Built transiently per search call and discarded after sorting.
type ScoredAthlete struct {
	Athlete
	Score float64 `json:"score"`
}

// ScoreRow is one judged result for a single apparatus. It is the source of
// truth for standings aggregation.
type ScoreRow struct {
	AthleteName   string  `json:"athlete_name"`
	TeamName      string  `json:"team_name"`
	Level         string  `json:"level"`
	Band          string  `json:"band"`
	Subdivision   string  `json:"subdivision"`
	Apparatus     string  `json:"apparatus"`
	Value         float64 `json:"value"`
	ApparatusRank int     `json:"apparatus_rank"`
}

// AthleteStanding is the per-athlete composite derived from score rows,
// keyed by (athlete name, team name, subdivision).
type AthleteStanding struct {
	AthleteName string `json:"athlete_name"`
	TeamName    string `json:"team_name"`
	Level       string `json:"level"`
	Band        string `json:"band"`
	Subdivision string `json:"subdivision"`

	// Scores and Positions map apparatus name to the judged value and the
	// externally supplied per-apparatus rank.
	Scores    map[string]float64 `json:"scores"`
	Positions map[string]int     `json:"positions"`

	// AllAround is the sum of the apparatus values present in Scores.
	AllAround float64 `json:"all_around"`

	// OverallRank is 1-based and dense, assigned after aggregation.
	OverallRank int `json:"overall_rank"`

	// ContributingToTeam is set by team aggregation on its own copies.
	ContributingToTeam bool `json:"contributing_to_team"`
}

// TeamStanding aggregates a team's member standings.
type TeamStanding struct {
	TeamName string `json:"team_name"`

	// Members are ordered best all-around first. Non-contributing members
	// are retained for display with ContributingToTeam unset.
	Members []AthleteStanding `json:"members"`

	// ContributingCount is how many of the best members count toward
	// TeamScore; never more than len(Members).
	ContributingCount int     `json:"contributing_count"`
	TeamScore         float64 `json:"team_score"`
	TeamRank          int     `json:"team_rank"`
}
