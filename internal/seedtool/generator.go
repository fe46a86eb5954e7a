package seedtool

import (
	"context"

	"github.com/google/uuid"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/fixtures"
	"github.com/devalpoteam/instascore-engine/pkg/logger"
)

// scoreSubmission is the wire format accepted by POST /scores.
type scoreSubmission struct {
	SubmissionID  string  `json:"submission_id"`
	AthleteName   string  `json:"athlete_name"`
	TeamName      string  `json:"team_name"`
	Level         string  `json:"level"`
	Band          string  `json:"band"`
	Subdivision   string  `json:"subdivision"`
	Apparatus     string  `json:"apparatus"`
	Value         float64 `json:"value"`
	ApparatusRank int     `json:"apparatus_rank"`
}

// submissionID derives a stable id covering the full row key the store
// deduplicates on. TeamName is part of it so namesakes in the same
// subdivision do not collide.
func submissionID(row model.ScoreRow) string {
	key := row.AthleteName + "|" + row.TeamName + "|" + row.Subdivision + "|" + row.Apparatus
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// generateRows builds the deterministic dataset to submit. Same seed, same
// rows and same submission ids, so reruns exercise the duplicate path.
func generateRows(ctx context.Context, config *Config, stats *Stats) []scoreSubmission {
	gen := fixtures.New(fixtures.WithSeed(config.Seed))
	rows := gen.ScoreRows(ctx)

	if config.NumRows > 0 && len(rows) > config.NumRows {
		rows = rows[:config.NumRows]
	}

	subs := make([]scoreSubmission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, scoreSubmission{
			SubmissionID:  submissionID(row),
			AthleteName:   row.AthleteName,
			TeamName:      row.TeamName,
			Level:         row.Level,
			Band:          row.Band,
			Subdivision:   row.Subdivision,
			Apparatus:     row.Apparatus,
			Value:         row.Value,
			ApparatusRank: row.ApparatusRank,
		})
	}

	stats.RowsGenerated = len(subs)
	logger.Get().Info(ctx, "generated score rows",
		logger.Int("rows", len(subs)),
		logger.Any("seed", config.Seed))
	return subs
}
