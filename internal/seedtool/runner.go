package seedtool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devalpoteam/instascore-engine/pkg/logger"
)

// Run executes the complete seeding and verification flow.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting standings seed run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("rows", config.NumRows),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("seed", config.Seed))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	rows := generateRows(ctx, config, stats)

	if err := submitRows(ctx, config, rows, stats); err != nil {
		return fmt.Errorf("score submission failed: %w", err)
	}

	// Give the debounced standings rebuild time to run.
	logger.Get().Info(ctx, "waiting for scores to be processed")
	time.Sleep(ProcessingDelay)

	if err := verifyStandings(ctx, config, stats); err != nil {
		return fmt.Errorf("standings verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "seed run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// verifyStandings fetches team standings and checks that the submitted rows
// produced a consistent aggregate.
func verifyStandings(ctx context.Context, config *Config, stats *Stats) error {
	client := newHTTPClient(config.Timeout)

	url := fmt.Sprintf("%s/teams?count=%d", config.BaseURL, config.TeamSize)
	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to fetch team standings: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("team standings request failed with status: %d", resp.StatusCode)
	}

	var teams []struct {
		TeamName  string  `json:"team_name"`
		TeamScore float64 `json:"team_score"`
		TeamRank  int     `json:"team_rank"`
	}
	if err := json.Unmarshal(body, &teams); err != nil {
		return fmt.Errorf("failed to decode team standings: %w", err)
	}

	if stats.RowsSuccessful+stats.RowsDuplicate > 0 && len(teams) == 0 {
		return fmt.Errorf("submitted %d rows but team standings are empty", stats.RowsSuccessful)
	}

	for i, team := range teams {
		if team.TeamRank != i+1 {
			return fmt.Errorf("team %q has rank %d at position %d", team.TeamName, team.TeamRank, i+1)
		}
		if i > 0 && teams[i-1].TeamScore < team.TeamScore {
			return fmt.Errorf("team standings out of order at position %d", i+1)
		}
	}

	stats.TeamsRetrieved = len(teams)
	logger.Get().Info(ctx, "team standings verified", logger.Int("teams", len(teams)))
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	var successRate, rowsPerSecond float64

	if stats.RowsSubmitted > 0 {
		successRate = float64(stats.RowsSuccessful) / float64(stats.RowsSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		rowsPerSecond = float64(stats.RowsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("rowsGenerated", stats.RowsGenerated),
		logger.Int("rowsSubmitted", stats.RowsSubmitted),
		logger.Int("rowsSuccessful", stats.RowsSuccessful),
		logger.Int("rowsDuplicate", stats.RowsDuplicate),
		logger.Int("rowsFailed", stats.RowsFailed),
		logger.Int("teamsRetrieved", stats.TeamsRetrieved),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("rowsPerSecond", rowsPerSecond))
}
