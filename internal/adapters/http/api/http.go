// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/devalpoteam/instascore-engine/internal/domain/dedupe"
	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes a score submission for async processing.
	// Returns false on backpressure.
	Enqueue(ctx context.Context, s model.Submission) bool

	// Read operations expose search and standings data.
	Search(ctx context.Context, query string, threshold float64, limit int) []model.ScoredAthlete
	Suggest(ctx context.Context, query string, maxSuggestions int) []string
	Results(ctx context.Context) standings.Results
	ResultsForApparatus(ctx context.Context, apparatus string) []model.AthleteStanding
	Teams(ctx context.Context, contributingCount int) []model.TeamStanding
	TeamsForApparatus(ctx context.Context, apparatus string, contributingCount int) []standings.TeamApparatusTotal
}

// Defaults carries the caller-tunable limits handlers fall back to when a
// request omits the corresponding query parameter.
type Defaults struct {
	SearchThreshold   float64
	MaxSearchLimit    int
	MaxSuggestions    int
	ContributingCount int
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	searchHandler  *SearchHandler
	suggestHandler *SuggestHandler
	resultsHandler *ResultsHandler
	teamsHandler   *TeamsHandler
	scoresHandler  *ScoresHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, defaults Defaults) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		searchHandler:  NewSearchHandler(deps, defaults.SearchThreshold, defaults.MaxSearchLimit),
		suggestHandler: NewSuggestHandler(deps, defaults.MaxSuggestions),
		resultsHandler: NewResultsHandler(deps),
		teamsHandler:   NewTeamsHandler(deps, defaults.ContributingCount),
		scoresHandler:  NewScoresHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/suggest", MetricsMiddleware(s.suggestHandler.HandleSuggest, "suggest"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleResults, "results"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleTeams, "teams"))
	mux.HandleFunc("/scores", MetricsMiddleware(s.scoresHandler.HandlePostScore, "scores"))
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
