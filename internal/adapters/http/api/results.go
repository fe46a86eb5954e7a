package api

import (
	"context"
	"net/http"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
)

// ResultsDependencies defines the interface for standings reads.
type ResultsDependencies interface {
	Results(ctx context.Context) standings.Results
	ResultsForApparatus(ctx context.Context, apparatus string) []model.AthleteStanding
}

// ResultsHandler handles standings requests.
type ResultsHandler struct {
	deps ResultsDependencies
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultsDependencies) *ResultsHandler {
	return &ResultsHandler{deps: deps}
}

// HandleResults handles GET /results requests. With ?apparatus=... it
// returns the per-apparatus view ordered by judged rank; without it, the
// full all-around standings.
func (h *ResultsHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	if apparatus := r.URL.Query().Get("apparatus"); apparatus != "" {
		athletes := h.deps.ResultsForApparatus(r.Context(), apparatus)
		if athletes == nil {
			athletes = []model.AthleteStanding{}
		}
		writeJSON(w, http.StatusOK, athletes)
		return
	}

	writeJSON(w, http.StatusOK, h.deps.Results(r.Context()))
}
