package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
)

// TeamsDependencies defines the interface for team standings reads.
type TeamsDependencies interface {
	Teams(ctx context.Context, contributingCount int) []model.TeamStanding
	TeamsForApparatus(ctx context.Context, apparatus string, contributingCount int) []standings.TeamApparatusTotal
}

// TeamsHandler handles team standings requests.
type TeamsHandler struct {
	deps                TeamsDependencies
	defaultContributing int
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies, defaultContributing int) *TeamsHandler {
	return &TeamsHandler{deps: deps, defaultContributing: defaultContributing}
}

// HandleTeams handles GET /teams?count=N requests. With ?apparatus=... it
// returns per-apparatus team totals, each computed with its own best-N
// selection over that apparatus's values.
func (h *TeamsHandler) HandleTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	count := h.defaultContributing
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		count = n
	}

	if apparatus := r.URL.Query().Get("apparatus"); apparatus != "" {
		totals := h.deps.TeamsForApparatus(r.Context(), apparatus, count)
		if totals == nil {
			totals = []standings.TeamApparatusTotal{}
		}
		writeJSON(w, http.StatusOK, totals)
		return
	}

	teams := h.deps.Teams(r.Context(), count)
	if teams == nil {
		teams = []model.TeamStanding{}
	}
	writeJSON(w, http.StatusOK, teams)
}
