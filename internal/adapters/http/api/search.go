package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
)

// SearchDependencies defines the interface for search operations.
type SearchDependencies interface {
	Search(ctx context.Context, query string, threshold float64, limit int) []model.ScoredAthlete
}

// SearchHandler handles athlete search requests.
type SearchHandler struct {
	deps             SearchDependencies
	defaultThreshold float64
	maxLimit         int
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies, defaultThreshold float64, maxLimit int) *SearchHandler {
	return &SearchHandler{
		deps:             deps,
		defaultThreshold: defaultThreshold,
		maxLimit:         maxLimit,
	}
}

// HandleSearch handles GET /search?q=...&threshold=...&limit=... requests.
// An empty q returns the full directory unranked.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query().Get("q")

	threshold := h.defaultThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		t, err := strconv.ParseFloat(raw, 64)
		if err != nil || t < 0 || t > 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadThreshold)
			return
		}
		threshold = t
	}

	limit := h.maxLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
		limit = n
	}

	results := h.deps.Search(r.Context(), query, threshold, limit)
	if results == nil {
		results = []model.ScoredAthlete{}
	}
	writeJSON(w, http.StatusOK, results)
}
