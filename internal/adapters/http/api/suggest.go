package api

import (
	"context"
	"net/http"
	"strconv"
)

// SuggestDependencies defines the interface for suggestion operations.
type SuggestDependencies interface {
	Suggest(ctx context.Context, query string, maxSuggestions int) []string
}

// SuggestHandler handles autocomplete suggestion requests.
type SuggestHandler struct {
	deps           SuggestDependencies
	maxSuggestions int
}

// NewSuggestHandler creates a new suggest handler.
func NewSuggestHandler(deps SuggestDependencies, maxSuggestions int) *SuggestHandler {
	return &SuggestHandler{deps: deps, maxSuggestions: maxSuggestions}
}

// HandleSuggest handles GET /suggest?q=...&max=... requests. Queries shorter
// than two characters yield an empty list, not an error.
func (h *SuggestHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query().Get("q")

	maxSuggestions := h.maxSuggestions
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		maxSuggestions = n
	}

	suggestions := h.deps.Suggest(r.Context(), query, maxSuggestions)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}
