// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/devalpoteam/instascore-engine/internal/domain/dedupe"
	"github.com/devalpoteam/instascore-engine/internal/domain/model"
)

// ScoreDependencies defines the interface for score ingestion dependencies.
type ScoreDependencies interface {
	dedupe.Deduper
	Enqueue(ctx context.Context, s model.Submission) bool
}

// ScoresHandler handles score submission requests.
type ScoresHandler struct {
	deps ScoreDependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps ScoreDependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// scoreRequest is the wire format for a judged apparatus score.
type scoreRequest struct {
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

func (r *scoreRequest) validate() error {
	switch {
	case r.SubmissionID == "":
		return fmt.Errorf("submission_id is required: %w", ErrBadRequest)
	case r.AthleteName == "":
		return fmt.Errorf("athlete_name is required: %w", ErrBadRequest)
	case r.Apparatus == "":
		return fmt.Errorf("apparatus is required: %w", ErrBadRequest)
	case r.Value < 0:
		return fmt.Errorf("value must not be negative: %w", ErrBadRequest)
	}
	return nil
}

func (r *scoreRequest) row() model.ScoreRow {
	return model.ScoreRow{
		AthleteName:   r.AthleteName,
		TeamName:      r.TeamName,
		Level:         r.Level,
		Band:          r.Band,
		Subdivision:   r.Subdivision,
		Apparatus:     r.Apparatus,
		Value:         r.Value,
		ApparatusRank: r.ApparatusRank,
	}
}

// HandlePostScore handles POST /scores requests.
func (h *ScoresHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), req.SubmissionID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	sub := model.Submission{SubmissionID: req.SubmissionID, Row: req.row()}
	if ok := h.deps.Enqueue(r.Context(), sub); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), req.SubmissionID)
		writeError(w, http.StatusTooManyRequests, "backpressure", ErrBackpressure)
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}
