package model

// Submission wraps a judged score row with the idempotency ID assigned by
// the scoring terminal that uploaded it.
type Submission struct {
	SubmissionID string   `json:"submission_id"`
	Row          ScoreRow `json:"row"`
}
