package applicationapimodels

import (
	"job-tracker-backend/models"
)

type StatusUpdateRequest struct {
	Statuses map[string]int `json:"statuses"` // application id -> new status id
}

func (r StatusUpdateRequest) Validate() error {
	if len(r.Statuses) == 0 {
		return models.NewValidationError("No status changes provided.")
	}
	return nil
}

type StatusUpdateOutcome string

const (
	StatusUpdateApplied      StatusUpdateOutcome = "applied"
	StatusUpdateSkipped      StatusUpdateOutcome = "skipped"
	StatusUpdateFailed       StatusUpdateOutcome = "failed"
	StatusUpdateNotAttempted StatusUpdateOutcome = "not_attempted"
)

type StatusUpdateResult struct {
	ID       string              `json:"id"`
	StatusID int                 `json:"status_id"`
	Outcome  StatusUpdateOutcome `json:"outcome"`
	Error    string              `json:"error,omitempty"`
}

type StatusUpdateResponse struct {
	Results []StatusUpdateResult `json:"results"`
	Failed  bool                 `json:"failed"`
}
