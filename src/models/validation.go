package models

import "time"

// ReconciliationResult is the verdict of one engine run.
type ReconciliationResult struct {
	IsValid bool              `json:"isValid"`
	Errors  []ValidationError `json:"validationErrors"`
}

// Validation is the persisted outcome of reconciling one period.
//
// Movements and Checkpoints are the snapshot the engine saw. Only one
// validation per period has IsHistorical == false; older ones are reachable
// through PreviousValidationID.
type Validation struct {
	ID                   string            `json:"id"`
	PeriodID             string            `json:"periodId"`
	Period               *Period           `json:"period,omitempty"`
	IsValid              bool              `json:"isValid"`
	ValidationErrors     []ValidationError `json:"validationErrors"`
	Movements            []Movement        `json:"movements"`
	Checkpoints          []Checkpoint      `json:"checkpoints"`
	PreviousValidationID *string           `json:"previousValidation"`
	IsHistorical         bool              `json:"isHistorical"`
	CreatedAt            time.Time         `json:"createdAt"`
}
