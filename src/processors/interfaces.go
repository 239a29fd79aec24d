package processors

import "github.com/username/bankrecon/backend/src/models"

// ReconciliationProcessor checks a period's movements against its checkpoints.
// Implementations are pure: the same input always yields the same result.
type ReconciliationProcessor interface {
	Evaluate(movements []models.Movement, checkpoints []models.Checkpoint) models.ReconciliationResult
}
