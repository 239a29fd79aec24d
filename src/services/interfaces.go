package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/security/validation"
)

// Define common service errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource already exists")
	ErrInvalidInput = errors.New("invalid input")
)

// PeriodInput is the client-supplied part of a Period.
type PeriodInput struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
}

// PeriodService manages accounting periods.
type PeriodService interface {
	CreatePeriod(ctx context.Context, in PeriodInput) (*models.Period, error)
	UpdatePeriod(ctx context.Context, id string, in PeriodInput) (*models.Period, error)
	GetPeriod(ctx context.Context, id string) (*models.Period, error)
	ListPeriods(ctx context.Context) ([]models.Period, error)
	DeletePeriod(ctx context.Context, id string) error
}

// MovementService manages bank movements of a period.
type MovementService interface {
	CreateMovement(ctx context.Context, periodID string, in models.MovementInput) (*models.Movement, error)
	// ImportMovements parses a bank statement and stores every row, or none.
	ImportMovements(ctx context.Context, periodID string, file io.Reader) ([]models.Movement, error)
	GetMovement(ctx context.Context, id string) (*models.Movement, error)
	ListMovements(ctx context.Context, periodID string) ([]models.Movement, error)
	DeleteMovement(ctx context.Context, id string) error
}

// CheckpointService manages balance checkpoints of a period.
type CheckpointService interface {
	CreateCheckpoint(ctx context.Context, periodID string, in models.CheckpointInput) (*models.Checkpoint, error)
	UpdateCheckpoint(ctx context.Context, id string, patch models.CheckpointPatch) (*models.Checkpoint, error)
	GetCheckpoint(ctx context.Context, id string) (*models.Checkpoint, error)
	ListCheckpoints(ctx context.Context, periodID string) ([]models.Checkpoint, error)
	DeleteCheckpoint(ctx context.Context, id string) error
}

// ValidationService runs reconciliations and keeps their history.
type ValidationService interface {
	// CreateValidation reconciles the period's current data and stores the
	// result as the period's current validation. The previous current
	// validation, if any, becomes historical and is linked from the new one.
	CreateValidation(ctx context.Context, periodID string) (*models.Validation, error)
	GetValidation(ctx context.Context, id string) (*models.Validation, error)
	GetCurrentValidation(ctx context.Context, periodID string) (*models.Validation, error)
	ListValidations(ctx context.Context, periodID string) ([]models.Validation, error)
	DeleteValidation(ctx context.Context, id string) error
}

// translateStoreError maps persistence errors onto service errors, keeping
// what describes the failing record.
func translateStoreError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, model.ErrConflict):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	case errors.Is(err, validation.ErrValidationFailed):
		return invalid(err)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// requireInPeriod rejects dates outside [StartDate, EndDate].
func requireInPeriod(p *models.Period, d models.Date) error {
	if !p.Contains(d) {
		return fmt.Errorf("%w: date %s is outside period %s..%s", ErrInvalidInput, d, p.StartDate, p.EndDate)
	}
	return nil
}
