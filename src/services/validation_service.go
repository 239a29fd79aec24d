package services

import (
	"context"
	"errors"
	"time"

	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/processors"
)

type validationServiceImpl struct {
	store     model.Store
	processor processors.ReconciliationProcessor
	now       func() time.Time
}

func NewValidationService(store model.Store, processor processors.ReconciliationProcessor) ValidationService {
	return &validationServiceImpl{store: store, processor: processor, now: time.Now}
}

// CreateValidation runs as one transaction: demoting the previous current
// validation and inserting the new one either both happen or neither does.
func (s *validationServiceImpl) CreateValidation(ctx context.Context, periodID string) (*models.Validation, error) {
	var created *models.Validation
	err := s.store.InTx(ctx, func(tx model.Store) error {
		var previousID *string
		current, err := tx.GetCurrentValidation(ctx, periodID)
		switch {
		case err == nil:
			if err := tx.MarkValidationHistorical(ctx, current.ID); err != nil {
				return translateStoreError(err, "validation "+current.ID)
			}
			id := current.ID
			previousID = &id
		case !errors.Is(err, model.ErrNotFound):
			return translateStoreError(err, "current validation of period "+periodID)
		}

		period, err := tx.GetPeriod(ctx, periodID)
		if err != nil {
			return translateStoreError(err, "period "+periodID)
		}
		movements, err := tx.ListMovements(ctx, periodID)
		if err != nil {
			return translateStoreError(err, "movements of period "+periodID)
		}
		checkpoints, err := tx.ListCheckpoints(ctx, periodID)
		if err != nil {
			return translateStoreError(err, "checkpoints of period "+periodID)
		}

		result := s.processor.Evaluate(movements, checkpoints)

		v := &models.Validation{
			PeriodID:             periodID,
			IsValid:              result.IsValid,
			ValidationErrors:     result.Errors,
			Movements:            movements,
			Checkpoints:          checkpoints,
			PreviousValidationID: previousID,
			IsHistorical:         false,
			CreatedAt:            s.now().UTC(),
		}
		if err := tx.CreateValidation(ctx, v); err != nil {
			return translateStoreError(err, "validation of period "+periodID)
		}
		v.Period = period
		created = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Validation created",
		"periodID", periodID, "validationID", created.ID, "isValid", created.IsValid,
		"errorCount", len(created.ValidationErrors))
	return created, nil
}

func (s *validationServiceImpl) GetValidation(ctx context.Context, id string) (*models.Validation, error) {
	v, err := s.store.GetValidation(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "validation "+id)
	}
	return s.withPeriod(ctx, v)
}

// GetCurrentValidation returns ErrNotFound both for an unknown period and for
// a period that has no current validation.
func (s *validationServiceImpl) GetCurrentValidation(ctx context.Context, periodID string) (*models.Validation, error) {
	v, err := s.store.GetCurrentValidation(ctx, periodID)
	if err != nil {
		return nil, translateStoreError(err, "current validation of period "+periodID)
	}
	return s.withPeriod(ctx, v)
}

// ListValidations returns the period's validations, newest first.
func (s *validationServiceImpl) ListValidations(ctx context.Context, periodID string) ([]models.Validation, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, translateStoreError(err, "period "+periodID)
	}
	validations, err := s.store.ListValidations(ctx, periodID)
	if err != nil {
		return nil, translateStoreError(err, "validations of period "+periodID)
	}
	return validations, nil
}

// DeleteValidation removes one validation. Deleting the current one leaves
// the period without a current validation until the next run.
func (s *validationServiceImpl) DeleteValidation(ctx context.Context, id string) error {
	if err := s.store.DeleteValidation(ctx, id); err != nil {
		return translateStoreError(err, "validation "+id)
	}
	logger.FromContext(ctx).Info("Validation deleted", "validationID", id)
	return nil
}

func (s *validationServiceImpl) withPeriod(ctx context.Context, v *models.Validation) (*models.Validation, error) {
	p, err := s.store.GetPeriod(ctx, v.PeriodID)
	if err != nil {
		return nil, translateStoreError(err, "period "+v.PeriodID)
	}
	v.Period = p
	return v, nil
}
