package services

import (
	"context"
	"fmt"
	"io"

	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/parsers"
	"github.com/username/bankrecon/backend/src/security/validation"
)

type movementServiceImpl struct {
	store  model.Store
	parser parsers.Parser
}

func NewMovementService(store model.Store, parser parsers.Parser) MovementService {
	return &movementServiceImpl{store: store, parser: parser}
}

func (s *movementServiceImpl) CreateMovement(ctx context.Context, periodID string, in models.MovementInput) (*models.Movement, error) {
	in, err := validation.ValidateMovementInput(in, "period "+periodID)
	if err != nil {
		return nil, invalid(err)
	}

	m := &models.Movement{PeriodID: periodID, Date: in.Date, Wording: in.Wording, Amount: in.Amount}
	err = s.store.InTx(ctx, func(tx model.Store) error {
		p, err := tx.GetPeriod(ctx, periodID)
		if err != nil {
			return translateStoreError(err, "period "+periodID)
		}
		if err := requireInPeriod(p, m.Date); err != nil {
			return err
		}
		return translateStoreError(tx.CreateMovement(ctx, m), "movement")
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Movement created", "periodID", periodID, "movementID", m.ID)
	return m, nil
}

func (s *movementServiceImpl) ImportMovements(ctx context.Context, periodID string, file io.Reader) ([]models.Movement, error) {
	inputs, err := s.parser.Parse(file)
	if err != nil {
		return nil, translateStoreError(err, "bank statement")
	}

	created := make([]models.Movement, 0, len(inputs))
	err = s.store.InTx(ctx, func(tx model.Store) error {
		p, err := tx.GetPeriod(ctx, periodID)
		if err != nil {
			return translateStoreError(err, "period "+periodID)
		}
		for i, in := range inputs {
			if err := requireInPeriod(p, in.Date); err != nil {
				return fmt.Errorf("movement %d: %w", i+1, err)
			}
			m := models.Movement{PeriodID: periodID, Date: in.Date, Wording: in.Wording, Amount: in.Amount}
			if err := tx.CreateMovement(ctx, &m); err != nil {
				return translateStoreError(err, fmt.Sprintf("movement %d", i+1))
			}
			created = append(created, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Bank statement imported", "periodID", periodID, "movements", len(created))
	return created, nil
}

func (s *movementServiceImpl) GetMovement(ctx context.Context, id string) (*models.Movement, error) {
	m, err := s.store.GetMovement(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "movement "+id)
	}
	return m, nil
}

// ListMovements returns ErrNotFound for an unknown period rather than an
// empty list.
func (s *movementServiceImpl) ListMovements(ctx context.Context, periodID string) ([]models.Movement, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, translateStoreError(err, "period "+periodID)
	}
	movements, err := s.store.ListMovements(ctx, periodID)
	if err != nil {
		return nil, translateStoreError(err, "movements of period "+periodID)
	}
	return movements, nil
}

func (s *movementServiceImpl) DeleteMovement(ctx context.Context, id string) error {
	if err := s.store.DeleteMovement(ctx, id); err != nil {
		return translateStoreError(err, "movement "+id)
	}
	logger.FromContext(ctx).Info("Movement deleted", "movementID", id)
	return nil
}
