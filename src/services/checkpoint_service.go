package services

import (
	"context"

	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/model"
	"github.com/username/bankrecon/backend/src/models"
	"github.com/username/bankrecon/backend/src/security/validation"
)

type checkpointServiceImpl struct {
	store model.Store
}

func NewCheckpointService(store model.Store) CheckpointService {
	return &checkpointServiceImpl{store: store}
}

func (s *checkpointServiceImpl) CreateCheckpoint(ctx context.Context, periodID string, in models.CheckpointInput) (*models.Checkpoint, error) {
	if err := validation.ValidateCheckpointInput(in); err != nil {
		return nil, invalid(err)
	}

	c := &models.Checkpoint{PeriodID: periodID, Date: in.Date, Balance: in.Balance}
	err := s.store.InTx(ctx, func(tx model.Store) error {
		p, err := tx.GetPeriod(ctx, periodID)
		if err != nil {
			return translateStoreError(err, "period "+periodID)
		}
		if err := requireInPeriod(p, c.Date); err != nil {
			return err
		}
		return translateStoreError(tx.CreateCheckpoint(ctx, c), "checkpoint")
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Checkpoint created", "periodID", periodID, "checkpointID", c.ID)
	return c, nil
}

// UpdateCheckpoint applies the non-nil fields of patch. A new date must still
// fall inside the checkpoint's period.
func (s *checkpointServiceImpl) UpdateCheckpoint(ctx context.Context, id string, patch models.CheckpointPatch) (*models.Checkpoint, error) {
	if err := validation.ValidateCheckpointPatch(patch); err != nil {
		return nil, invalid(err)
	}

	var updated *models.Checkpoint
	err := s.store.InTx(ctx, func(tx model.Store) error {
		c, err := tx.GetCheckpoint(ctx, id)
		if err != nil {
			return translateStoreError(err, "checkpoint "+id)
		}
		if patch.Date != nil {
			p, err := tx.GetPeriod(ctx, c.PeriodID)
			if err != nil {
				return translateStoreError(err, "period "+c.PeriodID)
			}
			if err := requireInPeriod(p, *patch.Date); err != nil {
				return err
			}
			c.Date = *patch.Date
		}
		if patch.Balance != nil {
			c.Balance = *patch.Balance
		}
		if err := tx.UpdateCheckpoint(ctx, c); err != nil {
			return translateStoreError(err, "checkpoint "+id)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Checkpoint updated", "checkpointID", id)
	return updated, nil
}

func (s *checkpointServiceImpl) GetCheckpoint(ctx context.Context, id string) (*models.Checkpoint, error) {
	c, err := s.store.GetCheckpoint(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "checkpoint "+id)
	}
	return c, nil
}

func (s *checkpointServiceImpl) ListCheckpoints(ctx context.Context, periodID string) ([]models.Checkpoint, error) {
	if _, err := s.store.GetPeriod(ctx, periodID); err != nil {
		return nil, translateStoreError(err, "period "+periodID)
	}
	checkpoints, err := s.store.ListCheckpoints(ctx, periodID)
	if err != nil {
		return nil, translateStoreError(err, "checkpoints of period "+periodID)
	}
	return checkpoints, nil
}

func (s *checkpointServiceImpl) DeleteCheckpoint(ctx context.Context, id string) error {
	if err := s.store.DeleteCheckpoint(ctx, id); err != nil {
		return translateStoreError(err, "checkpoint "+id)
	}
	logger.FromContext(ctx).Info("Checkpoint deleted", "checkpointID", id)
	return nil
}
