package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/bankrecon/backend/src/models"
)

const checkpointColumns = `id, period_id, date, balance`

func scanCheckpoint(row interface{ Scan(...any) error }) (*models.Checkpoint, error) {
	var c models.Checkpoint
	if err := row.Scan(&c.ID, &c.PeriodID, &c.Date, &c.Balance); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLStore) CreateCheckpoint(ctx context.Context, c *models.Checkpoint) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.q().ExecContext(ctx,
		`INSERT INTO balance_checkpoints (id, period_id, date, balance, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PeriodID, c.Date, c.Balance.String(), s.timestamp())
	if err != nil {
		return fmt.Errorf("insert checkpoint: %w", err)
	}
	return nil
}

func (s *SQLStore) UpdateCheckpoint(ctx context.Context, c *models.Checkpoint) error {
	res, err := s.q().ExecContext(ctx,
		`UPDATE balance_checkpoints SET date = ?, balance = ? WHERE id = ?`,
		c.Date, c.Balance.String(), c.ID)
	if err != nil {
		return fmt.Errorf("update checkpoint %s: %w", c.ID, err)
	}
	return expectOneRow(res)
}

func (s *SQLStore) GetCheckpoint(ctx context.Context, id string) (*models.Checkpoint, error) {
	row := s.q().QueryRowContext(ctx, `SELECT `+checkpointColumns+` FROM balance_checkpoints WHERE id = ?`, id)
	c, err := scanCheckpoint(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get checkpoint %s: %w", id, err)
	}
	return c, nil
}

// ListCheckpoints returns the period's checkpoints by date, then insertion
// order, so the last element is the one that closes the period.
func (s *SQLStore) ListCheckpoints(ctx context.Context, periodID string) ([]models.Checkpoint, error) {
	rows, err := s.q().QueryContext(ctx,
		`SELECT `+checkpointColumns+` FROM balance_checkpoints WHERE period_id = ? ORDER BY date ASC, rowid ASC`, periodID)
	if err != nil {
		return nil, fmt.Errorf("list checkpoints for period %s: %w", periodID, err)
	}
	defer rows.Close()

	checkpoints := []models.Checkpoint{}
	for rows.Next() {
		c, err := scanCheckpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		checkpoints = append(checkpoints, *c)
	}
	return checkpoints, rows.Err()
}

func (s *SQLStore) DeleteCheckpoint(ctx context.Context, id string) error {
	res, err := s.q().ExecContext(ctx, `DELETE FROM balance_checkpoints WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete checkpoint %s: %w", id, err)
	}
	return expectOneRow(res)
}
