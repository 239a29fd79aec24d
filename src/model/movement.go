package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/bankrecon/backend/src/models"
)

const movementColumns = `id, period_id, date, wording, amount`

func scanMovement(row interface{ Scan(...any) error }) (*models.Movement, error) {
	var m models.Movement
	if err := row.Scan(&m.ID, &m.PeriodID, &m.Date, &m.Wording, &m.Amount); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SQLStore) CreateMovement(ctx context.Context, m *models.Movement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := s.q().ExecContext(ctx,
		`INSERT INTO bank_movements (id, period_id, date, wording, amount, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.PeriodID, m.Date, m.Wording, m.Amount.String(), s.timestamp())
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (s *SQLStore) GetMovement(ctx context.Context, id string) (*models.Movement, error) {
	row := s.q().QueryRowContext(ctx, `SELECT `+movementColumns+` FROM bank_movements WHERE id = ?`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get movement %s: %w", id, err)
	}
	return m, nil
}

// ListMovements returns the period's movements by date, then insertion order.
func (s *SQLStore) ListMovements(ctx context.Context, periodID string) ([]models.Movement, error) {
	rows, err := s.q().QueryContext(ctx,
		`SELECT `+movementColumns+` FROM bank_movements WHERE period_id = ? ORDER BY date ASC, rowid ASC`, periodID)
	if err != nil {
		return nil, fmt.Errorf("list movements for period %s: %w", periodID, err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, *m)
	}
	return movements, rows.Err()
}

func (s *SQLStore) DeleteMovement(ctx context.Context, id string) error {
	res, err := s.q().ExecContext(ctx, `DELETE FROM bank_movements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movement %s: %w", id, err)
	}
	return expectOneRow(res)
}
