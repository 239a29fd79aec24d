package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/username/bankrecon/backend/src/models"
)

const periodColumns = `id, year, month, start_date, end_date`

func scanPeriod(row interface{ Scan(...any) error }) (*models.Period, error) {
	var p models.Period
	if err := row.Scan(&p.ID, &p.Year, &p.Month, &p.StartDate, &p.EndDate); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePeriod inserts p, assigning it a new id. A second period for the
// same (year, month) yields ErrConflict.
func (s *SQLStore) CreatePeriod(ctx context.Context, p *models.Period) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.q().ExecContext(ctx,
		`INSERT INTO periods (id, year, month, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Year, p.Month, p.StartDate, p.EndDate, s.timestamp())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("period %d/%s: %w", p.Year, p.Month, ErrConflict)
		}
		return fmt.Errorf("insert period: %w", err)
	}
	return nil
}

func (s *SQLStore) UpdatePeriod(ctx context.Context, p *models.Period) error {
	res, err := s.q().ExecContext(ctx,
		`UPDATE periods SET year = ?, month = ?, start_date = ?, end_date = ? WHERE id = ?`,
		p.Year, p.Month, p.StartDate, p.EndDate, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("period %d/%s: %w", p.Year, p.Month, ErrConflict)
		}
		return fmt.Errorf("update period %s: %w", p.ID, err)
	}
	return expectOneRow(res)
}

func (s *SQLStore) GetPeriod(ctx context.Context, id string) (*models.Period, error) {
	row := s.q().QueryRowContext(ctx, `SELECT `+periodColumns+` FROM periods WHERE id = ?`, id)
	p, err := scanPeriod(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get period %s: %w", id, err)
	}
	return p, nil
}

// ListPeriods returns every period in chronological order.
func (s *SQLStore) ListPeriods(ctx context.Context) ([]models.Period, error) {
	rows, err := s.q().QueryContext(ctx, `SELECT `+periodColumns+` FROM periods ORDER BY start_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	periods := []models.Period{}
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, *p)
	}
	return periods, rows.Err()
}

// DeletePeriod removes the period together with its movements, checkpoints
// and validations (ON DELETE CASCADE).
func (s *SQLStore) DeletePeriod(ctx context.Context, id string) error {
	res, err := s.q().ExecContext(ctx, `DELETE FROM periods WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete period %s: %w", id, err)
	}
	return expectOneRow(res)
}
