package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/username/bankrecon/backend/src/models"
)

const validationColumns = `id, period_id, is_valid, validation_errors, movements, checkpoints,
	previous_validation_id, is_historical, created_at`

func scanValidation(row interface{ Scan(...any) error }) (*models.Validation, error) {
	var (
		v                                 models.Validation
		errorsJSON, movementsJSON, cpJSON string
		previousID                        sql.NullString
		createdAt                         string
	)
	if err := row.Scan(&v.ID, &v.PeriodID, &v.IsValid, &errorsJSON, &movementsJSON, &cpJSON,
		&previousID, &v.IsHistorical, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(errorsJSON), &v.ValidationErrors); err != nil {
		return nil, fmt.Errorf("decode validation errors of %s: %w", v.ID, err)
	}
	if err := json.Unmarshal([]byte(movementsJSON), &v.Movements); err != nil {
		return nil, fmt.Errorf("decode movement snapshot of %s: %w", v.ID, err)
	}
	if err := json.Unmarshal([]byte(cpJSON), &v.Checkpoints); err != nil {
		return nil, fmt.Errorf("decode checkpoint snapshot of %s: %w", v.ID, err)
	}
	if previousID.Valid {
		id := previousID.String
		v.PreviousValidationID = &id
	}
	ts, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of %s: %w", v.ID, err)
	}
	v.CreatedAt = ts
	return &v, nil
}

func marshalSnapshot(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CreateValidation inserts v as written by the caller. A second current
// (non-historical) validation for the same period yields ErrConflict.
func (s *SQLStore) CreateValidation(ctx context.Context, v *models.Validation) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = s.now().UTC()
	}
	if v.ValidationErrors == nil {
		v.ValidationErrors = []models.ValidationError{}
	}
	if v.Movements == nil {
		v.Movements = []models.Movement{}
	}
	if v.Checkpoints == nil {
		v.Checkpoints = []models.Checkpoint{}
	}

	errorsJSON, err := marshalSnapshot(v.ValidationErrors)
	if err != nil {
		return fmt.Errorf("encode validation errors: %w", err)
	}
	movementsJSON, err := marshalSnapshot(v.Movements)
	if err != nil {
		return fmt.Errorf("encode movement snapshot: %w", err)
	}
	cpJSON, err := marshalSnapshot(v.Checkpoints)
	if err != nil {
		return fmt.Errorf("encode checkpoint snapshot: %w", err)
	}

	var previousID sql.NullString
	if v.PreviousValidationID != nil {
		previousID = sql.NullString{String: *v.PreviousValidationID, Valid: true}
	}

	_, err = s.q().ExecContext(ctx,
		`INSERT INTO validations (`+validationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.PeriodID, v.IsValid, errorsJSON, movementsJSON, cpJSON,
		previousID, v.IsHistorical, v.CreatedAt.UTC().Format(timestampLayout))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("current validation for period %s: %w", v.PeriodID, ErrConflict)
		}
		return fmt.Errorf("insert validation: %w", err)
	}
	return nil
}

func (s *SQLStore) GetValidation(ctx context.Context, id string) (*models.Validation, error) {
	row := s.q().QueryRowContext(ctx, `SELECT `+validationColumns+` FROM validations WHERE id = ?`, id)
	v, err := scanValidation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get validation %s: %w", id, err)
	}
	return v, nil
}

// GetCurrentValidation returns the period's non-historical validation, or
// ErrNotFound when the period has never been validated.
func (s *SQLStore) GetCurrentValidation(ctx context.Context, periodID string) (*models.Validation, error) {
	row := s.q().QueryRowContext(ctx,
		`SELECT `+validationColumns+` FROM validations WHERE period_id = ? AND is_historical = 0`, periodID)
	v, err := scanValidation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get current validation for period %s: %w", periodID, err)
	}
	return v, nil
}

// ListValidations returns the period's validations, newest first.
func (s *SQLStore) ListValidations(ctx context.Context, periodID string) ([]models.Validation, error) {
	rows, err := s.q().QueryContext(ctx,
		`SELECT `+validationColumns+` FROM validations WHERE period_id = ? ORDER BY created_at DESC, rowid DESC`, periodID)
	if err != nil {
		return nil, fmt.Errorf("list validations for period %s: %w", periodID, err)
	}
	defer rows.Close()

	validations := []models.Validation{}
	for rows.Next() {
		v, err := scanValidation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan validation: %w", err)
		}
		validations = append(validations, *v)
	}
	return validations, rows.Err()
}

func (s *SQLStore) MarkValidationHistorical(ctx context.Context, id string) error {
	res, err := s.q().ExecContext(ctx, `UPDATE validations SET is_historical = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark validation %s historical: %w", id, err)
	}
	return expectOneRow(res)
}

// DeleteValidation removes one validation. Any validation that pointed at it
// keeps existing with a null previous link.
func (s *SQLStore) DeleteValidation(ctx context.Context, id string) error {
	res, err := s.q().ExecContext(ctx, `DELETE FROM validations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete validation %s: %w", id, err)
	}
	return expectOneRow(res)
}
