package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/username/bankrecon/backend/src/logger"
	"github.com/username/bankrecon/backend/src/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflicts with an existing one")
)

// timestampLayout is fixed-width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Store is the persistence surface used by the services.
//
//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Store
type Store interface {
	// InTx runs fn against a Store bound to a single database transaction.
	// The transaction commits if fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(Store) error) error

	CreatePeriod(ctx context.Context, p *models.Period) error
	UpdatePeriod(ctx context.Context, p *models.Period) error
	GetPeriod(ctx context.Context, id string) (*models.Period, error)
	ListPeriods(ctx context.Context) ([]models.Period, error)
	DeletePeriod(ctx context.Context, id string) error

	CreateMovement(ctx context.Context, m *models.Movement) error
	GetMovement(ctx context.Context, id string) (*models.Movement, error)
	ListMovements(ctx context.Context, periodID string) ([]models.Movement, error)
	DeleteMovement(ctx context.Context, id string) error

	CreateCheckpoint(ctx context.Context, c *models.Checkpoint) error
	UpdateCheckpoint(ctx context.Context, c *models.Checkpoint) error
	GetCheckpoint(ctx context.Context, id string) (*models.Checkpoint, error)
	ListCheckpoints(ctx context.Context, periodID string) ([]models.Checkpoint, error)
	DeleteCheckpoint(ctx context.Context, id string) error

	CreateValidation(ctx context.Context, v *models.Validation) error
	GetValidation(ctx context.Context, id string) (*models.Validation, error)
	GetCurrentValidation(ctx context.Context, periodID string) (*models.Validation, error)
	ListValidations(ctx context.Context, periodID string) ([]models.Validation, error)
	MarkValidationHistorical(ctx context.Context, id string) error
	DeleteValidation(ctx context.Context, id string) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore implements Store on top of the SQLite schema in database/migrations.
type SQLStore struct {
	db  *sql.DB
	tx  *sql.Tx
	now func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, now: time.Now}
}

func (s *SQLStore) q() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// InTx starts a transaction, or reuses the current one when s is already
// transactional so that nested calls share a single unit of work.
func (s *SQLStore) InTx(ctx context.Context, fn func(Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.FromContext(ctx).Error("Error rolling back DB transaction", "rollbackError", rbErr)
			}
		}
	}()

	if err := fn(&SQLStore{db: s.db, tx: tx, now: s.now}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}

func (s *SQLStore) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// expectOneRow maps a zero-row UPDATE or DELETE to ErrNotFound.
func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
