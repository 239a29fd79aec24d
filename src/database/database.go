package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	stdlog "log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/username/bankrecon/backend/src/logger"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var DB *sql.DB

// Open connects to the SQLite database at databasePath with WAL, busy_timeout
// and foreign keys enabled. A single open connection serializes writers, which
// the validation lifecycle relies on.
func Open(databasePath string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", databasePath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", databasePath, err)
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// InitDB opens the database and stores it in DB, exiting on failure.
func InitDB(databasePath string) {
	db, err := Open(databasePath)
	if err != nil {
		stdlog.Fatalf("%v", err)
	}
	DB = db
	logger.L.Info("Database connection established with WAL mode, busy_timeout, and foreign_keys enabled.", "path", databasePath)
}

// RunMigrations applies all pending up migrations to db. When migrationsPath
// is empty the migrations embedded in the binary are used, otherwise they are
// read from that directory.
func RunMigrations(db *sql.DB, migrationsPath string) error {
	if db == nil {
		return errors.New("database connection is not initialized before running migrations")
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite migration driver: %w", err)
	}

	var m *migrate.Migrate
	var source string
	if migrationsPath == "" {
		source = "embedded"
		src, err := iofs.New(migrationsFS, "migrations")
		if err != nil {
			return fmt.Errorf("could not open embedded migrations: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", src, "sqlite", driver)
		if err != nil {
			return fmt.Errorf("migration instance creation failed: %w", err)
		}
	} else {
		abs, err := filepath.Abs(migrationsPath)
		if err != nil {
			return fmt.Errorf("invalid migrations path %s: %w", migrationsPath, err)
		}
		source = fmt.Sprintf("file://%s", filepath.ToSlash(abs))
		m, err = migrate.NewWithDatabaseInstance(source, "sqlite", driver)
		if err != nil {
			return fmt.Errorf("migration instance creation failed for %s: %w", source, err)
		}
	}

	logger.L.Info("Applying database migrations...", "source", source)
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.L.Info("No new database migrations to apply.")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.L.Info("Database migrations applied successfully.")
	return nil
}
