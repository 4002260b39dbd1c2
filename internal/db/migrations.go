package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"ocreader/internal/logger"
)

// MinSchemaVersion is the oldest schema that can still be upgraded. Older
// stores lack the content hash of items.
const MinSchemaVersion = 9

var (
	ErrUnsupportedSchema = errors.New("unsupported schema version")
	ErrDirtySchema       = errors.New("schema is dirty")
	ErrDowngrade         = errors.New("schema downgrade not supported")
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies all pending schema versions in order.
func Migrate(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Info("creating schema", "module", "db", "action", "migrate", "resource", "schema", "result", "ok")
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w: version %d", ErrDirtySchema, version)
	case version < MinSchemaVersion:
		return fmt.Errorf("%w: %d (need at least %d)", ErrUnsupportedSchema, version, MinSchemaVersion)
	default:
		logger.Debug("checking schema", "module", "db", "action", "migrate", "resource", "schema", "result", "ok", "version", version)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the current schema version, 0 for an empty store.
func SchemaVersion(db *sql.DB) (uint, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("init migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("init migrator: %w", err)
	}
	return m, nil
}

// MigrateTo upgrades the schema to exactly the given version. Migrations
// are up-only, so a target below the current version is rejected.
func MigrateTo(db *sql.DB, version uint) error {
	if version < MinSchemaVersion {
		return fmt.Errorf("%w: %d (need at least %d)", ErrUnsupportedSchema, version, MinSchemaVersion)
	}
	m, err := newMigrator(db)
	if err != nil {
		return err
	}

	current, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w: version %d", ErrDirtySchema, current)
	case current > version:
		return fmt.Errorf("%w: at %d, asked for %d", ErrDowngrade, current, version)
	}
	if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate to %d: %w", version, err)
	}
	return nil
}
