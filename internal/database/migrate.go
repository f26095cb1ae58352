package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/learnio/learnio/schemas"
)

// MigrationDirection selects which way Migrate moves the schema.
type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

func newMigrator(db *sqlx.DB, databaseName string) (*migrate.Migrate, error) {
	source, err := iofs.New(schemas.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("iofs.New() > %w", err)
	}

	driver, err := mysql.WithInstance(db.DB, &mysql.Config{
		DatabaseName:    databaseName,
		MigrationsTable: "schema_migrations",
	})
	if err != nil {
		return nil, fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return nil, fmt.Errorf("create migration instance: %w", err)
	}
	return m, nil
}

// Migrate applies (up) or reverts (down) the embedded schema migrations.
// steps limits how many migrations run; 0 means all of them.
func Migrate(db *sqlx.DB, databaseName string, direction MigrationDirection, steps int) error {
	m, err := newMigrator(db, databaseName)
	if err != nil {
		return err
	}

	switch direction {
	case MigrateUp:
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case MigrateDown:
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("database schema is up to date", "direction", direction)
		return nil
	}
	if err != nil {
		return fmt.Errorf("run %s migrations: %w", direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("database migrations applied", "direction", direction, "version", version, "dirty", dirty)
	return nil
}

// MigrationVersion returns the current schema version. A database without
// any applied migration reports version 0.
func MigrationVersion(db *sqlx.DB, databaseName string) (uint, bool, error) {
	m, err := newMigrator(db, databaseName)
	if err != nil {
		return 0, false, err
	}
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, nil
}
