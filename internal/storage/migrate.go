package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/ledger/*.sql migrations/counter/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded migrations for one service's schema. It is
// idempotent and runs after WaitReady, before the service accepts traffic.
// Each service tracks its version in its own table so both can share a
// database without clashing.
func Migrate(db *sql.DB, service string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: service + "_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("postgres driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+service)
	if err != nil {
		return fmt.Errorf("iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
