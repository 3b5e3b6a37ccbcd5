// Package migration runs schema migrations against the local sqlite
// store at startup.
package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"coursesync/internal/config"
)

// Migration drives golang-migrate against the daemon's sqlite file,
// using the same source-file/database-driver split golang-migrate
// expects regardless of backend.
type Migration struct {
	cfg *config.Config
}

func NewMigration(cfg *config.Config) *Migration {
	return &Migration{cfg: cfg}
}

// Up applies every pending migration, tolerating the already-current
// case.
func (mg *Migration) Up(db *sql.DB) (err error) {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("build sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+mg.cfg.DB.Migrations,
		"sqlite3", driver,
	)
	if err != nil {
		return fmt.Errorf("build migrator: %w", err)
	}
	// m is not closed: closing it closes the sqlite driver, which closes
	// db, and db stays in use by the caller after migrating.

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
