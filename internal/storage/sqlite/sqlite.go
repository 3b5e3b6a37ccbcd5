// Package sqlite implements the local Store component on top of
// database/sql and the mattn/go-sqlite3 driver.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns the single *sql.DB handle shared by the course and todo
// repositories. Callers construct one per process and pass it to both.
type Store struct {
	db *sql.DB
}

// Open connects to the sqlite file at path, enabling foreign keys and
// WAL mode the same way the rest of the engine's storage layer does.
// Schema management is a separate step via internal/migration; Open
// itself never creates tables.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying handle for the migration runner.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error {
	return s.db.Close()
}
