package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver registration
)

// Open opens the SQLite database at path and applies the schema.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	// A memory database vanishes when its last connection closes.
	db.SetMaxOpenConns(1)

	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("Open: migrate: %w", err)
	}
	return db, nil
}
