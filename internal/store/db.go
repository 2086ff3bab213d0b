package store

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
)

const dbFileName = "events.duckdb"

// NewDB opens the DuckDB database at path. ":memory:" and "" open an
// in-memory database.
func NewDB(path string) (*sql.DB, error) {
	if path == ":memory:" {
		path = ""
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to duckdb %q: %w", path, err)
	}
	return db, nil
}

// DBPath returns the database location for a data folder.
func DBPath(dataFolder string) string {
	if dataFolder == "" {
		return ":memory:"
	}
	return filepath.Join(dataFolder, dbFileName)
}
