package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens the database at dbPath, creating its directory, and
// applies pending migrations.
func OpenSQLite(dbPath string, logger *logging.Logger) (*sql.DB, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.NewMigrator(db, logger).MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return db, nil
}
