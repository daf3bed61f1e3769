package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fadedpez/parlor/internal/config"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Show usage if no arguments provided
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))

	switch os.Args[1] {
	case "migrate":
		applyMigrations(cfg.DBPath, logger)

	case "status":
		showStatus(cfg.DBPath, logger)

	case "help":
		printUsage()

	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migration migrate  - Apply pending migrations to DB_PATH")
	fmt.Println("  migration status   - List migrations and whether they are applied")
	fmt.Println("  migration help     - Show this help")
}

func openDB(dbPath string) *sql.DB {
	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return db
}

func applyMigrations(dbPath string, logger *logging.Logger) {
	db := openDB(dbPath)
	defer db.Close()

	if err := migrations.NewMigrator(db, logger).MigrateUp(); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	fmt.Printf("Migrations applied successfully to %s\n", dbPath)
}

func showStatus(dbPath string, logger *logging.Logger) {
	db := openDB(dbPath)
	defer db.Close()

	migrator := migrations.NewMigrator(db, logger)
	if err := migrator.Initialize(); err != nil {
		log.Fatalf("Error initializing migrations table: %v", err)
	}

	applied, err := migrator.GetAppliedMigrations()
	if err != nil {
		log.Fatalf("Error reading applied migrations: %v", err)
	}
	available, err := migrator.LoadMigrations()
	if err != nil {
		log.Fatalf("Error loading migrations: %v", err)
	}

	for _, m := range available {
		state := "pending"
		if applied[m.Version] {
			state = "applied"
		}
		fmt.Printf("%s  %-8s %s\n", m.Version, state, m.Description)
	}
}
