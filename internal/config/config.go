package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadedpez/parlor/internal/types"
	"github.com/joho/godotenv"
)

// Storage backends for the persisted score
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Default score file names, one per game
const (
	DefaultWinningsFile = "winnings.txt"
	DefaultScoreFile    = "score.txt"
)

// Config holds all configuration for the games
type Config struct {
	// Persistence
	DataDir      string
	StorageType  string // "file", "sqlite" or "memory"
	DBPath       string
	WinningsFile string
	ScoreFile    string

	// Output
	LogLevel string
	NoColor  bool

	// Round history indexing, disabled when ESURL is empty
	ESURL         string
	ESUsername    string
	ESPassword    string
	ESIndexPrefix string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dataDir := getEnvWithDefault("DATA_DIR", wd)
	cfg := &Config{
		DataDir:       dataDir,
		StorageType:   strings.ToLower(getEnvWithDefault("STORAGE_TYPE", StorageFile)),
		DBPath:        getEnvWithDefault("DB_PATH", filepath.Join(dataDir, "parlor.db")),
		WinningsFile:  filepath.Join(dataDir, getEnvWithDefault("WINNINGS_FILE", DefaultWinningsFile)),
		ScoreFile:     filepath.Join(dataDir, getEnvWithDefault("SCORE_FILE", DefaultScoreFile)),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "WARN"),
		NoColor:       os.Getenv("NO_COLOR") != "",
		ESURL:         os.Getenv("ES_URL"),
		ESUsername:    os.Getenv("ES_USERNAME"),
		ESPassword:    os.Getenv("ES_PASSWORD"),
		ESIndexPrefix: getEnvWithDefault("ES_INDEX_PREFIX", "parlor"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks the configuration for unsupported values
func (c *Config) validate() error {
	switch c.StorageType {
	case StorageFile, StorageSQLite, StorageMemory:
	default:
		return types.NewGameError(types.ErrConfigError, fmt.Sprintf("STORAGE_TYPE must be one of %q, %q or %q, got %q",
			StorageFile, StorageSQLite, StorageMemory, c.StorageType))
	}
	if c.DataDir == "" {
		return types.NewGameError(types.ErrConfigError, "DATA_DIR is required")
	}
	return nil
}

// HistoryIndexingEnabled reports whether rounds are indexed in Elasticsearch
func (c *Config) HistoryIndexingEnabled() bool {
	return c.ESURL != ""
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
