package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fadedpez/parlor/pkg/storage"
)

// Store keeps one row per game in the scores table
type Store struct {
	db   *sql.DB
	game string
}

var _ storage.ScoreStore = (*Store)(nil)

// New creates a store for game on an already migrated database
func New(db *sql.DB, game string) *Store {
	return &Store{db: db, game: game}
}

// Load returns the stored value, or 0 if the game has no row yet
func (s *Store) Load(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM scores WHERE game = ?`, s.game).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error loading score for %s: %w", s.game, err)
	}
	return value, nil
}

// Save upserts the value for the game
func (s *Store) Save(ctx context.Context, value int64) error {
	formattedTime := time.Now().UTC().Format("2006-01-02 15:04:05")

	query := `
		INSERT INTO scores (game, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(game) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, s.game, value, formattedTime); err != nil {
		return fmt.Errorf("error saving score for %s: %w", s.game, err)
	}
	return nil
}
