package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/google/uuid"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// SQLiteRepository implements Repository on the rounds table
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a repository on an already migrated database.
// The caller owns db; Close does not close it.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// SaveRound inserts record, assigning an ID and time if missing
func (r *SQLiteRepository) SaveRound(ctx context.Context, record *entities.RoundRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CompletedAt.IsZero() {
		record.CompletedAt = time.Now()
	}

	query := `
		INSERT INTO rounds (id, game, outcome, delta, score_after, detail, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.Game,
		string(record.Outcome),
		record.Delta,
		record.ScoreAfter,
		record.Detail,
		record.CompletedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("error saving round: %w", err)
	}
	return nil
}

// RecentRounds returns up to limit rounds, newest first
func (r *SQLiteRepository) RecentRounds(ctx context.Context, game string, limit int) ([]*entities.RoundRecord, error) {
	query := `
		SELECT id, game, outcome, delta, score_after, detail, completed_at
		FROM rounds
		WHERE game = ?
		ORDER BY completed_at DESC, rowid DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, game, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying rounds: %w", err)
	}
	defer rows.Close()

	records := make([]*entities.RoundRecord, 0)
	for rows.Next() {
		var record entities.RoundRecord
		var outcome, completedAt string

		if err := rows.Scan(
			&record.ID,
			&record.Game,
			&outcome,
			&record.Delta,
			&record.ScoreAfter,
			&record.Detail,
			&completedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning round row: %w", err)
		}

		record.Outcome = entities.Outcome(outcome)
		record.CompletedAt, err = parseTimestamp(completedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating round rows: %w", err)
	}
	return records, nil
}

// Stats aggregates all rounds of game
func (r *SQLiteRepository) Stats(ctx context.Context, game string) (*entities.RoundStatistics, error) {
	query := `
		SELECT outcome, COUNT(*), COALESCE(SUM(delta), 0)
		FROM rounds
		WHERE game = ?
		GROUP BY outcome
	`

	rows, err := r.db.QueryContext(ctx, query, game)
	if err != nil {
		return nil, fmt.Errorf("error querying round stats: %w", err)
	}
	defer rows.Close()

	stats := &entities.RoundStatistics{Game: game}
	for rows.Next() {
		var outcome string
		var count int
		var net int64
		if err := rows.Scan(&outcome, &count, &net); err != nil {
			return nil, fmt.Errorf("error scanning round stats: %w", err)
		}

		stats.Rounds += count
		stats.Net += net
		switch entities.Outcome(outcome) {
		case entities.OutcomeWin:
			stats.Wins += count
		case entities.OutcomeLoss:
			stats.Losses += count
		case entities.OutcomePush:
			stats.Pushes += count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating round stats: %w", err)
	}
	return stats, nil
}

// Close is a no-op; the database belongs to the caller
func (r *SQLiteRepository) Close() error {
	return nil
}

// parseTimestamp accepts the layout we write plus the formats the sqlite
// driver may hand back for TIMESTAMP columns
func parseTimestamp(value string) (time.Time, error) {
	formats := []string{
		timestampLayout,
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
	}

	var parseErr error
	for _, format := range formats {
		var t time.Time
		t, parseErr = time.Parse(format, value)
		if parseErr == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("error parsing timestamp '%s': %w", value, parseErr)
}
