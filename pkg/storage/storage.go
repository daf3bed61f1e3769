package storage

import (
	"context"
)

// ScoreStore persists a single signed integer for one game. Load and Save
// are the whole contract; games never touch files directly.
type ScoreStore interface {
	// Load returns the stored value. A missing or unreadable value is 0.
	Load(ctx context.Context) (int64, error)

	// Save overwrites the stored value
	Save(ctx context.Context, value int64) error
}
