package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fadedpez/parlor/pkg/storage"
)

// Store keeps the score as the decimal text of one integer in a plain file
type Store struct {
	path string
}

var _ storage.ScoreStore = (*Store)(nil)

// New creates a file store at path. The file is not touched until used.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored integer. A missing file or content that is not an
// integer loads as 0 without error.
func (s *Store) Load(ctx context.Context) (int64, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	value, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, nil
	}
	return value, nil
}

// Save overwrites the file with the decimal string of value
func (s *Store) Save(ctx context.Context, value int64) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(strconv.FormatInt(value, 10)), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
