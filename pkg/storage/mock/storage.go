package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of storage.ScoreStore
type Store struct {
	mock.Mock
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context) (int64, error) {
	args := s.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (s *Store) Save(ctx context.Context, value int64) error {
	args := s.Called(ctx, value)
	return args.Error(0)
}
