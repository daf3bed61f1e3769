package games

import (
	"context"

	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/services/score"
	"github.com/stretchr/testify/mock"
)

// MockGame implements Game for testing
type MockGame struct {
	mock.Mock
}

func (m *MockGame) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockGame) Run(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockFactory implements Factory for testing
type MockFactory struct {
	mock.Mock
}

func (m *MockFactory) CreateGame(con *console.Console, scores *score.Service, logger *logging.Logger) Game {
	args := m.Called(con, scores, logger)
	return args.Get(0).(Game)
}
