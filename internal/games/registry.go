package games

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/services/score"
)

// Registry maps game names to their factories
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new game registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// RegisterGame registers a game factory with the registry
func (r *Registry) RegisterGame(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("Game %s is already registered", name))
	}

	r.factories[name] = factory
	return nil
}

// GetFactory returns the factory for a given game name
func (r *Registry) GetFactory(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("Game %s not found", name))
	}

	return factory, nil
}

// CreateGame creates a new game of the given name
func (r *Registry) CreateGame(name string, con *console.Console, scores *score.Service, logger *logging.Logger) (Game, error) {
	factory, err := r.GetFactory(name)
	if err != nil {
		return nil, err
	}

	return factory.CreateGame(con, scores, logger), nil
}

// ListGames returns the registered game names in sorted order
func (r *Registry) ListGames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]string, 0, len(r.factories))
	for name := range r.factories {
		games = append(games, name)
	}
	sort.Strings(games)
	return games
}
