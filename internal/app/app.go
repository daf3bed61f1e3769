// Package app assembles a game from configuration: score storage, round
// history, console and the game factory.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/fadedpez/parlor/internal/config"
	"github.com/fadedpez/parlor/internal/games"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/console"
	"github.com/fadedpez/parlor/pkg/db"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/fadedpez/parlor/pkg/games/blackjack"
	"github.com/fadedpez/parlor/pkg/games/guesser"
	"github.com/fadedpez/parlor/pkg/repositories/history"
	"github.com/fadedpez/parlor/pkg/services/score"
	"github.com/fadedpez/parlor/pkg/services/statistics"
	"github.com/fadedpez/parlor/pkg/storage"
	"github.com/fadedpez/parlor/pkg/storage/file"
	"github.com/fadedpez/parlor/pkg/storage/memory"
	sqlitestore "github.com/fadedpez/parlor/pkg/storage/sqlite"
)

// App holds the shared dependencies of the games
type App struct {
	config   *config.Config
	logger   *logging.Logger
	db       *sql.DB
	history  history.Repository
	registry *games.Registry
}

// New opens storage as configured and registers the games
func New(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	a := &App{
		config:   cfg,
		logger:   logger,
		registry: NewRegistry(),
	}

	switch cfg.StorageType {
	case config.StorageSQLite:
		conn, err := db.OpenSQLite(cfg.DBPath, logger)
		if err != nil {
			return nil, types.WrapError(types.ErrStorageError, "failed to open score database", err)
		}
		a.db = conn
		a.history = history.NewSQLiteRepository(conn)
		logger.Info("[APP] Using SQLite storage at %s", cfg.DBPath)
	default:
		a.history = history.NewMemoryRepository()
		logger.Info("[APP] Using %s storage in %s", cfg.StorageType, cfg.DataDir)
	}

	if cfg.HistoryIndexingEnabled() {
		esRepo, err := history.NewElasticsearchRepository(ctx, a.history, &history.ElasticsearchConfig{
			URL:         cfg.ESURL,
			Username:    cfg.ESUsername,
			Password:    cfg.ESPassword,
			IndexPrefix: cfg.ESIndexPrefix,
		})
		if err != nil {
			logger.Warn("[APP] Round indexing disabled, could not reach Elasticsearch: %v", err)
		} else {
			a.history = esRepo
			logger.Info("[APP] Indexing rounds into %s", esRepo.Index())
		}
	}

	return a, nil
}

// NewRegistry returns a registry with every game of the parlor
func NewRegistry() *games.Registry {
	registry := games.NewRegistry()
	// Names are distinct, registration cannot fail
	_ = registry.RegisterGame(entities.GameBlackjack, blackjack.NewFactory(nil))
	_ = registry.RegisterGame(entities.GameNumberGuesser, guesser.NewFactory(nil))
	return registry
}

// ScoreStore returns the configured store for the game's score
func (a *App) ScoreStore(game string) (storage.ScoreStore, error) {
	switch a.config.StorageType {
	case config.StorageFile:
		switch game {
		case entities.GameBlackjack:
			return file.New(a.config.WinningsFile), nil
		case entities.GameNumberGuesser:
			return file.New(a.config.ScoreFile), nil
		}
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("Game %s not found", game))
	case config.StorageSQLite:
		return sqlitestore.New(a.db, game), nil
	case config.StorageMemory:
		return memory.New(0), nil
	}
	return nil, types.NewGameError(types.ErrConfigError, fmt.Sprintf("unknown storage type %q", a.config.StorageType))
}

// Play loads the game's score and runs the game on in and out
func (a *App) Play(ctx context.Context, game string, in io.Reader, out io.Writer) error {
	store, err := a.ScoreStore(game)
	if err != nil {
		return err
	}

	scores := score.NewService(game, store, a.history, a.logger)
	scores.Load(ctx)

	con := console.New(in, out, console.WithColor(!a.config.NoColor))
	g, err := a.registry.CreateGame(game, con, scores, a.logger)
	if err != nil {
		return err
	}

	a.logger.Debug("[APP] Starting %s with score %d", g.Name(), scores.Current())
	if err := g.Run(ctx); err != nil {
		return err
	}

	a.showSummary(ctx, con, game)
	return nil
}

// showSummary prints the game's record from round history
func (a *App) showSummary(ctx context.Context, con *console.Console, game string) {
	summary, err := statistics.NewService(a.history).GetSummary(ctx, game, statistics.DefaultRecent)
	if err != nil {
		a.logger.Warn("[APP] Could not read %s history: %v", game, err)
		return
	}
	if summary.Rounds == 0 {
		return
	}

	con.Println()
	con.Printf("%s %d (%d won, %.1f%%), net %+d\n",
		con.Label("Rounds on record:"), summary.Rounds, summary.Wins, summary.WinRate, summary.Net)
	switch {
	case summary.Streak >= 2:
		con.Success("You've won %d in a row.", summary.Streak)
	case summary.Streak <= -2:
		con.Failure("You've lost %d in a row.", -summary.Streak)
	}
}

// Shutdown releases the history repository and the database
func (a *App) Shutdown() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Warn("[APP] Error closing round history: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("[APP] Error closing database: %v", err)
		}
	}
}
