package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fadedpez/parlor/internal/app"
	"github.com/fadedpez/parlor/internal/config"
	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/pkg/entities"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	ctx := context.Background()

	parlor, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	err = parlor.Play(ctx, entities.GameNumberGuesser, os.Stdin, os.Stdout)
	parlor.Shutdown()
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
}
