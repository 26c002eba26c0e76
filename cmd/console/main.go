package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jwebster45206/the-line/internal/config"
	"github.com/jwebster45206/the-line/internal/console"
	"github.com/jwebster45206/the-line/internal/journal"
	"github.com/jwebster45206/the-line/internal/logger"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
	"github.com/jwebster45206/the-line/pkg/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closer.Close() // Ignore error in defer
	}()

	log.Info("Starting The Line",
		"environment", cfg.Environment,
		"ui_mode", cfg.UIMode,
		"scenario_file", cfg.ScenarioFile,
		"journal", cfg.RedisURL != "")

	world, err := loadWorld(cfg)
	if err != nil {
		log.Error("Failed to load world", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to load world: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	j, closeJournal := openJournal(ctx, cfg, log)
	defer closeJournal()

	g := &Game{
		World:     world,
		Journal:   j,
		Source:    chance.New(),
		Logger:    log,
		NoMatcher: cfg.NoMatcher,
	}

	switch cfg.UIMode {
	case config.UIModeTUI:
		err = console.NewTUI(cfg.WrapWidth).Run(func(io prompt.IO) error {
			return g.Play(ctx, io)
		})
	default:
		err = g.Play(ctx, console.NewLine(os.Stdin, os.Stdout, cfg.WrapWidth))
	}
	if err != nil {
		log.Error("Game ended with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadWorld builds the embedded world, or the one in SCENARIO_FILE.
func loadWorld(cfg *config.Config) (*scenario.World, error) {
	var (
		world *scenario.World
		err   error
	)
	if cfg.ScenarioFile == "" {
		world, err = scenario.DefaultWorld()
	} else {
		var s *scenario.Scenario
		s, err = scenario.LoadFile(cfg.ScenarioFile)
		if err == nil {
			world, err = scenario.Build(s)
		}
	}
	if err != nil {
		return nil, err
	}

	if cfg.TurnLimit > 0 {
		world.TurnLimit = cfg.TurnLimit
	}
	return world, nil
}

// openJournal connects to Redis when REDIS_URL is set. The game stays
// playable without it, so a failed connection only logs a warning.
func openJournal(ctx context.Context, cfg *config.Config, log *slog.Logger) (state.Journal, func()) {
	if cfg.RedisURL == "" {
		return journal.Nop{}, func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rj, err := journal.NewRedisJournal(connectCtx, cfg.RedisURL, log)
	if err != nil {
		logger.WithError(log, err).Warn("Journal unavailable, continuing without it")
		return journal.Nop{}, func() {}
	}
	return rj, func() {
		_ = rj.Close() // Ignore error in defer
	}
}
