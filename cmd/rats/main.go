package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ratarena/internal/config"
	"github.com/mitchelldurbincs/ratarena/internal/game"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/mitchelldurbincs/ratarena/internal/game/scenario"
	"github.com/mitchelldurbincs/ratarena/internal/ui/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("Game aborted")
		os.Exit(1)
	}
}

// run parses flags, loads configuration and plays one game on in/out
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("rats", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config file")
	rows := fs.Int("rows", -1, "Arena rows, 1-20 (-1 to use config default)")
	cols := fs.Int("cols", -1, "Arena columns, 1-20 (-1 to use config default)")
	rats := fs.Int("rats", -1, "Initial rats (-1 to use config default)")
	seed := fs.Uint64("seed", 0, "Random seed (0 to use config default)")
	scenarioPath := fs.String("scenario", "", "YAML scenario file (empty to use config default)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		return err
	}
	levelFromFlag := *logLevel != ""
	if levelFromFlag {
		if err := config.Set("logging.level", *logLevel); err != nil {
			return fmt.Errorf("invalid -log-level: %w", err)
		}
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *rows == -1 {
		*rows = cfg.Game.Arena.Rows
	}
	if *cols == -1 {
		*cols = cfg.Game.Arena.Cols
	}
	if *rats == -1 {
		*rats = cfg.Game.Arena.Rats
	}
	if *seed == 0 {
		*seed = cfg.Game.Setup.Seed
	}
	if *scenarioPath == "" {
		*scenarioPath = cfg.Game.Setup.Scenario
	}

	setupLogging(cfg.Logging.Level, cfg.Logging.Format)
	if !levelFromFlag && config.ConfigFilePath() != "" {
		config.WatchConfig(log.Logger, func(c *config.Config) {
			zerolog.SetGlobalLevel(parseLevel(c.Logging.Level))
		})
	}

	gameCfg := game.GameConfig{
		Rows:                 *rows,
		Cols:                 *cols,
		Rats:                 *rats,
		MaxRats:              cfg.Game.Arena.MaxRats,
		MaxPlacementAttempts: cfg.Game.Setup.MaxPlacementAttempts,
		Random:               core.NewRandom(*seed),
		Logger:               log.Logger,
		Reader:               console.NewReader(in, out),
		Renderer: console.NewRenderer(out, console.Options{
			ClearScreen: cfg.Display.ClearScreen,
			Color:       cfg.Display.Color,
			Logger:      log.Logger,
		}),
	}
	if *scenarioPath != "" {
		s, err := scenario.Load(*scenarioPath)
		if err != nil {
			return err
		}
		gameCfg.Scenario = s
	}

	log.Info().
		Int("rows", gameCfg.Rows).
		Int("cols", gameCfg.Cols).
		Int("rats", gameCfg.Rats).
		Uint64("seed", *seed).
		Str("scenario", *scenarioPath).
		Msg("Starting game")

	g, err := game.NewGame(gameCfg)
	if err != nil {
		return err
	}

	start := time.Now()
	outcome, err := g.Play(ctx)
	if err != nil {
		return err
	}

	stats := g.Stats()
	log.Debug().
		Str("game_id", g.ID()).
		Str("outcome", outcome.String()).
		Dur("duration", time.Since(start)).
		Int("turns", stats.Turns).
		Int("pellets_dropped", stats.PelletsDropped).
		Int("rats_poisoned", stats.RatsPoisoned).
		Int("rats_killed", stats.RatsKilled).
		Int("advised_turns", stats.AdvisedTurns).
		Int("invalid_commands", stats.InvalidCommands).
		Msg("Game stats")

	return nil
}
