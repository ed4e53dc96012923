package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/mitchelldurbincs/ratarena/internal/game/events"
	"github.com/mitchelldurbincs/ratarena/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/ratarena/internal/game/processor"
	"github.com/mitchelldurbincs/ratarena/internal/game/rules"
	"github.com/mitchelldurbincs/ratarena/internal/game/states"
)

// GameInitializer handles validation, arena population and wiring of a new game
type GameInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewGameInitializer creates a new game initializer
func NewGameInitializer(cfg GameConfig) *GameInitializer {
	return &GameInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "Game").Logger(),
	}
}

// Initialize creates and populates a new game. Nothing is built unless the
// configuration is valid.
func (gi *GameInitializer) Initialize(ctx context.Context) (*Game, error) {
	select {
	case <-ctx.Done():
		gi.logger.Error().Err(ctx.Err()).Msg("Game creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	gi.setupDefaults()

	if err := gi.validate(); err != nil {
		gi.logger.Error().Err(err).
			Int("rows", gi.config.Rows).
			Int("cols", gi.config.Cols).
			Int("rats", gi.config.Rats).
			Msg("Invalid game configuration")
		return nil, err
	}

	a, err := arena.NewArena(gi.config.Rows, gi.config.Cols,
		arena.WithMaxRats(gi.config.MaxRats),
		arena.WithRandom(gi.config.Random),
		arena.WithLogger(gi.config.Logger),
	)
	if err != nil {
		return nil, err
	}

	if err := gi.populate(a); err != nil {
		return nil, fmt.Errorf("arena setup failed: %w", err)
	}

	g := gi.createGame(a)

	if a.RatCount() > 0 {
		g.observe()
		if err := g.stateMachine.TransitionTo(states.PhasePlayerTurn, "arena populated"); err != nil {
			return nil, fmt.Errorf("state machine initialization failed: %w", err)
		}
	}

	g.bus.Publish(events.NewGameStartedEvent(g.id, a.Rows(), a.Cols(), a.RatCount(), a.Player().Position()))

	gi.logger.Info().
		Str("game_id", g.id).
		Int("rows", a.Rows()).
		Int("cols", a.Cols()).
		Int("rats", a.RatCount()).
		Bool("scenario", gi.config.Scenario != nil).
		Msg("Game created successfully")

	return g, nil
}

// setupDefaults fills in zero-valued configuration
func (gi *GameInitializer) setupDefaults() {
	if gi.config.Scenario != nil {
		gi.config.Rows = gi.config.Scenario.Rows
		gi.config.Cols = gi.config.Scenario.Cols
		gi.config.Rats = len(gi.config.Scenario.Rats)
	}
	if gi.config.MaxRats == 0 {
		gi.config.MaxRats = arena.DefaultMaxRats
	}
	if gi.config.MaxPlacementAttempts <= 0 {
		gi.config.MaxPlacementAttempts = DefaultMaxPlacementAttempts
	}
	if gi.config.Random == nil {
		gi.logger.Debug().Msg("No random source provided, creating a time-seeded one")
		gi.config.Random = core.NewRandom(0)
	}
	if gi.config.GameID == "" {
		gi.config.GameID = uuid.New().String()
	}
}

// validate checks the configuration before anything is created
func (gi *GameInitializer) validate() error {
	cfg := gi.config
	if cfg.Rows < 1 || cfg.Rows > core.MaxRows || cfg.Cols < 1 || cfg.Cols > core.MaxCols {
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidDimensions, cfg.Rows, cfg.Cols)
	}
	if cfg.MaxRats < 0 || cfg.MaxRats > arena.MaxRatsLimit || cfg.Rats < 0 || cfg.Rats > cfg.MaxRats {
		return fmt.Errorf("%w: %d rats, limit %d", core.ErrInvalidRatCount, cfg.Rats, cfg.MaxRats)
	}
	if cfg.Rows == 1 && cfg.Cols == 1 && cfg.Rats > 0 {
		return core.ErrNoRoomForRats
	}
	return nil
}

// populate places the player and rats, from the scenario when there is one
func (gi *GameInitializer) populate(a *arena.Arena) error {
	if gi.config.Scenario != nil {
		gi.logger.Debug().Str("scenario", gi.config.Scenario.Name).Msg("Applying scenario")
		return gi.config.Scenario.Apply(a)
	}

	if err := gi.place(a, "player", a.AddPlayer); err != nil {
		return err
	}
	for i := 0; i < gi.config.Rats; i++ {
		if err := gi.place(a, "rat", a.AddRat); err != nil {
			return fmt.Errorf("rat %d: %w", i+1, err)
		}
	}
	return nil
}

// place draws random cells until add accepts one or the attempt budget runs out
func (gi *GameInitializer) place(a *arena.Arena, what string, add func(core.Coordinate) bool) error {
	rng := gi.config.Random
	for attempt := 1; attempt <= gi.config.MaxPlacementAttempts; attempt++ {
		pos := core.NewCoordinate(rng.IntInRange(1, a.Rows()), rng.IntInRange(1, a.Cols()))
		if add(pos) {
			return nil
		}
	}
	gi.logger.Error().
		Str("entity", what).
		Int("attempts", gi.config.MaxPlacementAttempts).
		Msg("Gave up placing entity")
	return fmt.Errorf("%s: %w after %d attempts", what, core.ErrPlacementFailed, gi.config.MaxPlacementAttempts)
}

// createGame wires the event bus, state machine and turn machinery around the arena
func (gi *GameInitializer) createGame(a *arena.Arena) *Game {
	id := gi.config.GameID
	logger := gi.logger.With().Str("game_id", id).Logger()

	bus := events.NewEventBus(gi.config.Logger)

	eventLogger := subscribers.NewLoggerSubscriber("event_logger", gi.config.Logger, zerolog.DebugLevel)
	bus.Subscribe(eventLogger)

	stats := newStatsCollector()
	bus.Subscribe(stats)

	stateMachine := states.NewStateMachine(states.NewGameContext(id, gi.config.Logger), bus)

	g := &Game{
		id:              id,
		arena:           a,
		logger:          logger,
		bus:             bus,
		stateMachine:    stateMachine,
		actionProcessor: processor.NewActionProcessor(id, bus, gi.config.Logger),
		winCondition:    rules.NewWinConditionChecker(gi.config.Logger),
		stats:           stats,
		reader:          gi.config.Reader,
		renderer:        gi.config.Renderer,
	}
	g.turnProcessor = NewTurnProcessor(g)

	return g
}
