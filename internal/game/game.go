package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/mitchelldurbincs/ratarena/internal/game/events"
	"github.com/mitchelldurbincs/ratarena/internal/game/processor"
	"github.com/mitchelldurbincs/ratarena/internal/game/rules"
	"github.com/mitchelldurbincs/ratarena/internal/game/scenario"
	"github.com/mitchelldurbincs/ratarena/internal/game/states"
)

// Text shown to the player by the turn loop
const (
	Prompt   = "Your move (n/e/s/w/x or nothing): "
	MsgUsage = "Player move must be nothing, or 1 character n/e/s/w/x."
	MsgWin   = "You win."
	MsgLose  = "You lose."
)

// DefaultMaxPlacementAttempts bounds the random draws spent placing one entity
const DefaultMaxPlacementAttempts = 10000

// CommandReader supplies one line of player input per call, without its terminator
type CommandReader interface {
	ReadCommand(ctx context.Context, prompt string) (string, error)
}

// Renderer draws the arena and shows one-off messages
type Renderer interface {
	Render(s arena.Snapshot) error
	Notify(msg string) error
}

// Outcome is how a finished game ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// GameConfig holds everything needed to set up a game.
// Zero values pick defaults: MaxRats → arena.DefaultMaxRats,
// MaxPlacementAttempts → DefaultMaxPlacementAttempts, Random → time-seeded,
// Logger → disabled, GameID → random UUID.
type GameConfig struct {
	Rows                 int
	Cols                 int
	Rats                 int
	MaxRats              int
	MaxPlacementAttempts int
	Random               core.Random
	Logger               zerolog.Logger
	GameID               string

	// Scenario, when set, replaces random placement; Rows, Cols and Rats
	// are then taken from it.
	Scenario *scenario.Scenario

	Reader   CommandReader
	Renderer Renderer
}

// Game drives one arena from setup to a win or a loss
type Game struct {
	id     string
	arena  *arena.Arena
	logger zerolog.Logger

	bus             *events.EventBus
	stateMachine    *states.StateMachine
	actionProcessor *processor.ActionProcessor
	winCondition    *rules.WinConditionChecker
	turnProcessor   *TurnProcessor
	stats           *statsCollector

	reader   CommandReader
	renderer Renderer
}

// NewGame validates cfg and builds a populated game ready to Play
func NewGame(cfg GameConfig) (*Game, error) {
	return NewGameInitializer(cfg).Initialize(context.Background())
}

func (g *Game) ID() string              { return g.id }
func (g *Game) Arena() *arena.Arena     { return g.arena }
func (g *Game) Events() events.Bus      { return g.bus }
func (g *Game) Phase() states.GamePhase { return g.stateMachine.CurrentPhase() }

// History returns the phase transitions taken so far, oldest first
func (g *Game) History() []states.Transition {
	return g.stateMachine.GetHistory()
}

// Stats returns the counters gathered from the game's events so far
func (g *Game) Stats() Stats {
	return g.stats.snapshot()
}

// Play runs the turn loop until the player wins or loses. Cancellation is
// honoured between turns; a started turn always runs to completion.
func (g *Game) Play(ctx context.Context) (Outcome, error) {
	if g.reader == nil || g.renderer == nil {
		return OutcomeNone, errors.New("game needs both a command reader and a renderer")
	}
	if g.Phase().IsTerminal() {
		return OutcomeNone, core.WrapGameStateError(g.arena.Turns(), g.Phase().String(), core.ErrGameOver)
	}

	started := time.Now()
	if err := g.renderer.Render(g.arena.Snapshot("")); err != nil {
		return OutcomeNone, fmt.Errorf("render: %w", err)
	}

	result := g.winCondition.Check(g.arena)
	for result == rules.ResultOngoing {
		if err := g.turnProcessor.checkContext(ctx, "before player turn"); err != nil {
			return OutcomeNone, err
		}

		line, err := g.reader.ReadCommand(ctx, Prompt)
		if err != nil {
			return OutcomeNone, fmt.Errorf("read command: %w", err)
		}

		cmd, err := processor.ParseCommand(line)
		if err != nil {
			g.logger.Debug().Err(err).Msg("Rejected player input")
			g.bus.Publish(events.NewCommandRejectedEvent(g.id, g.arena.Turns(), line))
			if err := g.renderer.Notify(MsgUsage); err != nil {
				return OutcomeNone, fmt.Errorf("notify: %w", err)
			}
			continue
		}

		acted, err := g.turnProcessor.PlayerTurn(ctx, cmd)
		if err != nil {
			return OutcomeNone, err
		}
		if acted.PlayerDied {
			if err := g.renderer.Notify(acted.Message); err != nil {
				return OutcomeNone, fmt.Errorf("notify: %w", err)
			}
			result = rules.ResultLost
			break
		}

		if _, err := g.turnProcessor.RatTurn(); err != nil {
			return OutcomeNone, err
		}
		if err := g.renderer.Render(g.arena.Snapshot(acted.Message)); err != nil {
			return OutcomeNone, fmt.Errorf("render: %w", err)
		}
		result = g.winCondition.Check(g.arena)
	}

	return g.finish(result, time.Since(started))
}

// finish moves the state machine to its terminal phase and announces the outcome
func (g *Game) finish(result rules.Result, elapsed time.Duration) (Outcome, error) {
	outcome, phase, msg := OutcomeWon, states.PhaseWon, MsgWin
	if result == rules.ResultLost {
		outcome, phase, msg = OutcomeLost, states.PhaseLost, MsgLose
	}

	if !g.Phase().IsTerminal() {
		g.observe()
		if err := g.stateMachine.TransitionTo(phase, "game over"); err != nil {
			return OutcomeNone, core.WrapGameStateError(g.arena.Turns(), g.Phase().String(), err)
		}
	}

	g.bus.Publish(events.NewGameEndedEvent(g.id, outcome.String(), elapsed, g.arena.Turns(), g.arena.RatCount()))
	g.logger.Info().
		Str("outcome", outcome.String()).
		Int("turns", g.arena.Turns()).
		Int("rats_left", g.arena.RatCount()).
		Int("transitions", len(g.History())).
		Msg("Game finished")

	if err := g.renderer.Notify(msg); err != nil {
		return outcome, fmt.Errorf("notify: %w", err)
	}
	return outcome, nil
}

// observe copies the arena facts the phase validators need into the state context
func (g *Game) observe() {
	alive := g.arena.Player() != nil && !g.arena.Player().IsDead()
	g.stateMachine.GetContext().Observe(g.arena.Turns(), g.arena.RatCount(), alive)
}
