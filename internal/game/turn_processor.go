package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/mitchelldurbincs/ratarena/internal/game/events"
	"github.com/mitchelldurbincs/ratarena/internal/game/processor"
	"github.com/mitchelldurbincs/ratarena/internal/game/rules"
	"github.com/mitchelldurbincs/ratarena/internal/game/states"
)

// TurnProcessor handles the two halves of a turn: the player's command and
// the arena tick that follows it.
type TurnProcessor struct {
	game   *Game
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(g *Game) *TurnProcessor {
	return &TurnProcessor{
		game:   g,
		logger: g.logger,
	}
}

// PlayerTurn applies one parsed command. If the player walks into a rat the
// game moves to PhaseLost, otherwise to PhaseRatTurn.
func (tp *TurnProcessor) PlayerTurn(ctx context.Context, cmd processor.Command) (processor.Outcome, error) {
	g := tp.game
	turnLogger := tp.logger.With().Int("turn", g.arena.Turns()).Logger()

	if !g.stateMachine.CurrentPhase().CanReceiveActions() {
		return processor.Outcome{}, tp.phaseError(states.PhasePlayerTurn)
	}

	out, err := g.actionProcessor.Process(ctx, g.arena, cmd)
	if err != nil {
		return processor.Outcome{}, core.WrapGameStateError(g.arena.Turns(), "player turn", err)
	}
	turnLogger.Debug().
		Str("command", out.Command.Kind.String()).
		Bool("advised", out.Advised).
		Str("position", out.To.String()).
		Msg("Player acted")

	g.observe()
	next, reason := states.PhaseRatTurn, "player acted"
	if out.PlayerDied {
		next, reason = states.PhaseLost, "player walked into a rat"
	}
	if err := g.stateMachine.TransitionTo(next, reason); err != nil {
		return out, core.WrapGameStateError(g.arena.Turns(), "player turn", err)
	}
	return out, nil
}

// RatTurn advances every rat once and moves the game to the next player turn
// or to its terminal phase. It does not observe cancellation.
func (tp *TurnProcessor) RatTurn() (arena.TickReport, error) {
	g := tp.game

	if g.stateMachine.CurrentPhase() != states.PhaseRatTurn {
		return arena.TickReport{}, tp.phaseError(states.PhaseRatTurn)
	}

	report, err := g.arena.MoveRats()
	if err != nil {
		return report, core.WrapGameStateError(g.arena.Turns(), "rat turn", err)
	}
	tp.publishTick(report)

	g.observe()
	next, reason := states.PhasePlayerTurn, "rats moved"
	switch g.winCondition.Check(g.arena) {
	case rules.ResultLost:
		next, reason = states.PhaseLost, "player caught by a rat"
	case rules.ResultWon:
		next, reason = states.PhaseWon, "no rats remain"
	}
	if err := g.stateMachine.TransitionTo(next, reason); err != nil {
		return report, core.WrapGameStateError(report.Turn, "rat turn", err)
	}
	return report, nil
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.game.arena.Turns()).
			Str("phase", phase).
			Msg("Game cancelled")
		return ctx.Err()
	default:
		return nil
	}
}

// phaseError reports a turn half attempted outside the phase it expects
func (tp *TurnProcessor) phaseError(want states.GamePhase) error {
	current := tp.game.stateMachine.CurrentPhase()
	turn := tp.game.arena.Turns()
	if current.IsTerminal() {
		tp.logger.Warn().Int("turn", turn).Msg("Attempted to play a game that is already over")
		return core.WrapGameStateError(turn, current.String(), core.ErrGameOver)
	}
	tp.logger.Warn().
		Str("current_phase", current.String()).
		Str("expected_phase", want.String()).
		Int("turn", turn).
		Msg("Turn attempted in the wrong phase")
	return core.WrapGameStateError(turn, current.String(),
		fmt.Errorf("%w: expected %s", core.ErrInvalidTransition, want))
}

// publishTick reports the arena tick on the event bus
func (tp *TurnProcessor) publishTick(r arena.TickReport) {
	g := tp.game
	g.bus.Publish(events.NewRatsMovedEvent(g.id, r.Turn, r.RatsMoved, r.PelletsEaten, r.RatsSlowed, r.RatsKilled, r.RatsLeft))
	if r.PlayerKilled {
		g.bus.Publish(events.NewPlayerDiedEvent(g.id, r.Turn, g.arena.Player().Position(), events.CauseCaughtByRat))
	}
}
