package processor

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/advisor"
	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/mitchelldurbincs/ratarena/internal/game/events"
)

// Outcome describes what applying one command did
type Outcome struct {
	Command    Command // the command actually applied; never CommandAdvise
	Advised    bool
	From       core.Coordinate
	To         core.Coordinate
	Message    string
	Dropped    bool // a new pellet now lies at From
	PlayerDied bool
}

// ActionProcessor applies player commands to the arena
type ActionProcessor struct {
	gameID    string
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewActionProcessor creates a new action processor. publisher may be nil.
func NewActionProcessor(gameID string, publisher events.Publisher, logger zerolog.Logger) *ActionProcessor {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ActionProcessor{
		gameID:    gameID,
		publisher: publisher,
		logger:    logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// Process applies cmd for the arena's player. An advise command is first
// resolved through the move advisor.
func (ap *ActionProcessor) Process(ctx context.Context, a *arena.Arena, cmd Command) (Outcome, error) {
	select {
	case <-ctx.Done():
		ap.logger.Warn().Err(ctx.Err()).Msg("Command processing interrupted by context cancellation")
		return Outcome{}, ctx.Err()
	default:
	}

	player := a.Player()
	if player == nil {
		return Outcome{}, core.ErrNoPlayer
	}

	out := Outcome{Command: cmd, From: player.Position()}
	if cmd.Kind == CommandAdvise {
		out.Command = resolve(advisor.Recommend(a, player.Position()))
		out.Advised = true
		ap.logger.Debug().
			Str("recommendation", out.Command.Kind.String()).
			Str("direction", out.Command.Direction.String()).
			Msg("Advisor chose command")
	}

	var err error
	switch out.Command.Kind {
	case CommandMove:
		out.Message, err = player.Move(out.Command.Direction)
	case CommandDrop:
		out.Message, out.Dropped, err = dropPellet(a, player)
	default:
		err = core.ErrInvalidCommand
	}
	if err != nil {
		ap.logger.Error().Err(err).Str("command", out.Command.Kind.String()).Msg("Failed to apply command")
		return Outcome{}, err
	}

	out.To = player.Position()
	out.PlayerDied = player.IsDead()
	ap.publish(a.Turns(), out)

	return out, nil
}

func (ap *ActionProcessor) publish(turn int, out Outcome) {
	action := events.ActionDrop
	if out.Command.Kind == CommandMove {
		action = events.ActionMove
	}
	ap.publisher.Publish(events.NewPlayerActedEvent(
		ap.gameID, turn, action, out.Command.Direction, out.Advised, out.Dropped, out.From, out.To, out.Message,
	))
	if out.PlayerDied {
		ap.publisher.Publish(events.NewPlayerDiedEvent(ap.gameID, turn, out.To, events.CauseWalkedIntoRat))
	}
}

// dropPellet drops a pellet under the player and reports whether the cell
// was clean before
func dropPellet(a *arena.Arena, player *arena.Player) (string, bool, error) {
	before, err := a.CellStatus(player.Position())
	if err != nil {
		return "", false, err
	}
	msg, err := player.DropPoisonPellet()
	if err != nil {
		return "", false, err
	}
	return msg, before != core.CellPoisoned, nil
}

func resolve(rec advisor.Recommendation) Command {
	if !rec.Move {
		return Command{Kind: CommandDrop}
	}
	return Command{Kind: CommandMove, Direction: rec.Direction}
}
