package events

import (
	"time"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypePlayerActed     = "player.acted"
	TypeCommandRejected = "command.rejected"
	TypeRatsMoved       = "rats.moved"
	TypePlayerDied      = "player.died"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published once the arena has been populated
type GameStartedEvent struct {
	BaseEvent
	Rows   int
	Cols   int
	Rats   int
	Player core.Coordinate
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, rows, cols, rats int, player core.Coordinate) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID),
		Rows:      rows,
		Cols:      cols,
		Rats:      rats,
		Player:    player,
	}
}

// GameEndedEvent is published when the player wins or loses
type GameEndedEvent struct {
	BaseEvent
	Outcome   string
	Duration  time.Duration
	FinalTurn int
	RatsLeft  int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID, outcome string, duration time.Duration, finalTurn, ratsLeft int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Outcome:   outcome,
		Duration:  duration,
		FinalTurn: finalTurn,
		RatsLeft:  ratsLeft,
	}
}

// Player actions
const (
	ActionMove = "move"
	ActionDrop = "drop"
)

// PlayerActedEvent is published after a player command has been applied.
// Action is "move" or "drop"; Direction is only meaningful for moves.
// Dropped is set when a drop poisoned a clean cell.
type PlayerActedEvent struct {
	BaseEvent
	Turn      int
	Action    string
	Direction core.Direction
	Advised   bool
	Dropped   bool
	From      core.Coordinate
	To        core.Coordinate
	Message   string
}

// NewPlayerActedEvent creates a new PlayerActedEvent
func NewPlayerActedEvent(gameID string, turn int, action string, dir core.Direction, advised, dropped bool, from, to core.Coordinate, message string) *PlayerActedEvent {
	return &PlayerActedEvent{
		BaseEvent: newBase(TypePlayerActed, gameID),
		Turn:      turn,
		Action:    action,
		Direction: dir,
		Advised:   advised,
		Dropped:   dropped,
		From:      from,
		To:        to,
		Message:   message,
	}
}

// CommandRejectedEvent is published for input that is not a valid command
type CommandRejectedEvent struct {
	BaseEvent
	Turn  int
	Input string
}

// NewCommandRejectedEvent creates a new CommandRejectedEvent
func NewCommandRejectedEvent(gameID string, turn int, input string) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		Turn:      turn,
		Input:     input,
	}
}

// RatsMovedEvent summarizes one arena tick
type RatsMovedEvent struct {
	BaseEvent
	Turn         int
	RatsMoved    int
	PelletsEaten int
	RatsSlowed   int
	RatsKilled   int
	RatsLeft     int
}

// NewRatsMovedEvent creates a new RatsMovedEvent
func NewRatsMovedEvent(gameID string, turn, moved, eaten, slowed, killed, left int) *RatsMovedEvent {
	return &RatsMovedEvent{
		BaseEvent:    newBase(TypeRatsMoved, gameID),
		Turn:         turn,
		RatsMoved:    moved,
		PelletsEaten: eaten,
		RatsSlowed:   slowed,
		RatsKilled:   killed,
		RatsLeft:     left,
	}
}

// Causes of player death
const (
	CauseWalkedIntoRat = "walked_into_rat"
	CauseCaughtByRat   = "caught_by_rat"
)

// PlayerDiedEvent is published when the player dies
type PlayerDiedEvent struct {
	BaseEvent
	Turn     int
	Position core.Coordinate
	Cause    string
}

// NewPlayerDiedEvent creates a new PlayerDiedEvent
func NewPlayerDiedEvent(gameID string, turn int, pos core.Coordinate, cause string) *PlayerDiedEvent {
	return &PlayerDiedEvent{
		BaseEvent: newBase(TypePlayerDied, gameID),
		Turn:      turn,
		Position:  pos,
		Cause:     cause,
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
