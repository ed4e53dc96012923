package core

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrInvalidDimensions = errors.New("invalid arena dimensions")
	ErrInvalidStatus     = errors.New("invalid cell status")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrInvalidRatCount   = errors.New("invalid rat count")
	ErrNoRoomForRats     = errors.New("nowhere to place the rats")
	ErrPlacementFailed   = errors.New("no valid cell found for placement")
	ErrNoPlayer          = errors.New("arena has no player")
	ErrPlayerDead        = errors.New("player is dead")
	ErrInvalidCommand    = errors.New("invalid command")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidTransition = errors.New("invalid phase transition")
)

// WrapPositionError adds the offending position to an error.
func WrapPositionError(pos Coordinate, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("position %s: %w", pos, err)
}

// WrapGameStateError adds turn and phase context to an error.
func WrapGameStateError(turn int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("game turn %d [%s]: %w", turn, phase, err)
}

// WrapPlayerError adds the player operation to an error.
func WrapPlayerError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %s: %w", operation, err)
}

// GameError is a structured error carrying the turn it happened on.
type GameError struct {
	Turn      int
	Operation string
	Err       error
}

func NewGameError(turn int, operation string, err error) *GameError {
	return &GameError{Turn: turn, Operation: operation, Err: err}
}

func (e *GameError) Error() string {
	return fmt.Sprintf("turn %d: %s: %v", e.Turn, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error { return e.Err }
