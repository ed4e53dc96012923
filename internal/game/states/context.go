package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Turn is the number of completed arena ticks
	Turn int

	// RatsLeft is the live rat population
	RatsLeft int

	// PlayerAlive is false once the player has died
	PlayerAlive bool

	// StartTime is when the first player turn began
	StartTime time.Time

	// EndTime is when a terminal phase was entered
	EndTime time.Time
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:      gameID,
		Logger:      logger.With().Str("game_id", gameID).Logger(),
		PlayerAlive: true,
	}
}

// Observe records the arena facts the states validate against
func (gc *GameContext) Observe(turn, ratsLeft int, playerAlive bool) {
	gc.Turn = turn
	gc.RatsLeft = ratsLeft
	gc.PlayerAlive = playerAlive
}

// GetElapsedTime returns the time elapsed since game start, up to the end if it has ended
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
