package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
)

// Result is the state of the game as judged by the win conditions
type Result int

const (
	ResultOngoing Result = iota
	ResultWon
	ResultLost
)

func (r Result) String() string {
	switch r {
	case ResultOngoing:
		return "ongoing"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	default:
		return "unknown"
	}
}

// WinConditionChecker handles game over detection
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// Check reports whether the game is over. A dead (or missing) player loses
// even if the last rat died on the same tick.
func (wc *WinConditionChecker) Check(a *arena.Arena) Result {
	result := ResultOngoing
	switch {
	case a.Player() == nil || a.Player().IsDead():
		result = ResultLost
	case a.RatCount() == 0:
		result = ResultWon
	}

	wc.logger.Debug().
		Str("result", result.String()).
		Int("rats_left", a.RatCount()).
		Int("turns", a.Turns()).
		Msg("Game over check complete")

	return result
}
