package states

import (
	"errors"
	"time"
)

var (
	errPlayerDead = errors.New("player is dead")
	errPlayerLive = errors.New("player is still alive")
	errNoRats     = errors.New("no rats remain")
	errRatsRemain = errors.New("rats remain")
)

// SetupState represents arena creation and placement
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() GamePhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.StartTime = time.Now()
	ctx.Logger.Info().
		Int("rats", ctx.RatsLeft).
		Time("start_time", ctx.StartTime).
		Msg("Arena populated, game started")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// PlayerTurnState waits for the player's command
type PlayerTurnState struct{}

func NewPlayerTurnState() State {
	return &PlayerTurnState{}
}

func (s *PlayerTurnState) Phase() GamePhase {
	return PhasePlayerTurn
}

func (s *PlayerTurnState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Waiting for player")
	return nil
}

func (s *PlayerTurnState) Exit(ctx *GameContext) error {
	return nil
}

func (s *PlayerTurnState) Validate(ctx *GameContext) error {
	if !ctx.PlayerAlive {
		return errPlayerDead
	}
	if ctx.RatsLeft == 0 {
		return errNoRats
	}
	return nil
}

// RatTurnState represents the arena tick
type RatTurnState struct{}

func NewRatTurnState() State {
	return &RatTurnState{}
}

func (s *RatTurnState) Phase() GamePhase {
	return PhaseRatTurn
}

func (s *RatTurnState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Moving rats")
	return nil
}

func (s *RatTurnState) Exit(ctx *GameContext) error {
	return nil
}

func (s *RatTurnState) Validate(ctx *GameContext) error {
	if !ctx.PlayerAlive {
		return errPlayerDead
	}
	return nil
}

// WonState is entered once the last rat dies
type WonState struct{}

func NewWonState() State {
	return &WonState{}
}

func (s *WonState) Phase() GamePhase {
	return PhaseWon
}

func (s *WonState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("turns", ctx.Turn).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Player won")
	return nil
}

func (s *WonState) Exit(ctx *GameContext) error {
	return nil
}

func (s *WonState) Validate(ctx *GameContext) error {
	if !ctx.PlayerAlive {
		return errPlayerDead
	}
	if ctx.RatsLeft > 0 {
		return errRatsRemain
	}
	return nil
}

// LostState is entered once the player dies
type LostState struct{}

func NewLostState() State {
	return &LostState{}
}

func (s *LostState) Phase() GamePhase {
	return PhaseLost
}

func (s *LostState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("turns", ctx.Turn).
		Int("rats_left", ctx.RatsLeft).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Player lost")
	return nil
}

func (s *LostState) Exit(ctx *GameContext) error {
	return nil
}

func (s *LostState) Validate(ctx *GameContext) error {
	if ctx.PlayerAlive {
		return errPlayerLive
	}
	return nil
}
