package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseSetup - arena creation and placement
	PhaseSetup GamePhase = iota

	// PhasePlayerTurn - waiting for and applying the player's command
	PhasePlayerTurn

	// PhaseRatTurn - the arena tick
	PhaseRatTurn

	// PhaseWon - every rat is dead
	PhaseWon

	// PhaseLost - the player is dead
	PhaseLost
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhasePlayerTurn:
		return "PlayerTurn"
	case PhaseRatTurn:
		return "RatTurn"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// CanReceiveActions returns true if the game can process player commands in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhasePlayerTurn
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhasePlayerTurn, PhaseWon}
	case PhasePlayerTurn:
		return []GamePhase{PhaseRatTurn, PhaseLost}
	case PhaseRatTurn:
		return []GamePhase{PhasePlayerTurn, PhaseWon, PhaseLost}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
