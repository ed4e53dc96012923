package arena

import (
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// Result messages reported by player actions
const (
	MsgPlayerBlocked = "Player couldn't move; player stands."
	MsgPlayerDied    = "Player walked into a rat and died."
	MsgPelletDropped = "A poison pellet has been dropped."
	MsgAlreadyPellet = "There's already a poison pellet at this spot."
)

var movedMessages = [core.NumDirections]string{
	core.North: "Player moved north.",
	core.East:  "Player moved east.",
	core.South: "Player moved south.",
	core.West:  "Player moved west.",
}

// Player is the user-controlled entity. Dying is one-way.
type Player struct {
	arena *Arena
	pos   core.Coordinate
	dead  bool
}

func newPlayer(a *Arena, pos core.Coordinate) (*Player, error) {
	if !a.grid.InBounds(pos) {
		return nil, core.WrapPositionError(pos, core.ErrOutOfBounds)
	}
	return &Player{arena: a, pos: pos}, nil
}

func (p *Player) Position() core.Coordinate { return p.pos }
func (p *Player) IsDead() bool              { return p.dead }

func (p *Player) setDead() { p.dead = true }

// Move steps the player one cell in dir. A move off the grid leaves the
// player in place; a move onto a live rat kills the player.
func (p *Player) Move(dir core.Direction) (string, error) {
	if !dir.IsValid() {
		return "", core.WrapPlayerError("move", core.ErrInvalidDirection)
	}
	if p.dead {
		return "", core.WrapPlayerError("move", core.ErrPlayerDead)
	}

	next, ok := p.arena.attemptMove(p.pos, dir)
	if !ok {
		return MsgPlayerBlocked, nil
	}
	p.pos = next

	if p.arena.NumberOfRatsAt(p.pos) > 0 {
		p.setDead()
		return MsgPlayerDied, nil
	}
	return movedMessages[dir], nil
}

// DropPoisonPellet poisons the player's cell unless it already holds a pellet.
func (p *Player) DropPoisonPellet() (string, error) {
	if p.dead {
		return "", core.WrapPlayerError("drop pellet", core.ErrPlayerDead)
	}

	status, err := p.arena.grid.Status(p.pos)
	if err != nil {
		return "", core.WrapPlayerError("drop pellet", err)
	}
	if status == core.CellPoisoned {
		return MsgAlreadyPellet, nil
	}
	if err := p.arena.grid.SetStatus(p.pos, core.CellPoisoned); err != nil {
		return "", core.WrapPlayerError("drop pellet", err)
	}
	return MsgPelletDropped, nil
}
