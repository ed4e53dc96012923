package arena

import (
	"fmt"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// RatHealth tracks how many pellets a rat has eaten.
type RatHealth int

const (
	RatFine RatHealth = iota // no pellets eaten, moves every tick
	RatSlow                  // one pellet eaten, moves every other tick
	RatDead                  // two pellets eaten
)

func (h RatHealth) String() string {
	switch h {
	case RatFine:
		return "fine"
	case RatSlow:
		return "slow"
	case RatDead:
		return "dead"
	default:
		return fmt.Sprintf("RatHealth(%d)", int(h))
	}
}

// Rat is an autonomous entity that wanders randomly and eats pellets.
type Rat struct {
	arena   *Arena
	pos     core.Coordinate
	health  RatHealth
	resting bool // only meaningful while slow: skip the next move attempt
}

func newRat(a *Arena, pos core.Coordinate) (*Rat, error) {
	if !a.grid.InBounds(pos) {
		return nil, core.WrapPositionError(pos, core.ErrOutOfBounds)
	}
	return &Rat{arena: a, pos: pos, health: RatFine}, nil
}

func (r *Rat) Position() core.Coordinate { return r.pos }
func (r *Rat) Health() RatHealth         { return r.health }
func (r *Rat) IsDead() bool              { return r.health == RatDead }

// ratStep describes what happened to a rat during one tick
type ratStep struct {
	attempted bool
	ate       bool
	slowed    bool
	died      bool
}

// move advances the rat by one tick: draw a direction, maybe step, then eat.
func (r *Rat) move() (ratStep, error) {
	var step ratStep
	if r.IsDead() {
		return step, nil
	}

	dir := core.RandomDirection(r.arena.rng)

	switch r.health {
	case RatFine:
		r.pos, _ = r.arena.attemptMove(r.pos, dir)
		step.attempted = true
	case RatSlow:
		if r.resting {
			r.resting = false
		} else {
			r.pos, _ = r.arena.attemptMove(r.pos, dir)
			r.resting = true
			step.attempted = true
		}
	}

	status, err := r.arena.grid.Status(r.pos)
	if err != nil {
		return step, err
	}
	if status != core.CellPoisoned {
		return step, nil
	}

	if err := r.arena.grid.SetStatus(r.pos, core.CellEmpty); err != nil {
		return step, err
	}
	step.ate = true
	if r.health == RatFine {
		// First pellet: the next (slow) tick always tries to move
		r.resting = false
		step.slowed = true
	} else {
		step.died = true
	}
	r.health++

	return step, nil
}
