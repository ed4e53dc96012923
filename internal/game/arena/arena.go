package arena

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

const (
	// DefaultMaxRats is the population limit used when none is configured
	DefaultMaxRats = 100

	// MaxRatsLimit bounds any configured population limit
	MaxRatsLimit = 10000
)

// Arena owns the grid, the player, the rats and the turn counter.
// It is the single source of truth for simulation state.
type Arena struct {
	grid    *core.Grid
	player  *Player
	rats    []*Rat
	turns   int
	maxRats int
	rng     core.Random
	logger  zerolog.Logger
}

// Option configures an Arena at construction
type Option func(*Arena)

// WithMaxRats sets the maximum rat population
func WithMaxRats(n int) Option {
	return func(a *Arena) { a.maxRats = n }
}

// WithRandom sets the randomness source used for rat movement
func WithRandom(r core.Random) Option {
	return func(a *Arena) { a.rng = r }
}

// WithLogger sets the arena logger
func WithLogger(l zerolog.Logger) Option {
	return func(a *Arena) { a.logger = l }
}

// NewArena creates an empty rows x cols arena
func NewArena(rows, cols int, opts ...Option) (*Arena, error) {
	grid, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	a := &Arena{
		grid:    grid,
		maxRats: DefaultMaxRats,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.maxRats < 0 || a.maxRats > MaxRatsLimit {
		return nil, core.ErrInvalidRatCount
	}
	if a.rng == nil {
		a.rng = core.NewRandom(0)
	}
	a.logger = a.logger.With().Str("component", "Arena").Logger()
	return a, nil
}

func (a *Arena) Rows() int       { return a.grid.Rows() }
func (a *Arena) Cols() int       { return a.grid.Cols() }
func (a *Arena) Player() *Player { return a.player }
func (a *Arena) RatCount() int   { return len(a.rats) }
func (a *Arena) Turns() int      { return a.turns }
func (a *Arena) MaxRats() int    { return a.maxRats }

// InBounds checks if pos lies inside the arena
func (a *Arena) InBounds(pos core.Coordinate) bool {
	return a.grid.InBounds(pos)
}

// CellStatus returns the pellet status at pos
func (a *Arena) CellStatus(pos core.Coordinate) (core.CellStatus, error) {
	return a.grid.Status(pos)
}

// SetCellStatus sets the pellet status at pos
func (a *Arena) SetCellStatus(pos core.Coordinate, status core.CellStatus) error {
	return a.grid.SetStatus(pos, status)
}

// NumberOfRatsAt counts the live rats at pos. Positions outside the arena hold no rats.
func (a *Arena) NumberOfRatsAt(pos core.Coordinate) int {
	count := 0
	for _, r := range a.rats {
		if r.pos == pos && !r.IsDead() {
			count++
		}
	}
	return count
}

// RatView is a read-only copy of a rat's state
type RatView struct {
	Position core.Coordinate
	Health   RatHealth
}

// Rats returns the live rats in collection order
func (a *Arena) Rats() []RatView {
	views := make([]RatView, 0, len(a.rats))
	for _, r := range a.rats {
		views = append(views, RatView{Position: r.pos, Health: r.health})
	}
	return views
}

// AddRat places a new rat at pos. It reports false when the cell is out of
// bounds, poisoned, occupied by the player, or the population is full.
func (a *Arena) AddRat(pos core.Coordinate) bool {
	if !a.grid.InBounds(pos) {
		return false
	}
	if status, _ := a.grid.Status(pos); status != core.CellEmpty {
		return false
	}
	if a.player != nil && a.player.pos == pos {
		return false
	}
	if len(a.rats) >= a.maxRats {
		return false
	}

	rat, err := newRat(a, pos)
	if err != nil {
		return false
	}
	a.rats = append(a.rats, rat)
	return true
}

// AddPlayer places the player at pos. Only one player may ever be added.
func (a *Arena) AddPlayer(pos core.Coordinate) bool {
	if !a.grid.InBounds(pos) {
		return false
	}
	if a.player != nil {
		return false
	}
	if status, _ := a.grid.Status(pos); status != core.CellEmpty {
		return false
	}
	if a.NumberOfRatsAt(pos) > 0 {
		return false
	}

	player, err := newPlayer(a, pos)
	if err != nil {
		return false
	}
	a.player = player
	return true
}

// TickReport summarizes what happened during one MoveRats call
type TickReport struct {
	Turn         int
	RatsMoved    int
	PelletsEaten int
	RatsSlowed   int
	RatsKilled   int
	PlayerKilled bool
	RatsLeft     int
}

// MoveRats runs one tick: every live rat moves, the player dies if a rat
// reached its cell, dead rats are removed and the turn counter advances.
func (a *Arena) MoveRats() (TickReport, error) {
	var report TickReport
	if a.player == nil {
		return report, core.ErrNoPlayer
	}

	for _, r := range a.rats {
		if r.IsDead() {
			continue
		}
		step, err := r.move()
		if err != nil {
			return report, core.NewGameError(a.turns, "move rats", err)
		}
		if step.attempted {
			report.RatsMoved++
		}
		if step.ate {
			report.PelletsEaten++
		}
		if step.slowed {
			report.RatsSlowed++
		}
		if step.died {
			report.RatsKilled++
		}
	}

	if !a.player.dead && a.NumberOfRatsAt(a.player.pos) > 0 {
		a.player.setDead()
		report.PlayerKilled = true
	}

	a.removeDeadRats()
	a.turns++

	report.Turn = a.turns
	report.RatsLeft = len(a.rats)

	a.logger.Debug().
		Int("turn", report.Turn).
		Int("rats_moved", report.RatsMoved).
		Int("pellets_eaten", report.PelletsEaten).
		Int("rats_killed", report.RatsKilled).
		Int("rats_left", report.RatsLeft).
		Bool("player_killed", report.PlayerKilled).
		Msg("Rats moved")

	return report, nil
}

// removeDeadRats compacts the rat slice in place, keeping survivor order
func (a *Arena) removeDeadRats() {
	live := a.rats[:0]
	for _, r := range a.rats {
		if !r.IsDead() {
			live = append(live, r)
		}
	}
	for i := len(live); i < len(a.rats); i++ {
		a.rats[i] = nil
	}
	a.rats = live
}

// attemptMove returns pos moved one step in dir, or pos unchanged and false
// when the step would leave the arena.
func (a *Arena) attemptMove(pos core.Coordinate, dir core.Direction) (core.Coordinate, bool) {
	if !dir.IsValid() {
		return pos, false
	}
	next := pos.Move(dir)
	if !a.grid.InBounds(next) {
		return pos, false
	}
	return next, true
}
