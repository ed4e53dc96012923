// Package scenario loads fixed arena layouts from YAML so that a game can
// start from a known position instead of random placement.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Position is a 1-based cell reference
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p Position) Coordinate() core.Coordinate {
	return core.NewCoordinate(p.Row, p.Col)
}

// Scenario is a complete starting layout
type Scenario struct {
	Name    string     `yaml:"name"`
	Rows    int        `yaml:"rows"`
	Cols    int        `yaml:"cols"`
	Player  Position   `yaml:"player"`
	Rats    []Position `yaml:"rats"`
	Pellets []Position `yaml:"pellets"`
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks dimensions and that every position lies inside the arena.
// Placement conflicts (a rat on the player) are left to Apply.
func (s *Scenario) Validate() error {
	if s.Rows < 1 || s.Rows > core.MaxRows || s.Cols < 1 || s.Cols > core.MaxCols {
		return fmt.Errorf("%w: %w: %dx%d", ErrInvalidScenario, core.ErrInvalidDimensions, s.Rows, s.Cols)
	}
	if !s.Player.Coordinate().IsValid(s.Rows, s.Cols) {
		return fmt.Errorf("%w: player %w", ErrInvalidScenario, core.WrapPositionError(s.Player.Coordinate(), core.ErrOutOfBounds))
	}
	for i, r := range s.Rats {
		if !r.Coordinate().IsValid(s.Rows, s.Cols) {
			return fmt.Errorf("%w: rat %d %w", ErrInvalidScenario, i, core.WrapPositionError(r.Coordinate(), core.ErrOutOfBounds))
		}
	}
	for i, p := range s.Pellets {
		if !p.Coordinate().IsValid(s.Rows, s.Cols) {
			return fmt.Errorf("%w: pellet %d %w", ErrInvalidScenario, i, core.WrapPositionError(p.Coordinate(), core.ErrOutOfBounds))
		}
	}
	return nil
}

// Apply places the player, then the rats, then the pellets into an empty
// arena of matching size. Pellets may sit under the player or a rat.
func (s *Scenario) Apply(a *arena.Arena) error {
	if a.Rows() != s.Rows || a.Cols() != s.Cols {
		return fmt.Errorf("%w: arena is %dx%d, scenario is %dx%d",
			ErrInvalidScenario, a.Rows(), a.Cols(), s.Rows, s.Cols)
	}
	if len(s.Rats) > a.MaxRats() {
		return fmt.Errorf("%w: %w: %d rats, limit %d", ErrInvalidScenario, core.ErrInvalidRatCount, len(s.Rats), a.MaxRats())
	}

	if !a.AddPlayer(s.Player.Coordinate()) {
		return core.WrapPositionError(s.Player.Coordinate(), core.ErrPlacementFailed)
	}
	for _, r := range s.Rats {
		if !a.AddRat(r.Coordinate()) {
			return core.WrapPositionError(r.Coordinate(), core.ErrPlacementFailed)
		}
	}
	for _, p := range s.Pellets {
		if err := a.SetCellStatus(p.Coordinate(), core.CellPoisoned); err != nil {
			return err
		}
	}
	return nil
}
