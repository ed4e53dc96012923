package console

import (
	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// Board symbols
const (
	EmptySymbol      = '.'
	PelletSymbol     = '*'
	RatSymbol        = 'R'
	PlayerSymbol     = '@'
	DeadPlayerSymbol = 'X'
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorGray   = "\033[90m"

	BgRed = "\033[41m"
)

// Symbol returns the character drawn for pos. The player hides anything
// under it; otherwise rats hide pellets, and crowds of nine or more rats
// all draw as '9'.
func Symbol(s arena.Snapshot, pos core.Coordinate) byte {
	if s.Player != nil && s.Player.Position == pos {
		if s.Player.Dead {
			return DeadPlayerSymbol
		}
		return PlayerSymbol
	}

	cell := s.Cell(pos)
	switch {
	case cell.Rats == 1:
		return RatSymbol
	case cell.Rats >= 9:
		return '9'
	case cell.Rats > 1:
		return byte('0' + cell.Rats)
	case cell.Status == core.CellPoisoned:
		return PelletSymbol
	default:
		return EmptySymbol
	}
}

// symbolColor picks the ANSI color used for a board symbol
func symbolColor(sym byte) string {
	switch sym {
	case EmptySymbol:
		return ColorGray
	case PelletSymbol:
		return ColorYellow
	case PlayerSymbol:
		return ColorGreen
	case DeadPlayerSymbol:
		return BgRed
	default:
		return ColorRed
	}
}
