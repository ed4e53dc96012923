package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/arena"
	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

// Escape sequence that clears the terminal and homes the cursor
const clearSequence = "\033[2J\033[H"

// Options control how the console renderer draws frames
type Options struct {
	ClearScreen bool
	Color       bool

	// Term overrides $TERM when deciding how to clear the screen
	Term string

	Logger zerolog.Logger
}

// Renderer draws arena snapshots as text
type Renderer struct {
	out    io.Writer
	opts   Options
	logger zerolog.Logger
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, opts Options) *Renderer {
	if opts.Term == "" {
		opts.Term = os.Getenv("TERM")
	}
	return &Renderer{
		out:    out,
		opts:   opts,
		logger: opts.Logger.With().Str("component", "console_renderer").Logger(),
	}
}

// ClearSequence returns what clears the screen on the given terminal type.
// Unknown and dumb terminals just get a newline.
func ClearSequence(term string) string {
	if term == "" || term == "dumb" {
		return "\n"
	}
	return clearSequence
}

// Render clears the screen, draws the grid and writes the status lines
func (r *Renderer) Render(s arena.Snapshot) error {
	var sb strings.Builder
	sb.Grow((s.Cols*12+1)*s.Rows + 256)

	if r.opts.ClearScreen {
		sb.WriteString(ClearSequence(r.opts.Term))
	}

	for row := 1; row <= s.Rows; row++ {
		for col := 1; col <= s.Cols; col++ {
			sym := Symbol(s, core.NewCoordinate(row, col))
			if r.opts.Color {
				sb.WriteString(symbolColor(sym))
				sb.WriteByte(sym)
				sb.WriteString(ColorReset)
			} else {
				sb.WriteByte(sym)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	for _, line := range StatusLines(s) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		r.logger.Error().Err(err).Msg("Failed to write frame")
		return fmt.Errorf("write frame: %w", err)
	}
	r.logger.Trace().Int("turn", s.Turns).Int("rats", s.RatCount).Msg("Frame rendered")
	return nil
}

// Notify writes a single message line
func (r *Renderer) Notify(msg string) error {
	if _, err := fmt.Fprintln(r.out, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// StatusLines returns the text shown under the grid
func StatusLines(s arena.Snapshot) []string {
	lines := make([]string, 0, 4)
	if s.Message != "" {
		lines = append(lines, s.Message)
	}
	lines = append(lines, fmt.Sprintf("There are %d rats remaining.", s.RatCount))
	switch {
	case s.Player == nil:
		lines = append(lines, "There is no player!")
	case s.Player.Dead:
		lines = append(lines, "The player is dead.")
	}
	lines = append(lines, fmt.Sprintf("%d turns have been taken.", s.Turns))
	return lines
}
