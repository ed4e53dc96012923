package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"chatty", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestRun_ScenarioLoss(t *testing.T) {
	path := writeScenario(t, `
name: doomed
rows: 1
cols: 2
player: {row: 1, col: 1}
rats:
  - {row: 1, col: 2}
`)
	var out bytes.Buffer
	err := run(context.Background(), []string{"-scenario", path, "-log-level", "disabled"}, strings.NewReader("e\n"), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "@R\n")
	assert.Contains(t, text, "There are 1 rats remaining.\n")
	assert.Contains(t, text, "Your move (n/e/s/w/x or nothing): ")
	assert.True(t, strings.HasSuffix(text, "Player walked into a rat and died.\nYou lose.\n"))
}

func TestRun_NoRatsWins(t *testing.T) {
	path := writeScenario(t, "rows: 2\ncols: 2\nplayer: {row: 2, col: 2}\n")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-scenario", path, "-log-level", "disabled"}, strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "..\n.@\n")
	assert.True(t, strings.HasSuffix(out.String(), "You win.\n"))
	assert.NotContains(t, out.String(), "Your move")
}

func TestRun_InputEndsEarly(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(),
		[]string{"-rows", "4", "-cols", "4", "-rats", "2", "-seed", "7", "-log-level", "disabled"},
		strings.NewReader(""), &out)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "There are 2 rats remaining.\n")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"bad rows", []string{"-rows", "0"}, core.ErrInvalidDimensions},
		{"too many cols", []string{"-cols", "21"}, core.ErrInvalidDimensions},
		{"single cell with rats", []string{"-rows", "1", "-cols", "1", "-rats", "3"}, core.ErrNoRoomForRats},
		{"missing scenario", []string{"-scenario", "/non/existent/scenario.yaml"}, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-log-level", "disabled")
			err := run(context.Background(), args, strings.NewReader(""), io.Discard)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), []string{"-rows", "2", "-log-level", "chatty"}, strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid -log-level")
}

func TestRun_MissingEnvironmentConfig(t *testing.T) {
	path := writeScenario(t, "rows: 2\ncols: 2\nplayer: {row: 1, col: 1}\n")

	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(oldWd) }()

	tests := []string{"production", "staging"}
	for _, env := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv("APP_ENV", env)

			var out bytes.Buffer
			err := run(context.Background(), []string{"-scenario", path, "-log-level", "disabled"}, strings.NewReader(""), &out)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out.String(), "You win.\n"))
		})
	}
}

func TestRun_BadFlag(t *testing.T) {
	err := run(context.Background(), []string{"-rows", "many"}, strings.NewReader(""), io.Discard)
	assert.Error(t, err)
}
