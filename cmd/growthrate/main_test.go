package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/growthrate/internal/data"
)

// runCLI executes the root command with a missing config file so defaults apply.
// Not parallel: commands share package-level state.
func runCLI(t *testing.T, maxLevel, locale string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args,
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--max-level", maxLevel,
		"--locale", locale,
	))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExpCommand(t *testing.T) {
	out, err := runCLI(t, "100", "en-US", "exp", "Fast", "100")
	require.NoError(t, err)
	assert.Equal(t, "800000\n", out)
}

func TestLevelCommand(t *testing.T) {
	out, err := runCLI(t, "100", "en-US", "level", "Fast", "799999")
	require.NoError(t, err)
	assert.Equal(t, "level: 99\nto next level: 1\n", out)

	out, err = runCLI(t, "100", "en-US", "level", "Fast", "800000")
	require.NoError(t, err)
	assert.Equal(t, "level: 100\n", out)
}

func TestListCommand_Localized(t *testing.T) {
	out, err := runCLI(t, "100", "de-DE", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Level cap: 100")
	assert.Contains(t, out, "Schnell")
	assert.Contains(t, out, "1640000")
}

func TestCheckCommand(t *testing.T) {
	out, err := runCLI(t, "150", "en-US", "check")
	require.NoError(t, err)
	assert.Equal(t, "6 growth rates ok up to level 150\n", out)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		maxLevel string
		args     []string
		wantErr  error
	}{
		{name: "unknown rate", maxLevel: "100", args: []string{"exp", "Glacial", "5"}, wantErr: data.ErrNotFound},
		{name: "level zero", maxLevel: "100", args: []string{"exp", "Fast", "0"}, wantErr: data.ErrInvalidLevel},
		{name: "non-numeric level", maxLevel: "100", args: []string{"exp", "Fast", "ten"}},
		{name: "cap above ceiling", maxLevel: "1000", args: []string{"list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.maxLevel, "en-US", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}
