package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const replay = `
frame {
  player "Ada" {
    slot     = 0
    position = 2
  }
  player "Bob" {
    slot     = 1
    position = 17
  }
}
`

func TestRun_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error makes the loader fail inside app.NewApp, which panics.
	invalidHCL := `
		frame {
			player "Ada" {
		// Missing closing braces here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "replay.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600), "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, []string{"-headless", filePath})

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")

	errStr := runErr.Error()
	require.True(t, strings.Contains(errStr, "application startup panicked"), "The error message should indicate that a panic was recovered.")
	require.True(t, strings.Contains(errStr, "failed to parse"), "The error message should contain the underlying reason for the panic.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_HeadlessReplay(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "replay.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(replay), 0o600))

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-headless", "-frame-duration=1ms", filePath})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Replay finished")
}

func TestRun_LogFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "replay.hcl")
	logPath := filepath.Join(tempDir, "duel.log")
	require.NoError(t, os.WriteFile(filePath, []byte(replay), 0o600))

	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{"-headless", "-log-file", logPath, "-log-format=json", filePath})
	require.NoError(t, err)
	require.Empty(t, out.String())

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(logs), `"run_id"`)
}
