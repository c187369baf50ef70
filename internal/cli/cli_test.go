package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/duelview/internal/app"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-replay", "/test/replay",
				"--config=/test/view.hcl",
				"--log-level=debug",
				"--log-format=json",
				"--log-file=/tmp/duel.log",
				"--headless",
				"--frame-duration=50ms",
				"--healthcheck-port=8080",
			},
			expectedConfig: &app.Config{
				ReplayPath:      "/test/replay",
				ConfigPath:      "/test/view.hcl",
				LogLevel:        "debug",
				LogFormat:       "json",
				LogFile:         "/tmp/duel.log",
				Headless:        true,
				FrameDuration:   50 * time.Millisecond,
				HealthcheckPort: 8080,
			},
		},
		{
			name: "Shorthand flag and defaults",
			args: []string{"-r", "/short/path"},
			expectedConfig: &app.Config{
				ReplayPath: "/short/path",
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/path"},
			expectedConfig: &app.Config{
				ReplayPath: "/positional/path",
				LogLevel:   "info",
				LogFormat:  "text",
			},
		},
		{
			name:       "No path prints usage",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "Help flag",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "REPLAY_PATH")
			},
		},
		{
			name:      "Invalid log format",
			args:      []string{"--log-format=xml", "/path"},
			expectErr: true,
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level=loud", "/path"},
			expectErr: true,
		},
		{
			name:      "Negative frame duration",
			args:      []string{"--frame-duration=-1s", "/path"},
			expectErr: true,
		},
		{
			name:      "Unknown flag",
			args:      []string{"--colour=blue", "/path"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)

			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectErr {
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
