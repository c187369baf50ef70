// Package testutil holds the fixtures shared by module and app tests.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
	"github.com/vk/duelview/internal/ctxlog"
	"github.com/vk/duelview/internal/palette"
	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/internal/scene"
)

// Screen size used by NewEnv.
const (
	ScreenWidth  = 80
	ScreenHeight = 10
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Context returns a context carrying a debug logger that writes to the
// returned buffer. The log is dumped on cleanup when DUELVIEW_TEST_LOGS=true.
func Context(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() {
		if os.Getenv("DUELVIEW_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// NewEnv returns a module environment backed by an initialized simulation
// screen and the built-in palette.
func NewEnv(t *testing.T, ctx context.Context) *registry.Env {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(ScreenWidth, ScreenHeight)
	t.Cleanup(screen.Fini)

	return &registry.Env{
		Logger:  ctxlog.FromContext(ctx),
		Screen:  screen,
		Palette: palette.PlayerColors,
		Scene:   scene.New(),
		RunID:   "test-run",
	}
}

// Row returns the text drawn on row y, with trailing blanks removed.
func Row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

// StyleAt returns the style of the cell at (x, y).
func StyleAt(screen tcell.Screen, x, y int) tcell.Style {
	_, _, style, _ := screen.GetContent(x, y)
	return style
}
