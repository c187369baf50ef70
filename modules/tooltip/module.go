// Package tooltip pins short referee messages above the fencers.
//
// It reads the entities placed by the graphic module, so it must be
// registered after it.
package tooltip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/vk/duelview/internal/canvas"
	"github.com/vk/duelview/internal/registry"
)

// Name is the catalog name of the module.
const Name = "tooltip"

// Module is the tooltip module.
type Module struct {
	logger *slog.Logger
	screen tcell.Screen
}

// Descriptor returns the registry entry for the module.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name: Name,
		New:  func() (registry.Module, error) { return &Module{}, nil },
	}
}

func (m *Module) Name() string { return Name }

func (m *Module) Initialize(ctx context.Context, env *registry.Env) error {
	if env.Screen == nil {
		return errors.New("tooltip module requires a screen")
	}
	m.logger = env.Logger.With("module", Name)
	m.screen = env.Screen
	return nil
}

// UpdateFromState replaces the tooltips of the previous frame.
func (m *Module) UpdateFromState(ctx context.Context, frame *registry.Frame) error {
	frame.Scene.ClearTooltips()
	for _, tt := range frame.State.Tooltips {
		if err := frame.Scene.SetTooltip(tt.Slot, tt.Text); err != nil {
			return fmt.Errorf("tooltip %q: %w", tt.Text, err)
		}
		m.logger.Debug("Tooltip attached.", "slot", tt.Slot, "text", tt.Text, "turn", frame.State.Turn)
	}
	return nil
}

// Render draws each tooltip centred one row above its entity.
func (m *Module) Render(ctx context.Context, frame *registry.Frame) error {
	for _, e := range frame.Scene.Entities() {
		if e.Tooltip == "" {
			continue
		}
		x := e.X - len([]rune(e.Tooltip))/2
		if x < 0 {
			x = 0
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(e.Color.TCell())
		canvas.Text(m.screen, x, e.Y-1, style, e.Tooltip)
	}
	m.screen.Show()
	return nil
}
