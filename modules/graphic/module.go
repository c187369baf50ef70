// Package graphic draws the fencers on the piste.
//
// It owns the scene entities: one per palette slot, created at
// initialization and moved on every frame. Modules registered after it read
// those entities.
package graphic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/vk/duelview/internal/canvas"
	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/internal/scene"
	"github.com/vk/duelview/internal/state"
)

// Name is the catalog name of the module.
const Name = "graphic"

// Module is the graphic entity module.
type Module struct {
	logger  *slog.Logger
	screen  tcell.Screen
	players []state.Player
}

// Descriptor returns the registry entry for the module.
func Descriptor() registry.Descriptor {
	return registry.Descriptor{
		Name: Name,
		New:  func() (registry.Module, error) { return &Module{}, nil },
	}
}

func (m *Module) Name() string { return Name }

// Initialize places one entity per palette slot. Even slots start on the
// left end of the piste, odd slots on the right end.
func (m *Module) Initialize(ctx context.Context, env *registry.Env) error {
	if env.Screen == nil {
		return errors.New("graphic module requires a screen")
	}
	m.logger = env.Logger.With("module", Name)
	m.screen = env.Screen

	for slot, c := range env.Palette.Colors() {
		pos := 0
		if slot%2 == 1 {
			pos = state.Piste
		}
		id := env.Scene.Put(scene.Entity{
			Slot:  slot,
			X:     canvas.Column(pos),
			Y:     canvas.PisteRow,
			Glyph: rune('A' + slot),
			Color: c,
		})
		m.logger.Debug("Entity placed.", "slot", slot, "entity", id, "color", c)
	}
	return nil
}

// UpdateFromState moves every entity to the position of its player.
func (m *Module) UpdateFromState(ctx context.Context, frame *registry.Frame) error {
	for _, p := range frame.State.Players {
		if err := frame.Scene.Move(p.Slot, canvas.Column(p.Position), canvas.PisteRow); err != nil {
			return fmt.Errorf("player %q: %w", p.Nickname, err)
		}
	}
	m.players = frame.State.Players
	return nil
}

// Render clears the screen and draws the header, the piste and the fencers.
func (m *Module) Render(ctx context.Context, frame *registry.Frame) error {
	m.screen.Clear()

	x := canvas.OffsetX
	canvas.Text(m.screen, x, canvas.HeaderRow, tcell.StyleDefault, fmt.Sprintf("turn %d", frame.State.Turn))
	x += 10
	for _, p := range m.players {
		c, err := frame.Palette.ColorAt(p.Slot)
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%s %d pts E:%d", p.Nickname, p.Score, p.Energy)
		x = canvas.Text(m.screen, x, canvas.HeaderRow, canvas.Style(c), label) + 3
	}

	canvas.HLine(m.screen, canvas.Column(0), canvas.Column(state.Piste), canvas.PisteRow+1, tcell.StyleDefault, '─')

	for _, e := range frame.Scene.Entities() {
		m.screen.SetContent(e.X, e.Y, e.Glyph, nil, canvas.Style(e.Color))
	}
	m.screen.Show()
	return nil
}
