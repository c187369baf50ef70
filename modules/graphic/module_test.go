package graphic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/duelview/internal/canvas"
	"github.com/vk/duelview/internal/palette"
	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/internal/state"
	"github.com/vk/duelview/internal/testutil"
)

func TestInitialize_PlacesOneEntityPerSlot(t *testing.T) {
	ctx, _ := testutil.Context(t)
	env := testutil.NewEnv(t, ctx)

	m := &Module{}
	require.NoError(t, m.Initialize(ctx, env))

	ents := env.Scene.Entities()
	require.Len(t, ents, 2)
	assert.Equal(t, 'A', ents[0].Glyph)
	assert.Equal(t, palette.Color("#49cc35"), ents[0].Color)
	assert.Equal(t, canvas.Column(0), ents[0].X)
	assert.Equal(t, 'B', ents[1].Glyph)
	assert.Equal(t, palette.Color("#ff0000"), ents[1].Color)
	assert.Equal(t, canvas.Column(state.Piste), ents[1].X)
}

func TestInitialize_RequiresScreen(t *testing.T) {
	ctx, _ := testutil.Context(t)
	env := testutil.NewEnv(t, ctx)
	env.Screen = nil

	require.Error(t, (&Module{}).Initialize(ctx, env))
}

func TestCycle_DrawsFencersInPaletteColours(t *testing.T) {
	ctx, _ := testutil.Context(t)
	env := testutil.NewEnv(t, ctx)

	m := &Module{}
	require.NoError(t, m.Initialize(ctx, env))

	frame := &registry.Frame{
		State: &state.Frame{
			Turn: 7,
			Players: []state.Player{
				{Slot: 0, Nickname: "Ada", Position: 5, Energy: 18, Score: 1},
				{Slot: 1, Nickname: "Bob", Position: 9, Energy: 12, Score: 0},
			},
		},
		Palette: env.Palette,
		Scene:   env.Scene,
	}
	require.NoError(t, m.UpdateFromState(ctx, frame))
	require.NoError(t, m.Render(ctx, frame))

	header := testutil.Row(env.Screen, canvas.HeaderRow)
	assert.Contains(t, header, "turn 7")
	assert.Contains(t, header, "Ada 1 pts E:18")
	assert.Contains(t, header, "Bob 0 pts E:12")

	row := []rune(testutil.Row(env.Screen, canvas.PisteRow))
	require.Greater(t, len(row), canvas.Column(9))
	assert.Equal(t, 'A', row[canvas.Column(5)])
	assert.Equal(t, 'B', row[canvas.Column(9)])

	assert.Equal(t, canvas.Style("#49cc35"), testutil.StyleAt(env.Screen, canvas.Column(5), canvas.PisteRow))
	assert.Equal(t, canvas.Style("#ff0000"), testutil.StyleAt(env.Screen, canvas.Column(9), canvas.PisteRow))

	piste := testutil.Row(env.Screen, canvas.PisteRow+1)
	assert.Contains(t, piste, "───")
}

func TestUpdateFromState_UnknownSlot(t *testing.T) {
	ctx, _ := testutil.Context(t)
	env := testutil.NewEnv(t, ctx)

	frame := &registry.Frame{
		State:   &state.Frame{Players: []state.Player{{Slot: 0, Nickname: "Ada"}}},
		Palette: env.Palette,
		Scene:   env.Scene,
	}
	// Not initialized, so the scene is empty.
	require.Error(t, (&Module{}).UpdateFromState(ctx, frame))
}
