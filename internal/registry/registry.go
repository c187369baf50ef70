package registry

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/vk/duelview/internal/palette"
	"github.com/vk/duelview/internal/scene"
	"github.com/vk/duelview/internal/state"
)

// Module is the capability set every view module implements.
type Module interface {
	Name() string
	// Initialize is called once, in registry order, before the first cycle.
	Initialize(ctx context.Context, env *Env) error
	// UpdateFromState applies the game state of the current frame.
	UpdateFromState(ctx context.Context, frame *Frame) error
	// Render draws or emits the result of the current frame.
	Render(ctx context.Context, frame *Frame) error
}

// Closer is implemented by modules holding resources that outlive a cycle.
type Closer interface {
	Close(ctx context.Context) error
}

// Env is what a module receives at initialization.
type Env struct {
	Logger  *slog.Logger
	Screen  tcell.Screen
	Palette *palette.Palette
	Scene   *scene.Scene
	RunID   string
}

// Frame is what a module receives on every cycle.
type Frame struct {
	State   *state.Frame
	Palette *palette.Palette
	Scene   *scene.Scene
}

// Factory instantiates a module.
type Factory func() (Module, error)

// Descriptor is a named, non-owning reference to a module implementation.
type Descriptor struct {
	Name string
	New  Factory
}

// Registry is an ordered, immutable list of module descriptors.
type Registry struct {
	descriptors []Descriptor
}

// New creates a registry holding descriptors in the given order. Nothing is
// reordered, deduplicated or validated.
func New(descriptors ...Descriptor) *Registry {
	d := make([]Descriptor, len(descriptors))
	copy(d, descriptors)
	return &Registry{descriptors: d}
}

// Modules returns a snapshot of the declared descriptors in order. Each call
// returns a fresh slice with the same content.
func (r *Registry) Modules() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Len returns the number of declared modules.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Names returns the descriptor names in order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.descriptors))
	for i, d := range r.descriptors {
		names[i] = d.Name
	}
	return names
}
