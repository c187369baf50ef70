package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/duelview/internal/ctxlog"
	"github.com/vk/duelview/internal/palette"
	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/internal/state"
)

// ErrNotLoaded is returned by Cycle before a successful Load.
var ErrNotLoaded = errors.New("host runtime not loaded")

// Runtime owns the module instances of a single run.
type Runtime struct {
	registry *registry.Registry
	palette  *palette.Palette
	env      *registry.Env
	modules  []registry.Module
	loaded   bool
}

// New creates a runtime. The palette and scene of env are shared with every
// module; env.Palette is set to pal.
func New(reg *registry.Registry, pal *palette.Palette, env *registry.Env) *Runtime {
	env.Palette = pal
	return &Runtime{
		registry: reg,
		palette:  pal,
		env:      env,
	}
}

// Load instantiates and initializes every declared module in order. The
// first failure is returned as a *registry.ResolutionError and no later
// module is touched. Modules initialized before the failure are closed.
func (r *Runtime) Load(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	descriptors := r.registry.Modules()
	logger.Debug("Loading view modules.", "count", len(descriptors))

	modules := make([]registry.Module, 0, len(descriptors))
	for i, d := range descriptors {
		mod, err := resolve(d)
		if err != nil {
			logger.Error("Module resolution failed.", "position", i, "module", d.Name, "error", err)
			return r.abortLoad(ctx, modules, &registry.ResolutionError{Name: d.Name, Err: err})
		}
		if err := mod.Initialize(ctx, r.env); err != nil {
			logger.Error("Module initialization failed.", "position", i, "module", d.Name, "error", err)
			return r.abortLoad(ctx, modules, &registry.ResolutionError{Name: d.Name, Err: fmt.Errorf("initialize: %w", err)})
		}
		logger.Debug("Module loaded.", "position", i, "module", d.Name)
		modules = append(modules, mod)
	}

	r.modules = modules
	r.loaded = true
	logger.Info("View modules loaded.", "modules", r.Loaded())
	return nil
}

// abortLoad releases the modules initialized so far and returns cause.
func (r *Runtime) abortLoad(ctx context.Context, initialized []registry.Module, cause *registry.ResolutionError) error {
	r.modules = initialized
	if err := r.Close(ctx); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to release modules after load failure.", "error", err)
	}
	return cause
}

func resolve(d registry.Descriptor) (mod registry.Module, err error) {
	if d.New == nil {
		return nil, errors.New("no factory")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()
	mod, err = d.New()
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, errors.New("factory returned no module")
	}
	return mod, nil
}

// Cycle runs one frame through every module in load order. Each module is
// updated then rendered before the next one starts. The first error aborts
// the cycle.
func (r *Runtime) Cycle(ctx context.Context, st *state.Frame) error {
	if !r.loaded {
		return ErrNotLoaded
	}
	if err := st.Validate(r.palette); err != nil {
		return err
	}

	frame := &registry.Frame{
		State:   st,
		Palette: r.palette,
		Scene:   r.env.Scene,
	}
	for _, mod := range r.modules {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := mod.UpdateFromState(ctx, frame); err != nil {
			return fmt.Errorf("module '%s' turn %d: update: %w", mod.Name(), st.Turn, err)
		}
		if err := mod.Render(ctx, frame); err != nil {
			return fmt.Errorf("module '%s' turn %d: render: %w", mod.Name(), st.Turn, err)
		}
	}
	return nil
}

// Close releases module resources in reverse load order. All modules are
// closed even when one fails; the errors are joined.
func (r *Runtime) Close(ctx context.Context) error {
	var errs []error
	for i := len(r.modules) - 1; i >= 0; i-- {
		c, ok := r.modules[i].(registry.Closer)
		if !ok {
			continue
		}
		if err := c.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("module '%s': close: %w", r.modules[i].Name(), err))
		}
	}
	r.modules = nil
	r.loaded = false
	return errors.Join(errs...)
}

// Loaded returns the names of the live modules in load order.
func (r *Runtime) Loaded() []string {
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name()
	}
	return names
}
