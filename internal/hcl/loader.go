package hcl

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/duelview/internal/config"
	"github.com/vk/duelview/internal/ctxlog"
	"github.com/vk/duelview/internal/fsutil"
	"github.com/vk/duelview/internal/state"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from paths, in order, and merges
// them into one model. Frames keep file order; a frame without a turn gets
// the next turn number.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, err := translateFile(&root)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
		if err := model.Merge(part); err != nil {
			return nil, fmt.Errorf("in %s: %w", file, err)
		}
	}

	if model.Replay != nil {
		numberFrames(model.Replay)
	}

	frames := 0
	if model.Replay != nil {
		frames = len(model.Replay.Frames)
	}
	logger.Debug("HCL loading complete.", "files", len(files), "view", model.View != nil, "relay", model.Relay != nil, "frames", frames)
	return model, nil
}

func translateFile(root *fileRoot) (*config.Model, error) {
	m := &config.Model{}

	if len(root.Views) > 1 {
		return nil, fmt.Errorf("view block defined more than once")
	}
	if len(root.Views) == 1 {
		v, err := translateView(root.Views[0])
		if err != nil {
			return nil, err
		}
		m.View = v
	}

	if len(root.Relays) > 1 {
		return nil, fmt.Errorf("relay block defined more than once")
	}
	if len(root.Relays) == 1 {
		r, err := translateRelay(root.Relays[0])
		if err != nil {
			return nil, err
		}
		m.Relay = r
	}

	if len(root.Frames) > 0 {
		m.Replay = &state.Replay{Frames: make([]*state.Frame, 0, len(root.Frames))}
		for _, fb := range root.Frames {
			m.Replay.Frames = append(m.Replay.Frames, translateFrame(fb))
		}
	}
	return m, nil
}

// translateView applies the built-in view for every attribute left out.
func translateView(b *viewBlock) (*config.View, error) {
	v := config.DefaultView()
	if b.FrameDuration != "" {
		d, err := time.ParseDuration(b.FrameDuration)
		if err != nil {
			return nil, fmt.Errorf("view: invalid frame_duration: %w", err)
		}
		v.FrameDuration = d
	}
	if b.PlayerColors != nil {
		v.PlayerColors = b.PlayerColors
	}
	if b.Modules != nil {
		v.Modules = b.Modules
	}
	return v, nil
}

func translateRelay(b *relayBlock) (*config.Relay, error) {
	r := &config.Relay{
		URL:                b.URL,
		Namespace:          b.Namespace,
		Event:              b.Event,
		InsecureSkipVerify: b.InsecureSkipVerify,
	}
	if b.ConnectTimeout != "" {
		d, err := time.ParseDuration(b.ConnectTimeout)
		if err != nil {
			return nil, fmt.Errorf("relay: invalid connect_timeout: %w", err)
		}
		r.ConnectTimeout = d
	}
	return r, nil
}

func translateFrame(b *frameBlock) *state.Frame {
	f := &state.Frame{
		Turn:    b.Turn,
		Summary: b.Summary,
	}
	for _, p := range b.Players {
		f.Players = append(f.Players, state.Player{
			Slot:     p.Slot,
			Nickname: p.Nickname,
			Position: p.Position,
			Energy:   p.Energy,
			Score:    p.Score,
		})
	}
	for _, t := range b.Tooltips {
		f.Tooltips = append(f.Tooltips, state.Tooltip{Slot: t.Slot, Text: t.Text})
	}
	return f
}

func numberFrames(r *state.Replay) {
	last := 0
	for _, f := range r.Frames {
		if f.Turn == 0 {
			f.Turn = last + 1
		}
		last = f.Turn
	}
}
