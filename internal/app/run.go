package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vk/duelview/internal/ctxlog"
	"github.com/vk/duelview/internal/host"
	"github.com/vk/duelview/internal/palette"
	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/internal/scene"
)

// similarColorDistance is the CIEDE2000 distance, on go-colorful's 0..1
// scale, under which two player colours are reported as hard to tell apart.
const similarColorDistance = 0.1

// Run plays the loaded replay through the configured modules.
func (a *App) Run(ctx context.Context) (err error) {
	runID := uuid.NewString()
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", runID))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		srv := a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer a.stopHealthcheckServer(ctx, srv)
	}

	view := a.model.View
	pal, err := palette.New(view.PlayerColors...)
	if err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}
	for _, pair := range pal.Similar(similarColorDistance) {
		logger.Warn("Player colours are hard to tell apart.", "slot_a", pair[0], "slot_b", pair[1])
	}

	replay := a.model.Replay
	if err := replay.Validate(pal); err != nil {
		return fmt.Errorf("replay does not match palette: %w", err)
	}

	reg, err := a.catalog.Registry(view.Modules...)
	if err != nil {
		return err
	}

	screen, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	defer screen.Fini()

	rt := host.New(reg, pal, &registry.Env{
		Logger: logger,
		Screen: screen,
		Scene:  scene.New(),
		RunID:  runID,
	})
	if err := rt.Load(ctx); err != nil {
		return err
	}
	defer func() {
		if closeErr := rt.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if len(replay.Frames) == 0 {
		logger.Warn("Replay has no frames, nothing to show.")
		return nil
	}

	logger.Info("🎬 Starting replay.", "frames", len(replay.Frames), "frame_duration", view.FrameDuration)
	for i, frame := range replay.Frames {
		if i > 0 && view.FrameDuration > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(view.FrameDuration):
			}
		}
		for _, line := range frame.Summary {
			logger.Info(line, "turn", frame.Turn)
		}
		if err := rt.Cycle(ctx, frame); err != nil {
			return fmt.Errorf("replay failed: %w", err)
		}
	}
	logger.Info("🏁 Replay finished.", "frames", len(replay.Frames))

	logger.Debug("App.Run method finished.")
	return nil
}
