package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/vk/duelview/internal/config"
	"github.com/vk/duelview/internal/ctxlog"
	"github.com/vk/duelview/internal/registry"
)

// Size of the headless screen.
const (
	headlessWidth  = 80
	headlessHeight = 12
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	model     *config.Model
	catalog   *registry.Catalog
	newScreen func() (tcell.Screen, error)
}

// NewApp is the constructor for the main application. It loads and
// validates the configuration and builds the module catalog. Extra
// descriptors are added to the compiled-in catalog.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, extra ...registry.Descriptor) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.Paths()...)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := model.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	if appConfig.FrameDuration > 0 {
		model.View.FrameDuration = appConfig.FrameDuration
	}
	logger.Debug("Configuration loaded.", "modules", model.View.Modules, "colors", model.View.PlayerColors, "frames", len(model.Replay.Frames))

	catalog := registry.NewCatalog(append(coreModules(model.Relay), extra...)...)
	logger.Debug("Module catalog built.", "available", catalog.Names())

	a := &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		model:   model,
		catalog: catalog,
	}
	a.newScreen = a.defaultScreen
	return a
}

// defaultScreen opens the terminal, or an in-memory screen when headless.
func (a *App) defaultScreen() (tcell.Screen, error) {
	if a.config.Headless {
		s := tcell.NewSimulationScreen("UTF-8")
		if err := s.Init(); err != nil {
			return nil, err
		}
		s.SetSize(headlessWidth, headlessHeight)
		return s, nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
