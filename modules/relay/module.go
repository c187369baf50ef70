// Package relay streams every rendered frame to a socket.io endpoint so a
// remote viewer can follow the duel.
package relay

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/internal/scene"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Name is the catalog name of the module.
const Name = "relay"

// DefaultEvent is the event name used when Config.Event is empty.
const DefaultEvent = "frame"

// Config configures the relay endpoint.
type Config struct {
	URL                string
	Namespace          string
	Event              string
	ConnectTimeout     time.Duration
	InsecureSkipVerify bool
}

// Payload is the JSON document emitted once per frame.
type Payload struct {
	RunID    string          `json:"run_id"`
	Turn     int             `json:"turn"`
	Entities []EntityPayload `json:"entities"`
	Summary  []string        `json:"summary,omitempty"`
}

// EntityPayload is the wire form of a scene entity.
type EntityPayload struct {
	Slot    int    `json:"slot"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Glyph   string `json:"glyph"`
	Color   string `json:"color"`
	Tooltip string `json:"tooltip,omitempty"`
}

// emitter is the part of a socket.io client the module uses.
type emitter interface {
	emit(event string, payload any)
	close()
}

type socketEmitter struct {
	io *socket.Socket
}

func (s *socketEmitter) emit(event string, payload any) { s.io.Emit(event, payload) }
func (s *socketEmitter) close()                         { s.io.Disconnect() }

// dialFunc opens an emitter. It is replaced in tests.
type dialFunc func(ctx context.Context, logger *slog.Logger, cfg Config) (emitter, error)

// Module is the relay module.
type Module struct {
	cfg    Config
	dial   dialFunc
	logger *slog.Logger
	runID  string
	out    emitter
}

// Descriptor returns the registry entry for a relay with the given config.
// An invalid URL fails resolution.
func Descriptor(cfg Config) registry.Descriptor {
	return registry.Descriptor{
		Name: Name,
		New: func() (registry.Module, error) {
			m, err := New(cfg)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
}

// New validates cfg and returns a relay module. An empty URL yields a relay
// that only logs.
func New(cfg Config) (*Module, error) {
	if cfg.URL != "" {
		u, err := url.Parse(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse URL: %w", err)
		}
		switch u.Scheme {
		case "http", "https", "ws", "wss":
		default:
			return nil, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
		}
		if u.Host == "" {
			return nil, errors.New("URL has no host")
		}
	}
	if cfg.Event == "" {
		cfg.Event = DefaultEvent
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 15 * time.Second
	}
	return &Module{cfg: cfg, dial: dialSocket}, nil
}

func (m *Module) Name() string { return Name }

// Initialize connects to the endpoint and waits for the handshake.
func (m *Module) Initialize(ctx context.Context, env *registry.Env) error {
	m.logger = env.Logger.With("module", Name, "url", m.cfg.URL)
	m.runID = env.RunID
	if m.cfg.URL == "" {
		m.logger.Warn("Relay has no URL, frames will not be streamed.")
		return nil
	}
	out, err := m.dial(ctx, m.logger, m.cfg)
	if err != nil {
		return err
	}
	m.out = out
	return nil
}

// UpdateFromState is a no-op: the relay only observes the scene.
func (m *Module) UpdateFromState(ctx context.Context, frame *registry.Frame) error {
	return nil
}

// Render emits the current scene.
func (m *Module) Render(ctx context.Context, frame *registry.Frame) error {
	p := BuildPayload(m.runID, frame.State.Turn, frame.Scene.Entities(), frame.State.Summary)
	if m.out == nil {
		m.logger.Debug("Frame not relayed.", "turn", p.Turn)
		return nil
	}
	m.out.emit(m.cfg.Event, p)
	return nil
}

// Close disconnects from the endpoint.
func (m *Module) Close(ctx context.Context) error {
	if m.out != nil {
		m.logger.Debug("Disconnecting relay.")
		m.out.close()
		m.out = nil
	}
	return nil
}

// BuildPayload converts scene entities into the wire payload.
func BuildPayload(runID string, turn int, entities []scene.Entity, summary []string) Payload {
	p := Payload{
		RunID:    runID,
		Turn:     turn,
		Entities: make([]EntityPayload, 0, len(entities)),
		Summary:  summary,
	}
	for _, e := range entities {
		p.Entities = append(p.Entities, EntityPayload{
			Slot:    e.Slot,
			X:       e.X,
			Y:       e.Y,
			Glyph:   string(e.Glyph),
			Color:   e.Color.String(),
			Tooltip: e.Tooltip,
		})
	}
	return p
}

func dialSocket(ctx context.Context, logger *slog.Logger, cfg Config) (emitter, error) {
	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Relay connected", "sid", io.Id())
		signal(connectChan, nil)
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		signal(connectChan, err)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &socketEmitter{io: io}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(cfg.ConnectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", cfg.ConnectTimeout)
	}
}

// signal delivers the first handshake outcome and drops later ones.
func signal(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}
