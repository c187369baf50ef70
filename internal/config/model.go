package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vk/duelview/internal/palette"
	"github.com/vk/duelview/internal/state"
)

// validate is a package-level singleton; building a validator is expensive.
var validate = newValidator()

// newValidator registers "rgbhex", the colour forms a palette accepts. The
// stock hexcolor tag also allows alpha forms that a palette rejects.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		return palette.IsHex(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// DefaultFrameDuration is the pause between two frames.
const DefaultFrameDuration = 200 * time.Millisecond

// Model is the unified representation of everything the loader found.
type Model struct {
	View   *View
	Relay  *Relay
	Replay *state.Replay
}

// View is the static view declaration: palette and module registry.
type View struct {
	FrameDuration time.Duration `validate:"gte=0"`
	PlayerColors  []string      `validate:"required,min=1,dive,rgbhex"`
	Modules       []string      `validate:"required,min=1,dive,required"`
}

// Relay configures the socket.io relay module.
type Relay struct {
	URL                string        `validate:"omitempty,url"`
	Namespace          string        `validate:"omitempty,startswith=/"`
	Event              string        `validate:"omitempty,printascii"`
	ConnectTimeout     time.Duration `validate:"gte=0"`
	InsecureSkipVerify bool
}

// DefaultView returns the built-in view: green and red players, graphic
// then tooltip modules.
func DefaultView() *View {
	return &View{
		FrameDuration: DefaultFrameDuration,
		PlayerColors:  []string{"#49cc35", "#ff0000"},
		Modules:       []string{"graphic", "tooltip"},
	}
}

// Validate checks the struct tags of the view.
func (v *View) Validate() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("view validation failed: %w", err)
	}
	return nil
}

// Validate checks the struct tags of the relay.
func (r *Relay) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("relay validation failed: %w", err)
	}
	return nil
}

// Validate fills defaults and validates every present section.
func (m *Model) Validate() error {
	if m.View == nil {
		m.View = DefaultView()
	}
	if err := m.View.Validate(); err != nil {
		return err
	}
	if m.Relay != nil {
		if err := m.Relay.Validate(); err != nil {
			return err
		}
	}
	if m.Replay == nil {
		m.Replay = &state.Replay{}
	}
	return nil
}

// Merge copies the sections present in other into m. A section defined in
// both is an error.
func (m *Model) Merge(other *Model) error {
	if other.View != nil {
		if m.View != nil {
			return fmt.Errorf("view block defined more than once")
		}
		m.View = other.View
	}
	if other.Relay != nil {
		if m.Relay != nil {
			return fmt.Errorf("relay block defined more than once")
		}
		m.Relay = other.Relay
	}
	if other.Replay != nil {
		if m.Replay == nil {
			m.Replay = &state.Replay{}
		}
		m.Replay.Frames = append(m.Replay.Frames, other.Replay.Frames...)
	}
	return nil
}
