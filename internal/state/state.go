// Package state describes the duel as seen by the viewer: one Frame per
// referee turn.
package state

import (
	"fmt"

	"github.com/vk/duelview/internal/palette"
)

// Piste is the number of positions on the fencing strip.
const Piste = 20

// Referee tooltip texts.
const (
	TooltipOffSite = "off-site!"
	TooltipTouche  = "touché!"
	TooltipParry   = "Parry!"
)

// Player is the state of one fencer at the end of a turn.
type Player struct {
	Slot     int
	Nickname string
	Position int
	Energy   int
	Score    int
}

// Tooltip is a short message pinned to a player for one frame.
type Tooltip struct {
	Slot int
	Text string
}

// Frame is the viewer input for a single turn.
type Frame struct {
	Turn     int
	Players  []Player
	Tooltips []Tooltip
	Summary  []string
}

// Validate checks that every referenced slot has a colour in pal and that
// players stand on the piste.
func (f *Frame) Validate(pal *palette.Palette) error {
	for _, p := range f.Players {
		if _, err := pal.ColorAt(p.Slot); err != nil {
			return fmt.Errorf("turn %d: player %q: %w", f.Turn, p.Nickname, err)
		}
		if p.Position < 0 || p.Position > Piste {
			return fmt.Errorf("turn %d: player %q: position %d outside piste [0, %d]", f.Turn, p.Nickname, p.Position, Piste)
		}
	}
	for _, tt := range f.Tooltips {
		if _, err := pal.ColorAt(tt.Slot); err != nil {
			return fmt.Errorf("turn %d: tooltip %q: %w", f.Turn, tt.Text, err)
		}
	}
	return nil
}

// Replay is an ordered list of frames.
type Replay struct {
	Frames []*Frame
}

// Validate validates every frame against pal.
func (r *Replay) Validate(pal *palette.Palette) error {
	for _, f := range r.Frames {
		if err := f.Validate(pal); err != nil {
			return err
		}
	}
	return nil
}
