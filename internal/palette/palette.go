package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex encoded RGB colour such as "#49cc35".
type Color string

// String returns the colour as it was declared.
func (c Color) String() string {
	return string(c)
}

// TCell converts the colour to a 24-bit terminal colour for rendering. Both
// the #rgb and #rrggbb forms are accepted; a value that does not parse maps
// to tcell.ColorDefault, which a palette built with New never holds.
func (c Color) TCell() tcell.Color {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := parsed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// PlayerColors is the built-in palette: green for slot 0, red for slot 1.
var PlayerColors = MustNew(
	"#49cc35", // green
	"#ff0000", // red
)

// Palette is an immutable, index addressable list of colours.
type Palette struct {
	colors []Color
	parsed []colorful.Color
}

// New validates the given colours and returns a palette holding a private
// copy of them.
func New(colors ...string) (*Palette, error) {
	if len(colors) == 0 {
		return nil, errors.New("palette must declare at least one colour")
	}

	p := &Palette{
		colors: make([]Color, 0, len(colors)),
		parsed: make([]colorful.Color, 0, len(colors)),
	}
	for i, raw := range colors {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil, fmt.Errorf("palette slot %d: empty colour", i)
		}
		if !IsHex(value) {
			return nil, fmt.Errorf("palette slot %d: invalid colour %q: want #rgb or #rrggbb", i, raw)
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return nil, fmt.Errorf("palette slot %d: invalid colour %q: %w", i, raw, err)
		}
		p.colors = append(p.colors, Color(value))
		p.parsed = append(p.parsed, c)
	}
	return p, nil
}

// IsHex reports whether s has the #rgb or #rrggbb form accepted by New.
func IsHex(s string) bool {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// MustNew is like New but panics on invalid input. It is meant for
// package-level palettes declared in code.
func MustNew(colors ...string) *Palette {
	p, err := New(colors...)
	if err != nil {
		panic(err)
	}
	return p
}

// ColorAt returns the colour of the given slot.
func (p *Palette) ColorAt(index int) (Color, error) {
	if index < 0 || index >= len(p.colors) {
		return "", &OutOfRangeError{Index: index, Size: len(p.colors)}
	}
	return p.colors[index], nil
}

// Size returns the number of declared colours.
func (p *Palette) Size() int {
	return len(p.colors)
}

// Colors returns a copy of the declared colours in slot order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Similar returns every pair of slots whose colours are within threshold in
// CIEDE2000 distance. go-colorful scales that distance to roughly 0..1, so
// green against red is about 0.78. Identical colours always match.
func (p *Palette) Similar(threshold float64) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(p.parsed); i++ {
		for j := i + 1; j < len(p.parsed); j++ {
			if p.parsed[i].DistanceCIEDE2000(p.parsed[j]) <= threshold {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
