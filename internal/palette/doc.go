// Package palette holds the ordered player colours of the viewer.
//
// A Palette is addressed by slot number only: slot 0 is the first player,
// slot 1 the second, and so on. Requests outside the declared slots fail with
// an OutOfRangeError; there is no wrap-around and no default colour, so a
// match with more players than colours is reported instead of rendered with
// ambiguous colours.
package palette
