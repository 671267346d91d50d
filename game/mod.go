// Package game holds the rules of Mastermind: the color palette, codes,
// scoring, the per-game score board and the game state machine.
//
// Every Code that reaches the scorer or the state machine has been through
// ParseCode or ValidateCode, so it has the rule length, no repeated colors
// and only palette colors. Evaluate relies on that.
package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Color is a peg color, identified by its single-letter code.
type Color rune

const (
	Red     Color = 'r'
	Green   Color = 'g'
	Blue    Color = 'b'
	Yellow  Color = 'y'
	Cyan    Color = 'c'
	Magenta Color = 'm'
	Lime    Color = 'l'
	Pink    Color = 'p'
)

var colorNames = map[Color]string{
	Red:     "red",
	Green:   "green",
	Blue:    "blue",
	Yellow:  "yellow",
	Cyan:    "cyan",
	Magenta: "magenta",
	Lime:    "lime",
	Pink:    "pink",
}

// Letter returns the single-letter code of the color.
func (c Color) Letter() string {
	return string(c)
}

// Name returns the full color name, or the letter for colors outside the standard palette.
func (c Color) Name() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return string(c)
}

func (c Color) String() string {
	return c.Name()
}

// Palette is the ordered set of colors a code may use.
type Palette []Color

// StandardPalette returns the eight game colors. Each call returns a fresh
// slice so callers cannot alter the palette seen by others.
func StandardPalette() Palette {
	return Palette{Red, Green, Blue, Yellow, Cyan, Magenta, Lime, Pink}
}

// Contains reports whether c belongs to the palette.
func (p Palette) Contains(c Color) bool {
	return slices.Contains(p, c)
}

// Code is an ordered sequence of colors: a secret or a guess.
type Code []Color

// String renders the code as its letters, e.g. "rgby".
func (c Code) String() string {
	var sb strings.Builder
	for _, color := range c {
		sb.WriteRune(rune(color))
	}
	return sb.String()
}

// Equal reports whether both codes hold the same colors in the same order.
func (c Code) Equal(other Code) bool {
	return slices.Equal(c, other)
}

// Copy returns an independent copy of the code.
func (c Code) Copy() Code {
	return slices.Clone(c)
}
