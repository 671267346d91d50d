package game

import (
	"fmt"

	"mastermind/meta"
	"mastermind/utils"
)

type StandardRules struct {
	Length int
	Tries  int
	Colors Palette
}

// NewStandardRules returns the classic rules: 4 pegs, 12 tries, 8 colors.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Length: meta.CodeLength,
		Tries:  meta.MaxTries,
		Colors: StandardPalette(),
	}
}

func (sr *StandardRules) CodeLength() int {
	return sr.Length
}

func (sr *StandardRules) MaxTries() int {
	return sr.Tries
}

func (sr *StandardRules) Palette() Palette {
	return sr.Colors
}

// Validate fails with ErrInvalidConfiguration when no game can be played
// under these rules. Codes have distinct colors, so the length may not
// exceed the palette size.
func (sr *StandardRules) Validate() error {
	return ValidateRules(sr)
}

// ValidateRules checks any Rules implementation for a playable configuration.
func ValidateRules(r Rules) error {
	switch {
	case r.CodeLength() < 1:
		return fmt.Errorf("%w: code length %d must be at least 1", ErrInvalidConfiguration, r.CodeLength())
	case r.CodeLength() > len(r.Palette()):
		return fmt.Errorf("%w: code length %d exceeds palette size %d", ErrInvalidConfiguration, r.CodeLength(), len(r.Palette()))
	case r.MaxTries() < 1:
		return fmt.Errorf("%w: max tries %d must be at least 1", ErrInvalidConfiguration, r.MaxTries())
	case !utils.AllDistinct(r.Palette()):
		return fmt.Errorf("%w: palette repeats a color", ErrInvalidConfiguration)
	}
	return nil
}
