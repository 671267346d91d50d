package game

import (
	"fmt"
	"strings"

	"mastermind/utils"
)

// ParseCode turns raw operator input into a Code. Input is trimmed and
// lowercased first, then checked for length, repeated colors and colors
// outside the palette, in that order. The returned error wraps
// ErrLengthMismatch, ErrDuplicateColors or ErrUnknownColor.
func ParseCode(raw string, length int, palette Palette) (Code, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	code := make(Code, 0, len(normalized))
	for _, r := range normalized {
		code = append(code, Color(r))
	}
	if err := ValidateCode(code, length, palette); err != nil {
		return nil, err
	}
	return code, nil
}

// ValidateCode applies the ParseCode rules to an already built code.
func ValidateCode(code Code, length int, palette Palette) error {
	if len(code) != length {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(code), length)
	}
	if c, ok := utils.FirstRepeat(code); ok {
		return fmt.Errorf("%w: %q appears more than once", ErrDuplicateColors, rune(c))
	}
	for _, c := range code {
		if !palette.Contains(c) {
			return fmt.Errorf("%w: %q", ErrUnknownColor, rune(c))
		}
	}
	return nil
}
