package game

import (
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"mastermind/utils"
)

// Source supplies uniform random integers in [0, n).
// *rand.Rand satisfies it; tests substitute deterministic sources.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded PCG-backed source.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GenerateCode draws colors uniformly from palette, discarding repeats,
// until the code holds length distinct colors.
func GenerateCode(src Source, length int, palette Palette) (Code, error) {
	if distinct := utils.CountDistinct(palette); length < 1 || length > distinct {
		return nil, fmt.Errorf("%w: cannot draw %d distinct colors from a palette of %d",
			ErrInvalidConfiguration, length, distinct)
	}
	code := make(Code, 0, length)
	for len(code) < length {
		c := palette[src.Intn(len(palette))]
		if slices.Contains(code, c) {
			continue
		}
		code = append(code, c)
	}
	return code, nil
}
