package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"mastermind/utils"
)

// Score is the feedback for one guess.
type Score struct {
	ColorMatches int // guess colors present anywhere in the secret
	ExactMatches int // guess colors in the same position as in the secret
}

// Solved reports whether every one of length pegs matched exactly.
func (s Score) Solved(length int) bool {
	return s.ExactMatches == length
}

func (s Score) String() string {
	return fmt.Sprintf("%d matches %d of them exact", s.ColorMatches, s.ExactMatches)
}

// Evaluate scores guess against secret.
//
// ColorMatches counts guess elements that occur anywhere in the secret, one
// per guess position. That equals the classic multiset intersection only
// because codes never repeat a color; if repeated colors are ever allowed
// this must become a per-color min(count in guess, count in secret) sum.
func Evaluate(guess, secret Code) Score {
	exact := 0
	for i := range min(len(guess), len(secret)) {
		if guess[i] == secret[i] {
			exact++
		}
	}
	colors := utils.CountFunc(guess, func(c Color) bool {
		return slices.Contains(secret, c)
	})
	return Score{ColorMatches: colors, ExactMatches: exact}
}
