package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreBoard(t *testing.T) {
	t.Run("numbers turns from one", func(t *testing.T) {
		var b ScoreBoard
		first := b.AddTurn(code("rgby"), Score{ColorMatches: 2, ExactMatches: 1})
		second := b.AddTurn(code("cmlp"), Score{ColorMatches: 1})

		require.Equal(t, 1, first.Turn)
		require.Equal(t, 2, second.Turn)
		require.Equal(t, 2, b.Len())

		history := b.History()
		require.Len(t, history, 2)
		require.Equal(t, first, history[0])
		require.Equal(t, second, history[1])
	})

	t.Run("history cannot be altered through returned values", func(t *testing.T) {
		var b ScoreBoard
		guess := code("rgby")
		b.AddTurn(guess, Score{})
		guess[0] = Pink

		history := b.History()
		history[0].Guess[1] = Pink
		history[0].Turn = 42

		again := b.History()
		require.Equal(t, "rgby", again[0].Guess.String())
		require.Equal(t, 1, again[0].Turn)
	})

	t.Run("empty board", func(t *testing.T) {
		var b ScoreBoard
		require.Empty(t, b.History())
	})
}
