package presenter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mastermind/engine"
	"mastermind/game"
)

func newTestConsole(labels Labels, options ...Option) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	options = append([]Option{WithColor(false)}, options...)
	return NewConsole(&buf, labels, options...), &buf
}

func rgby() game.Code {
	return game.Code{game.Red, game.Green, game.Blue, game.Yellow}
}

func TestConsoleStart(t *testing.T) {
	t.Run("banner, rules and legend", func(t *testing.T) {
		c, buf := newTestConsole(BreakerLabels{})
		c.Start(engine.StartEvent{CodeLength: 4, MaxTries: 12, Palette: game.StandardPalette()})

		out := buf.String()
		require.Contains(t, out, "|  \\/  |")
		require.Contains(t, out, "Computer made a 4-piece code.")
		require.Contains(t, out, "within 12 tries")
		require.Contains(t, out, "red, green, blue, yellow, cyan, magenta, lime, pink")
		require.Contains(t, out, "Use following letters for colors:\n")
		require.Contains(t, out, "magenta")
		require.NotContains(t, out, "Enter a secret")
	})

	t.Run("codemaker intro ends with the secret invitation", func(t *testing.T) {
		c, buf := newTestConsole(MakerLabels{})
		c.Start(engine.StartEvent{CodeLength: 4, MaxTries: 12, Palette: game.StandardPalette()})

		out := buf.String()
		require.NotContains(t, out, "Enter a guess")
		greeting := strings.Index(out, "Make a 4-piece code of distinct colors.")
		rules := strings.Index(out, "Enter your code using only the first letters")
		legend := strings.Index(out, "Use following letters for colors:")
		invitation := strings.Index(out, "Enter a secret of 4 distinct colors from rgbycmlp.")
		require.True(t, greeting >= 0 && rules >= 0 && legend >= 0 && invitation >= 0, out)
		require.Less(t, greeting, rules)
		require.Less(t, rules, legend)
		require.Less(t, legend, invitation)
		require.True(t, strings.HasSuffix(out, "It stays hidden from the computer.\n"))
	})

	t.Run("without banner", func(t *testing.T) {
		c, buf := newTestConsole(MakerLabels{}, WithBanner(false))
		c.Start(engine.StartEvent{CodeLength: 4, MaxTries: 12, Palette: game.StandardPalette()})

		out := buf.String()
		require.Contains(t, out, "Make a 4-piece code")
		require.NotContains(t, out, "Use following letters")
		require.Contains(t, out, "Enter a secret of 4 distinct colors")
	})
}

func TestConsoleTurn(t *testing.T) {
	c, buf := newTestConsole(BreakerLabels{})
	first := game.TurnRecord{Turn: 1, Guess: rgby(), Score: game.Score{ColorMatches: 2, ExactMatches: 1}}
	second := game.TurnRecord{Turn: 2, Guess: game.Code{game.Cyan, game.Magenta, game.Lime, game.Pink}, Score: game.Score{ColorMatches: 2}}
	c.Turn(engine.TurnEvent{Record: second, History: []game.TurnRecord{first, second}, TriesRemaining: 10})

	out := buf.String()
	require.Contains(t, out, "rgby")
	require.Contains(t, out, "cmlp")
	require.Contains(t, out, "Turn 2: cmlp -> 2 matches 0 of them exact.")
	require.NotContains(t, out, "\x1b[", "colors are disabled")
}

func TestConsoleStatus(t *testing.T) {
	c, buf := newTestConsole(BreakerLabels{})
	c.Status(7)
	require.Equal(t, "You have 7 tries left.\n", buf.String())

	m, buf := newTestConsole(MakerLabels{})
	m.Status(3)
	require.Equal(t, "Computer has 3 tries left.\n", buf.String())
}

func TestConsoleEnd(t *testing.T) {
	tests := []struct {
		name    string
		labels  Labels
		outcome game.Outcome
		want    string
	}{
		{"breaker wins", BreakerLabels{}, game.Won, "guess the code with 8 tries left!"},
		{"breaker loses and sees secret", BreakerLabels{}, game.Lost, "The code was rgby."},
		{"computer cracks human code", MakerLabels{}, game.Won, "cracked your code on turn 5 with 8 tries left"},
		{"human code holds", MakerLabels{}, game.Lost, "Your code rgby held. You win!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestConsole(tt.labels)
			c.End(engine.EndEvent{Outcome: tt.outcome, Secret: rgby(), TriesRemaining: 8, Turns: 5})
			require.Contains(t, buf.String(), tt.want)
		})
	}

	t.Run("in progress prints nothing", func(t *testing.T) {
		c, buf := newTestConsole(BreakerLabels{})
		c.End(engine.EndEvent{Outcome: game.InProgress})
		require.Empty(t, buf.String())
	})
}

func TestConsoleRejected(t *testing.T) {
	messages := map[string]bool{}
	for _, err := range []error{
		fmt.Errorf("%w: got 3, want 4", game.ErrLengthMismatch),
		fmt.Errorf("%w: 'r'", game.ErrDuplicateColors),
		fmt.Errorf("%w: 'x'", game.ErrUnknownColor),
	} {
		c, buf := newTestConsole(BreakerLabels{})
		c.Rejected(err)
		require.NotEmpty(t, buf.String())
		messages[buf.String()] = true
	}
	require.Len(t, messages, 3, "each error kind needs its own message")

	c, buf := newTestConsole(MakerLabels{})
	c.Rejected(game.ErrDuplicateColors)
	require.Contains(t, buf.String(), "may not repeat a color")
}

func TestConsoleColors(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, BreakerLabels{}, WithColor(true))
	require.Contains(t, c.paint(rgby()), "\x1b[")
}

func TestBoardLine(t *testing.T) {
	rec := game.TurnRecord{Turn: 3, Guess: rgby(), Score: game.Score{ColorMatches: 4, ExactMatches: 2}}
	require.Equal(t, "Turn 3: rgby -> 4 matches 2 of them exact.", BoardLine(rec))
}
