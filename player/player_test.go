package player

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"mastermind/game"
)

type scriptedReader struct {
	lines    []string
	prompts  []string
	masked   int
	history  []string
	finalErr error
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.lines) == 0 {
		if r.finalErr != nil {
			return "", r.finalErr
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) PasswordPrompt(prompt string) (string, error) {
	r.masked++
	return r.Prompt(prompt)
}

func (r *scriptedReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

type recordingFeedback struct {
	errs []error
}

func (f *recordingFeedback) Rejected(err error) {
	f.errs = append(f.errs, err)
}

func standardView() game.View {
	return game.View{Rules: game.NewStandardRules(), TriesRemaining: 12}
}

func TestHumanNextGuess(t *testing.T) {
	t.Run("reprompts until a valid guess", func(t *testing.T) {
		reader := &scriptedReader{lines: []string{"rgb", "rgbr", "rgbx", "RGBY"}}
		feedback := &recordingFeedback{}
		h := NewHuman(reader, feedback)

		got, err := h.NextGuess(context.Background(), standardView())
		require.NoError(t, err)
		require.Equal(t, "rgby", got.String())

		require.Len(t, feedback.errs, 3)
		require.ErrorIs(t, feedback.errs[0], game.ErrLengthMismatch)
		require.ErrorIs(t, feedback.errs[1], game.ErrDuplicateColors)
		require.ErrorIs(t, feedback.errs[2], game.ErrUnknownColor)
		require.Equal(t, 3, h.Rejected())

		require.Equal(t, []string{"> ", "> ", "> ", "> "}, reader.prompts)
		require.Equal(t, []string{"rgby"}, reader.history)
	})

	t.Run("end of input aborts", func(t *testing.T) {
		reader := &scriptedReader{lines: []string{"rg"}}
		h := NewHuman(reader, nil)

		_, err := h.NextGuess(context.Background(), standardView())
		require.ErrorIs(t, err, game.ErrInputAborted)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 1, h.Rejected())
	})

	t.Run("any read failure aborts", func(t *testing.T) {
		readErr := errors.New("terminal gone")
		h := NewHuman(&scriptedReader{finalErr: readErr}, nil)

		_, err := h.NextGuess(context.Background(), standardView())
		require.ErrorIs(t, err, game.ErrInputAborted)
		require.ErrorIs(t, err, readErr)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		reader := &scriptedReader{lines: []string{"rgby"}}

		_, err := NewHuman(reader, nil).NextGuess(ctx, standardView())
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, reader.prompts)
	})

	t.Run("custom prompt", func(t *testing.T) {
		reader := &scriptedReader{lines: []string{"cmlp"}}
		_, err := NewHuman(reader, nil, WithPrompt("guess: ")).NextGuess(context.Background(), standardView())
		require.NoError(t, err)
		require.Equal(t, []string{"guess: "}, reader.prompts)
	})
}

func TestHumanChooseSecret(t *testing.T) {
	t.Run("masked when asked", func(t *testing.T) {
		reader := &scriptedReader{lines: []string{"pp", "plcm"}}
		feedback := &recordingFeedback{}
		h := NewHuman(reader, feedback, WithMaskedSecret(true))

		got, err := h.ChooseSecret(context.Background(), game.NewStandardRules())
		require.NoError(t, err)
		require.Equal(t, "plcm", got.String())
		require.Equal(t, 2, reader.masked)
		require.Len(t, feedback.errs, 1)
		require.Empty(t, reader.history, "secrets never go to history")
	})

	t.Run("plain prompt by default", func(t *testing.T) {
		reader := &scriptedReader{lines: []string{"plcm"}}
		_, err := NewHuman(reader, nil).ChooseSecret(context.Background(), game.NewStandardRules())
		require.NoError(t, err)
		require.Zero(t, reader.masked)
	})
}

func TestComputer(t *testing.T) {
	t.Run("guesses are valid and fresh", func(t *testing.T) {
		c := NewComputer(game.NewSource(5))
		view := standardView()
		distinct := map[string]bool{}
		for range 50 {
			guess, err := c.NextGuess(context.Background(), view)
			require.NoError(t, err)
			require.NoError(t, game.ValidateCode(guess, 4, game.StandardPalette()))
			distinct[guess.String()] = true
		}
		require.Greater(t, len(distinct), 1)
	})

	t.Run("secret follows the rules", func(t *testing.T) {
		rules := &game.StandardRules{Length: 6, Tries: 10, Colors: game.StandardPalette()}
		secret, err := NewComputer(game.NewSource(5)).ChooseSecret(context.Background(), rules)
		require.NoError(t, err)
		require.Len(t, secret, 6)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := NewComputer(nil).NextGuess(context.Background(), standardView())
		require.Error(t, err)
	})

	t.Run("impossible rules", func(t *testing.T) {
		rules := &game.StandardRules{Length: 9, Tries: 10, Colors: game.StandardPalette()}
		_, err := NewComputer(game.NewSource(5)).ChooseSecret(context.Background(), rules)
		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})
}
