package player

import (
	"context"
	"errors"
	"fmt"

	"mastermind/game"

	"github.com/rs/zerolog/log"
)

const DefaultPrompt = "> "

// LineReader reads one line of operator input. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// secretReader reads a line without echoing it.
type secretReader interface {
	PasswordPrompt(prompt string) (string, error)
}

type historyAppender interface {
	AppendHistory(item string)
}

// Feedback is told about every rejected entry so the operator can be told
// what was wrong with it.
type Feedback interface {
	Rejected(err error)
}

// Human is a participant typing codes at a console. It can break codes
// (NextGuess) or make them (ChooseSecret).
type Human struct {
	reader   LineReader
	feedback Feedback
	prompt   string
	masked   bool
	rejected int
}

type Option func(h *Human)

func WithPrompt(prompt string) Option {
	return func(h *Human) {
		h.prompt = prompt
	}
}

// WithMaskedSecret hides the secret while it is typed, when the reader can.
func WithMaskedSecret(masked bool) Option {
	return func(h *Human) {
		h.masked = masked
	}
}

func NewHuman(reader LineReader, feedback Feedback, options ...Option) *Human {
	h := &Human{
		reader:   reader,
		feedback: feedback,
		prompt:   DefaultPrompt,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

// NextGuess reads lines until one is a valid guess under the game's rules.
// Rejected lines do not count as turns.
func (h *Human) NextGuess(ctx context.Context, view game.View) (game.Code, error) {
	code, err := h.readCode(ctx, view.Rules, h.reader.Prompt)
	if err != nil {
		return nil, err
	}
	if ha, ok := h.reader.(historyAppender); ok {
		ha.AppendHistory(code.String())
	}
	return code, nil
}

// ChooseSecret reads lines until one is a valid secret.
func (h *Human) ChooseSecret(ctx context.Context, rules game.Rules) (game.Code, error) {
	read := h.reader.Prompt
	if sr, ok := h.reader.(secretReader); ok && h.masked {
		read = sr.PasswordPrompt
	}
	return h.readCode(ctx, rules, read)
}

// Rejected returns how many entries were turned down so far.
func (h *Human) Rejected() int {
	return h.rejected
}

func (h *Human) readCode(ctx context.Context, rules game.Rules, read func(string) (string, error)) (game.Code, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := read(h.prompt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", game.ErrInputAborted, err)
		}
		code, err := game.ParseCode(line, rules.CodeLength(), rules.Palette())
		if err == nil {
			return code, nil
		}
		if !game.IsValidationError(err) {
			return nil, err
		}
		h.rejected++
		log.Debug().Err(err).Msg("entry rejected")
		if h.feedback != nil {
			h.feedback.Rejected(err)
		}
	}
}

// errNoEntropy guards against a nil source.
var errNoEntropy = errors.New("computer player has no randomness source")

// Computer picks codes uniformly at random. As a codebreaker it ignores the
// score history entirely.
type Computer struct {
	src game.Source
}

func NewComputer(src game.Source) *Computer {
	return &Computer{src: src}
}

func (c *Computer) NextGuess(_ context.Context, view game.View) (game.Code, error) {
	return c.randomCode(view.Rules)
}

func (c *Computer) ChooseSecret(_ context.Context, rules game.Rules) (game.Code, error) {
	return c.randomCode(rules)
}

func (c *Computer) randomCode(rules game.Rules) (game.Code, error) {
	if c.src == nil {
		return nil, errNoEntropy
	}
	return game.GenerateCode(c.src, rules.CodeLength(), rules.Palette())
}
