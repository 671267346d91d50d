package presenter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"mastermind/engine"
	"mastermind/game"
)

const logo = `
 __  __    _    ____ _____ _____ ____  __  __ ___ _   _ ____
|  \/  |  / \  / ___|_   _| ____|  _ \|  \/  |_ _| \ | |  _ \
| |\/| | / _ \ \___ \ | | |  _| | |_) | |\/| || ||  \| | | | |
| |  | |/ ___ \ ___) || | | |___|  _ <| |  | || || |\  | |_| |
|_|  |_/_/   \_\____/ |_| |_____|_| \_\_|  |_|___|_| \_|____/
`

var letterAttributes = map[game.Color]color.Attribute{
	game.Red:     color.FgRed,
	game.Green:   color.FgGreen,
	game.Blue:    color.FgBlue,
	game.Yellow:  color.FgYellow,
	game.Cyan:    color.FgCyan,
	game.Magenta: color.FgMagenta,
	game.Lime:    color.FgHiGreen,
	game.Pink:    color.FgHiMagenta,
}

// Console writes a game to a terminal.
type Console struct {
	out     io.Writer
	labels  Labels
	colored bool
	banner  bool

	header, info, good, bad, warn *color.Color
}

type Option func(c *Console)

// WithColor switches ANSI colors on or off.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.colored = enabled
	}
}

// WithBanner controls the logo, rules and color legend shown at start.
func WithBanner(enabled bool) Option {
	return func(c *Console) {
		c.banner = enabled
	}
}

func NewConsole(out io.Writer, labels Labels, options ...Option) *Console {
	c := &Console{
		out:     out,
		labels:  labels,
		colored: true,
		banner:  true,
	}
	for _, option := range options {
		option(c)
	}
	c.header = c.newColor(color.FgWhite, color.Bold)
	c.info = c.newColor(color.FgCyan)
	c.good = c.newColor(color.FgGreen, color.Bold)
	c.bad = c.newColor(color.FgRed, color.Bold)
	c.warn = c.newColor(color.FgHiYellow)
	return c
}

func (c *Console) newColor(attrs ...color.Attribute) *color.Color {
	col := color.New(attrs...)
	if c.colored {
		col.EnableColor()
	} else {
		col.DisableColor()
	}
	return col
}

func (c *Console) Start(ev engine.StartEvent) {
	if c.banner {
		fmt.Fprintln(c.out, c.header.Sprint(logo))
	}
	for _, line := range c.labels.Greeting(ev.CodeLength, ev.MaxTries) {
		fmt.Fprintln(c.out, line)
	}
	if c.banner {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, c.labels.Rules(ev.CodeLength, ev.MaxTries, colorNames(ev.Palette)))
		c.legend(ev.Palette)
	}
	// last, so the invitation sits right above the prompt
	for _, line := range c.labels.Invitation(ev.CodeLength, ev.Palette) {
		c.header.Fprintln(c.out, line)
	}
}

func (c *Console) Status(triesRemaining int) {
	c.info.Fprintln(c.out, c.labels.Status(triesRemaining))
}

// Turn redraws the whole board, one row per scored guess.
func (c *Console) Turn(ev engine.TurnEvent) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Turn", "Guess", "Matches", "Exact"})
	for _, rec := range ev.History {
		t.AppendRow(table.Row{rec.Turn, c.paint(rec.Guess), rec.Score.ColorMatches, rec.Score.ExactMatches})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Fprintln(c.out, BoardLine(ev.Record))
}

func (c *Console) End(ev engine.EndEvent) {
	switch ev.Outcome {
	case game.Won:
		c.notice(c.labels.Won(ev), c.winnerColor(true))
	case game.Lost:
		c.notice(c.labels.Lost(ev), c.winnerColor(false))
	}
}

// Rejected explains why an entry was turned down. Each validation error kind
// gets its own message.
func (c *Console) Rejected(err error) {
	var msg string
	switch {
	case errors.Is(err, game.ErrLengthMismatch):
		msg = "Make sure you entered correct number of letters."
	case errors.Is(err, game.ErrDuplicateColors):
		msg = c.labels.DuplicateHint()
	case errors.Is(err, game.ErrUnknownColor):
		msg = "Use only first letters of related colors."
	default:
		msg = fmt.Sprintf("Entry rejected: %v", err)
	}
	c.warn.Fprintln(c.out, msg)
}

// winnerColor picks green when the human came out ahead. A breaker win is
// only the human's win when the human is the breaker.
func (c *Console) winnerColor(breakerWon bool) *color.Color {
	_, humanMakes := c.labels.(MakerLabels)
	if breakerWon != humanMakes {
		return c.good
	}
	return c.bad
}

func (c *Console) notice(lines []string, col *color.Color) {
	for _, line := range lines {
		col.Fprintln(c.out, line)
	}
}

func (c *Console) legend(palette game.Palette) {
	fmt.Fprintln(c.out)
	c.header.Fprintln(c.out, "Use following letters for colors:")
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.AppendHeader(table.Row{"Letter", "Color"})
	for _, col := range palette {
		t.AppendRow(table.Row{c.paint(game.Code{col}), col.Name()})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *Console) paint(code game.Code) string {
	var sb strings.Builder
	for _, col := range code {
		attr, ok := letterAttributes[col]
		if !ok {
			sb.WriteString(col.Letter())
			continue
		}
		sb.WriteString(c.newColor(attr, color.Bold).Sprint(col.Letter()))
	}
	return sb.String()
}

// BoardLine is the one-line summary of a turn.
func BoardLine(rec game.TurnRecord) string {
	return fmt.Sprintf("Turn %d: %s -> %d matches %d of them exact.",
		rec.Turn, rec.Guess, rec.Score.ColorMatches, rec.Score.ExactMatches)
}

func colorNames(palette game.Palette) string {
	names := make([]string, len(palette))
	for i, col := range palette {
		names[i] = col.Name()
	}
	return strings.Join(names, ", ")
}

var _ engine.Presenter = (*Console)(nil)
