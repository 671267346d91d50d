package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mastermind/engine"
	"mastermind/experiments/metrics"
	"mastermind/game"

	"github.com/rs/zerolog/log"
)

// Mode decides who makes the code and who breaks it.
type Mode string

const (
	ModeBreaker Mode = "breaker" // computer makes, human breaks
	ModeMaker   Mode = "maker"   // human makes, computer breaks
	ModeAuto    Mode = "auto"    // computer on both sides
)

var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeBreaker, ModeMaker, ModeAuto:
		return m, nil
	}
	return "", fmt.Errorf("%w %q (want breaker, maker or auto)", ErrUnknownMode, s)
}

// Codemaker supplies the secret of a game.
type Codemaker interface {
	ChooseSecret(ctx context.Context, rules game.Rules) (game.Code, error)
}

// Participant can sit on either side of the board.
type Participant interface {
	Codemaker
	engine.Guesser
}

// GameMaster seats the participants for a mode and sets up the game.
type GameMaster struct {
	Rules     game.Rules
	Human     Participant
	Computer  Participant
	Presenter engine.Presenter
}

// NewGameMaster initializes a new GameMaster. human may be nil when only
// ModeAuto games are played.
func NewGameMaster(rules game.Rules, human, computer Participant, presenter engine.Presenter) *GameMaster {
	if presenter == nil {
		presenter = engine.NewDummyPresenter()
	}
	return &GameMaster{
		Rules:     rules,
		Human:     human,
		Computer:  computer,
		Presenter: presenter,
	}
}

func (gm *GameMaster) seat(mode Mode) (Codemaker, engine.Guesser, error) {
	var maker, breaker Participant
	switch mode {
	case ModeBreaker:
		maker, breaker = gm.Computer, gm.Human
	case ModeMaker:
		maker, breaker = gm.Human, gm.Computer
	case ModeAuto:
		maker, breaker = gm.Computer, gm.Computer
	default:
		return nil, nil, fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	if maker == nil || breaker == nil {
		return nil, nil, fmt.Errorf("mode %s needs both a human and a computer participant", mode)
	}
	return maker, breaker, nil
}

// NewGame introduces the game, obtains the secret from the codemaker and
// returns an engine ready to run. Invalid rules fail here, before anything
// is shown or asked for.
func (gm *GameMaster) NewGame(ctx context.Context, mode Mode, options ...engine.Option) (*engine.Engine, error) {
	if err := game.ValidateRules(gm.Rules); err != nil {
		return nil, err
	}
	maker, breaker, err := gm.seat(mode)
	if err != nil {
		return nil, err
	}

	gm.Presenter.Start(engine.StartEvent{
		CodeLength: gm.Rules.CodeLength(),
		MaxTries:   gm.Rules.MaxTries(),
		Palette:    gm.Rules.Palette(),
	})
	secret, err := maker.ChooseSecret(ctx, gm.Rules)
	if err != nil {
		return nil, fmt.Errorf("choosing secret: %w", err)
	}
	gs, err := game.NewGameState(secret, gm.Rules)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("game", gs.ID).Str("mode", string(mode)).Msg("secret chosen")

	options = append([]engine.Option{engine.WithPresenter(gm.Presenter)}, options...)
	return engine.LocalEngine(gs, breaker, options...), nil
}

// Play sets up one game for mode and runs it to the end.
func (gm *GameMaster) Play(ctx context.Context, mode Mode, options ...engine.Option) (metrics.GameMetric, []metrics.TurnMetric, error) {
	e, err := gm.NewGame(ctx, mode, options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}
