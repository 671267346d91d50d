package engine

import (
	"context"
	"fmt"

	"mastermind/experiments/metrics"
	"mastermind/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	State     *game.GameState
	Guesser   Guesser
	Presenter Presenter
	Collector metrics.Collector
}

type Option func(e *Engine)

func WithPresenter(p Presenter) Option {
	return func(e *Engine) {
		e.Presenter = p
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.Collector = c
	}
}

// LocalEngine runs state against guesser in the current goroutine.
func LocalEngine(state *game.GameState, guesser Guesser, options ...Option) *Engine {
	if state == nil || guesser == nil {
		panic("engine needs a game state and a guesser")
	}
	e := &Engine{
		State:     state,
		Guesser:   guesser,
		Presenter: NewDummyPresenter(),
		Collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays turns until the game is won or lost. A failing guesser or a
// cancelled context aborts the game: the error is returned and the state
// keeps its InProgress outcome.
func (e *Engine) Run(ctx context.Context) (metrics.GameMetric, []metrics.TurnMetric, error) {
	gs := e.State
	if gs.IsOver() {
		return metrics.GameMetric{}, nil, game.ErrGameOver
	}
	rules := gs.Rules

	logger := log.With().Str("game", gs.ID).Logger()
	logger.Info().Int("length", rules.CodeLength()).Int("tries", gs.TriesRemaining).Msg("game started")

	e.Collector.Start(gs.ID)

	for !gs.CheckTryLimit() {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Int("turn", gs.Turns()+1).Msg("game cancelled")
			return metrics.GameMetric{}, nil, fmt.Errorf("game %s aborted: %w", gs.ID, err)
		}

		e.Presenter.Status(gs.TriesRemaining)
		e.Collector.StartTurn()

		guess, err := e.Guesser.NextGuess(ctx, gs.View())
		if err != nil {
			logger.Warn().Err(err).Int("turn", gs.Turns()+1).Msg("no guess, aborting game")
			return metrics.GameMetric{}, nil, fmt.Errorf("game %s aborted on turn %d: %w", gs.ID, gs.Turns()+1, err)
		}

		rec, err := gs.Play(guess)
		if err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("guesser returned unusable guess %q: %w", guess.String(), err)
		}

		logger.Debug().
			Int("turn", rec.Turn).
			Str("guess", rec.Guess.String()).
			Int("color", rec.Score.ColorMatches).
			Int("exact", rec.Score.ExactMatches).
			Int("tries_left", gs.TriesRemaining).
			Msg("turn scored")

		e.Collector.AddTurn(rec, gs.TriesRemaining)
		e.Presenter.Turn(TurnEvent{
			Record:         rec,
			History:        gs.History(),
			TriesRemaining: gs.TriesRemaining,
		})
	}

	e.Presenter.End(EndEvent{
		GameID:         gs.ID,
		Outcome:        gs.Outcome,
		Secret:         gs.Secret(),
		TriesRemaining: gs.TriesRemaining,
		Turns:          gs.Turns(),
	})
	logger.Info().Stringer("outcome", gs.Outcome).Int("turns", gs.Turns()).Msg("game over")

	gameMetric, turnMetrics := e.Collector.Complete(gs.Outcome, gs.TriesRemaining)
	return gameMetric, turnMetrics, nil
}
