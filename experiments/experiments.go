package experiments

import (
	"context"
	"fmt"

	"mastermind/engine"
	"mastermind/experiments/metrics"
	"mastermind/game"
	"mastermind/gamemaster"
	"mastermind/meta"
	"mastermind/player"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Games  int
	Seed   uint64
	Rules  game.Rules
	OutDir string // CSV records are written only when set
}

type Summary struct {
	Games         int
	BreakerWins   int
	BreakerLosses int
	AverageTurns  float64
	Dir           string // where records were written, if anywhere
}

// WinRate is the share of games the random codebreaker won.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.BreakerWins) / float64(s.Games)
}

// RunSimulation plays computer-made codes against the random, non-adaptive
// computer codebreaker and aggregates the results.
func RunSimulation(ctx context.Context, opts Options) (Summary, error) {
	if opts.Games <= 0 {
		opts.Games = meta.SimulationGames
	}
	if opts.Rules == nil {
		opts.Rules = game.NewStandardRules()
	}
	if err := game.ValidateRules(opts.Rules); err != nil {
		return Summary{}, err
	}

	computer := player.NewComputer(game.NewSource(opts.Seed))
	gm := gamemaster.NewGameMaster(opts.Rules, nil, computer, nil)

	log.Info().Int("games", opts.Games).Uint64("seed", opts.Seed).Msg("starting simulation...")

	summary := Summary{Games: opts.Games}
	gameRecords := make([]metrics.GameRecord, 0, opts.Games)
	turnRecords := []metrics.TurnRecord{}
	totalTurns := 0

	for i := range opts.Games {
		gameMetric, turnMetrics, err := gm.Play(ctx, gamemaster.ModeAuto, engine.WithCollector(metrics.NewCollector()))
		if err != nil {
			return Summary{}, fmt.Errorf("simulated game %d: %w", i+1, err)
		}

		switch gameMetric.Outcome {
		case game.Won:
			summary.BreakerWins++
		case game.Lost:
			summary.BreakerLosses++
		}
		totalTurns += gameMetric.TotalTurns

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
		for _, tm := range turnMetrics {
			turnRecords = append(turnRecords, metrics.TurnRecord{Game: i + 1, TurnMetric: tm})
		}
		log.Debug().Msgf("completed game %d of %d: %s in %d turns", i+1, opts.Games, gameMetric.Outcome, gameMetric.TotalTurns)
	}
	summary.AverageTurns = float64(totalTurns) / float64(opts.Games)

	log.Info().
		Int("wins", summary.BreakerWins).
		Int("losses", summary.BreakerLosses).
		Float64("avg_turns", summary.AverageTurns).
		Msg("completed simulation")

	if opts.OutDir == "" {
		return summary, nil
	}

	w, err := metrics.NewWriter(opts.OutDir)
	if err != nil {
		return summary, err
	}
	if err := w.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	log.Info().Str("dir", w.Dir()).Msg("stored game records")
	if err := w.WriteTurnRecords(turnRecords); err != nil {
		return summary, err
	}
	log.Info().Str("dir", w.Dir()).Msg("stored turn records")
	summary.Dir = w.Dir()

	return summary, nil
}
