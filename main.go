package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"mastermind/config"
	"mastermind/experiments"
	"mastermind/game"
	"mastermind/gamemaster"
	"mastermind/player"
	"mastermind/presenter"
)

const modeSimulate = "simulate"

func main() {
	os.Exit(run())
}

// run returns the exit code so deferred cleanup (terminal mode) happens
// before the process exits.
func run() int {
	cfg := config.Load()

	mode := flag.String("mode", cfg.Mode, "breaker (you guess), maker (computer guesses), auto or simulate")
	length := flag.Int("length", cfg.CodeLength, "Number of pegs in a code")
	tries := flag.Int("tries", cfg.MaxTries, "Number of guesses allowed")
	seed := flag.Uint64("seed", cfg.Seed, "Random seed, 0 for time-based")
	games := flag.Int("games", cfg.Games, "Games to play in simulate mode")
	out := flag.String("out", cfg.OutDir, "Directory for simulation CSV records")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	noColor := flag.Bool("no-color", !cfg.Color, "Disable colored output")
	flag.Parse()

	cfg.Mode, cfg.CodeLength, cfg.MaxTries = *mode, *length, *tries
	cfg.Seed, cfg.Games, cfg.OutDir = *seed, *games, *out
	cfg.LogLevel, cfg.Color = *logLevel, !*noColor

	setupLogging(cfg)

	rules, err := cfg.Rules()
	if err != nil {
		log.Error().Err(err).Msg("cannot start")
		return 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if cfg.Mode == modeSimulate {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return simulate(ctx, cfg, rules)
	}

	gmMode, err := gamemaster.ParseMode(cfg.Mode)
	if err != nil {
		log.Error().Err(err).Msg("cannot start")
		return 1
	}

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	var labels presenter.Labels = presenter.BreakerLabels{}
	if gmMode == gamemaster.ModeMaker {
		labels = presenter.MakerLabels{}
	}
	console := presenter.NewConsole(os.Stdout, labels, presenter.WithColor(cfg.Color && stdoutTTY))

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// A raw-mode prompt sees Ctrl-C as ErrPromptAborted. Piped input is read
	// in cooked mode and only the signal arrives, while the read stays blocked.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)
	stopWatch := watchInterrupt(sigs, func() {
		line.Close()
		fmt.Fprintln(os.Stdout, "\nGame aborted.")
		log.Error().Err(game.ErrInputAborted).Msg("interrupted")
		os.Exit(1)
	})
	defer stopWatch()

	human := player.NewHuman(line, console, player.WithMaskedSecret(stdinTTY && stdoutTTY))
	computer := player.NewComputer(game.NewSource(cfg.Seed))
	gm := gamemaster.NewGameMaster(rules, human, computer, console)

	log.Debug().Str("mode", string(gmMode)).Uint64("seed", cfg.Seed).Msg("starting game")
	if _, _, err := gm.Play(context.Background(), gmMode); err != nil {
		if errors.Is(err, game.ErrInputAborted) {
			fmt.Fprintln(os.Stdout, "\nGame aborted.")
		}
		log.Error().Err(err).Msg("game aborted")
		return 1
	}
	return 0
}

// watchInterrupt calls abort when sigs delivers. The returned stop disarms
// the watch and waits for it to finish.
func watchInterrupt(sigs <-chan os.Signal, abort func()) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-sigs:
			abort()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

func simulate(ctx context.Context, cfg *config.Config, rules game.Rules) int {
	summary, err := experiments.RunSimulation(ctx, experiments.Options{
		Games:  cfg.Games,
		Seed:   cfg.Seed,
		Rules:  rules,
		OutDir: cfg.OutDir,
	})
	if err != nil {
		log.Error().Err(err).Msg("simulation failed")
		return 1
	}
	fmt.Printf("Games: %d  breaker wins: %d  losses: %d  win rate: %.1f%%  average turns: %.2f\n",
		summary.Games, summary.BreakerWins, summary.BreakerLosses, summary.WinRate()*100, summary.AverageTurns)
	if summary.Dir != "" {
		fmt.Printf("Records written to %s\n", summary.Dir)
	}
	return 0
}

func setupLogging(cfg *config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !cfg.Color, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using warn")
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
