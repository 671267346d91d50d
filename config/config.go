package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"mastermind/game"
	"mastermind/meta"
)

// Config holds the settings of one run.
type Config struct {
	Mode       string // breaker, maker, auto or simulate
	CodeLength int
	MaxTries   int
	Seed       uint64 // 0 picks a time-based seed
	Games      int    // simulate mode only
	OutDir     string // simulate mode only; empty writes no records
	Color      bool
	LogLevel   string
}

// Defaults returns a Config with the classic game settings.
func Defaults() *Config {
	return &Config{
		Mode:       "breaker",
		CodeLength: meta.CodeLength,
		MaxTries:   meta.MaxTries,
		Games:      meta.SimulationGames,
		Color:      true,
		LogLevel:   "warn",
	}
}

// Load reads an optional .env file from the working directory, then applies
// MASTERMIND_* environment overrides. Fields not set in either source keep
// their default values.
func Load() *Config {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit env file. Variables already in the
// environment win over the file.
func LoadFrom(envFile string) *Config {
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", envFile).Msg("failed to parse env file")
	}

	cfg := Defaults()
	overrideString(&cfg.Mode, "MASTERMIND_MODE")
	overrideInt(&cfg.CodeLength, "MASTERMIND_CODE_LENGTH")
	overrideInt(&cfg.MaxTries, "MASTERMIND_MAX_TRIES")
	overrideUint(&cfg.Seed, "MASTERMIND_SEED")
	overrideInt(&cfg.Games, "MASTERMIND_GAMES")
	overrideString(&cfg.OutDir, "MASTERMIND_OUT_DIR")
	overrideBool(&cfg.Color, "MASTERMIND_COLOR")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	return cfg
}

// Rules returns the game rules described by the config, checked for
// playability.
func (c *Config) Rules() (*game.StandardRules, error) {
	rules := &game.StandardRules{
		Length: c.CodeLength,
		Tries:  c.MaxTries,
		Colors: game.StandardPalette(),
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func overrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			*field = n
		} else {
			log.Warn().Str("key", envKey).Str("value", val).Msg("invalid integer, keeping default")
		}
	}
}

func overrideUint(field *uint64, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil {
			*field = n
		} else {
			log.Warn().Str("key", envKey).Str("value", val).Msg("invalid unsigned integer, keeping default")
		}
	}
}

func overrideBool(field *bool, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*field = b
		} else {
			log.Warn().Str("key", envKey).Str("value", val).Msg("invalid boolean, keeping default")
		}
	}
}

func overrideString(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}
