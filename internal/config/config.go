package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"bet-advisor/internal/teams"
)

// Defaults for configuration values.
const (
	DefaultPort          = "8080"
	DefaultDBPath        = "/data/bets.db"
	DefaultDataDir       = "/data/stats"
	DefaultBankroll      = 1000.0
	DefaultKellyFraction = 0.25
	// DefaultOdds is the American odds assumed when a request carries none;
	// -110 is the standard spread juice.
	DefaultOdds = -110
)

// Config holds all application configuration.
type Config struct {
	Port          string
	DBPath        string
	DataDir       string
	Bankroll      float64
	KellyFraction float64
	DefaultOdds   int

	// AmbiguousAliasSport is the sport partition searched first when a team
	// alias collides across leagues and the caller gives no hint. Empty
	// keeps the built-in basketball-first ordering.
	AmbiguousAliasSport teams.Sport
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		Port:          DefaultPort,
		DBPath:        DefaultDBPath,
		DataDir:       DefaultDataDir,
		Bankroll:      DefaultBankroll,
		KellyFraction: DefaultKellyFraction,
		DefaultOdds:   DefaultOdds,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("DEFAULT_BANKROLL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Bankroll = f
		}
	}
	if v := os.Getenv("KELLY_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.KellyFraction = f
		}
	}
	if v := os.Getenv("DEFAULT_ODDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DefaultOdds = n
		}
	}
	if v := os.Getenv("AMBIGUOUS_ALIAS_SPORT"); v != "" {
		cfg.AmbiguousAliasSport = teams.Sport(v)
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	if cfg.Bankroll <= 0 {
		return fmt.Errorf("DEFAULT_BANKROLL must be positive, got %f", cfg.Bankroll)
	}
	if cfg.KellyFraction <= 0 || cfg.KellyFraction > 1 {
		return fmt.Errorf("KELLY_FRACTION must be between 0 and 1, got %f", cfg.KellyFraction)
	}
	if cfg.DefaultOdds > -100 && cfg.DefaultOdds < 100 {
		return fmt.Errorf("DEFAULT_ODDS must be a valid American odds quote, got %d", cfg.DefaultOdds)
	}
	if cfg.AmbiguousAliasSport != "" && !teams.ValidSport(cfg.AmbiguousAliasSport) {
		return fmt.Errorf("AMBIGUOUS_ALIAS_SPORT must be one of basketball, football, hockey; got %q", cfg.AmbiguousAliasSport)
	}
	return nil
}
