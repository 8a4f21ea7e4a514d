package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"bet-advisor/internal/config"
	"bet-advisor/internal/engine"
	"bet-advisor/internal/stats"
	"bet-advisor/internal/teams"
)

// advisor analyzes a single betting request from the command line and prints
// the result as JSON. Examples:
//
//	advisor -data ./stats "Lakers -5.5 at Celtics, I'm taking the Celtics"
//	advisor -data ./stats -bankroll 500 "take the Chiefs -3 vs the Bills"
func main() {
	dataDir := flag.String("data", "", "directory of team statistics CSV files (defaults to DATA_DIR)")
	bankroll := flag.Float64("bankroll", 0, "bankroll to size stakes against (defaults to DEFAULT_BANKROLL)")
	fraction := flag.Float64("fraction", 0, "Kelly fraction (defaults to KELLY_FRACTION)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: advisor [flags] \"betting request text\"")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.Load()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *bankroll > 0 {
		cfg.Bankroll = *bankroll
	}
	if *fraction > 0 {
		cfg.KellyFraction = *fraction
	}
	if err := config.Validate(cfg); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.AmbiguousAliasSport != "" {
		teams.SetDefaultSportPriority(cfg.AmbiguousAliasSport)
	}

	provider, err := stats.LoadCSVDir(cfg.DataDir)
	if err != nil {
		slog.Error("failed to load team statistics", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	eng := engine.New(provider, cfg)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	result, err := eng.AnalyzeText(text)
	if err != nil {
		var eerr *engine.Error
		if errors.As(err, &eerr) {
			_ = enc.Encode(eerr)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}

	if err := enc.Encode(result); err != nil {
		slog.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
}
