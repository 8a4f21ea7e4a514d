package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bet-advisor/internal/betlog"
	"bet-advisor/internal/config"
	"bet-advisor/internal/engine"
	"bet-advisor/internal/server"
	"bet-advisor/internal/stats"
	"bet-advisor/internal/teams"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Load()
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

	var db *betlog.DB
	if cfg.DBPath != "" {
		db, err = betlog.Open(cfg.DBPath)
		if err != nil {
			slog.Error("failed to open bet log", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	eng := engine.New(provider, cfg)
	h := server.NewHandler(eng, db, cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze/spread", h.AnalyzeSpread)
		r.Post("/analyze/total", h.AnalyzeTotal)
		r.Post("/analyze/text", h.AnalyzeText)
		r.Post("/kelly", h.Kelly)
		r.Get("/teams/resolve", h.ResolveTeam)
		r.Get("/odds/convert", h.ConvertOdds)
		r.Post("/bets", h.LogBet)
		r.Get("/bets", h.ListBets)
		r.Post("/bets/{id}/settle", h.SettleBet)
		r.Get("/bankroll", h.Bankroll)
		r.Post("/bankroll/deposit", h.Deposit)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("bet advisor started",
			"port", cfg.Port,
			"bankroll", cfg.Bankroll,
			"kelly_fraction", cfg.KellyFraction,
			"default_odds", cfg.DefaultOdds)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("stopped")
}
