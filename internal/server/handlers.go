package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bet-advisor/internal/analysis"
	"bet-advisor/internal/betlog"
	"bet-advisor/internal/config"
	"bet-advisor/internal/engine"
	"bet-advisor/internal/odds"
	"bet-advisor/internal/teams"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	engine *engine.Engine
	db     *betlog.DB
	cfg    config.Config
}

// NewHandler creates a new handler. db may be nil when bet logging is
// disabled; the bet routes then report service unavailable.
func NewHandler(eng *engine.Engine, db *betlog.DB, cfg config.Config) *Handler {
	return &Handler{engine: eng, db: db, cfg: cfg}
}

// HealthCheck returns service health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "bet-advisor",
	})
}

// AnalyzeSpread runs the point-spread pipeline on the raw request body. The
// body shape is deliberately loose; normalization handles key aliases and
// wrapper objects.
func (h *Handler) AnalyzeSpread(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	result, err := h.engine.AnalyzeSpread(raw)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// AnalyzeTotal runs the hockey total-goals pipeline.
func (h *Handler) AnalyzeTotal(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	result, err := h.engine.AnalyzeHockeyTotal(raw)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// AnalyzeText parses a natural-language betting request and analyzes it.
func (h *Handler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	result, err := h.engine.AnalyzeText(req.Text)
	if err != nil {
		respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Kelly computes a staking recommendation directly from probability and odds.
func (h *Handler) Kelly(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Bankroll    float64 `json:"bankroll"`
		Probability float64 `json:"probability"`
		Odds        int     `json:"odds"`
		Fraction    float64 `json:"fraction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Bankroll == 0 {
		req.Bankroll = h.cfg.Bankroll
	}
	if req.Odds == 0 {
		req.Odds = h.cfg.DefaultOdds
	}
	if req.Fraction == 0 {
		req.Fraction = h.cfg.KellyFraction
	}

	result, err := analysis.CalculateKellyStake(req.Bankroll, req.Probability, req.Odds, req.Fraction)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ResolveTeam resolves ?q= to a canonical team, optionally scoped by ?sport=.
func (h *Handler) ResolveTeam(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	hint := teams.Sport(r.URL.Query().Get("sport"))
	if hint != "" && !teams.ValidSport(hint) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown sport %q", hint))
		return
	}

	res, err := teams.Resolve(q, hint)
	if err != nil {
		var nf *teams.NotFoundError
		if errors.As(err, &nf) {
			respondJSON(w, http.StatusNotFound, map[string]any{
				"error":       string(engine.ErrTeamNotFound),
				"message":     nf.Error(),
				"suggestions": nf.Suggestions,
			})
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ConvertOdds converts ?american= or ?decimal= into every supported format.
func (h *Handler) ConvertOdds(w http.ResponseWriter, r *http.Request) {
	var american int
	var decimal float64

	switch {
	case r.URL.Query().Get("american") != "":
		if _, err := fmt.Sscanf(r.URL.Query().Get("american"), "%d", &american); err != nil {
			respondError(w, http.StatusBadRequest, "american must be an integer")
			return
		}
		var err error
		decimal, err = odds.AmericanToDecimal(american)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	case r.URL.Query().Get("decimal") != "":
		if _, err := fmt.Sscanf(r.URL.Query().Get("decimal"), "%g", &decimal); err != nil {
			respondError(w, http.StatusBadRequest, "decimal must be a number")
			return
		}
		var err error
		american, err = odds.DecimalToAmerican(decimal)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	default:
		respondError(w, http.StatusBadRequest, "american or decimal query parameter is required")
		return
	}

	implied, err := odds.ImpliedProbability(american)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	frac, err := odds.DecimalToFractional(decimal)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"american":            american,
		"decimal":             decimal,
		"fractional":          frac.String(),
		"implied_probability": implied,
	})
}

// LogBet records a pending bet for a user.
func (h *Handler) LogBet(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "bet logging is disabled")
		return
	}
	var bet betlog.Bet
	if err := json.NewDecoder(r.Body).Decode(&bet); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if bet.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	id, err := h.db.AddBet(bet)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListBets returns a user's bet history.
func (h *Handler) ListBets(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "bet logging is disabled")
		return
	}
	user := r.URL.Query().Get("user")
	if user == "" {
		respondError(w, http.StatusBadRequest, "query parameter user is required")
		return
	}
	bets, err := h.db.ListBets(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, bets)
}

// SettleBet transitions a pending bet to its final status.
func (h *Handler) SettleBet(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "bet logging is disabled")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.db.SettleBet(id, req.Status); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

// Deposit credits funds to a user's bankroll.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "bet logging is disabled")
		return
	}
	var req struct {
		UserID string  `json:"user_id"`
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	txn, err := h.db.Deposit(req.UserID, req.Amount)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, txn)
}

// Bankroll returns a user's current balance and transaction history.
func (h *Handler) Bankroll(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "bet logging is disabled")
		return
	}
	user := r.URL.Query().Get("user")
	if user == "" {
		respondError(w, http.StatusBadRequest, "query parameter user is required")
		return
	}
	balance, err := h.db.Bankroll(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	txns, err := h.db.ListTransactions(user)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"user":         user,
		"balance":      balance,
		"transactions": txns,
	})
}

// respondEngineError maps the typed taxonomy onto HTTP statuses and writes
// the structured error as the body so callers can react programmatically.
func respondEngineError(w http.ResponseWriter, err error) {
	var eerr *engine.Error
	if !errors.As(err, &eerr) {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusBadRequest
	switch eerr.Code {
	case engine.ErrTeamNotFound:
		status = http.StatusNotFound
	case engine.ErrInsufficientData:
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, eerr)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
