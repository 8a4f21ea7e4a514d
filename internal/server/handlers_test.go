package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bet-advisor/internal/config"
	"bet-advisor/internal/engine"
	"bet-advisor/internal/model"
	"bet-advisor/internal/stats"
)

func fp(v float64) *float64 { return &v }

func newTestHandler() *Handler {
	p := stats.NewStaticProvider()
	p.PutBasketball(model.BasketballStats{
		Team: "Los Angeles Lakers", PointsPerGame: fp(115), PointsAllowed: fp(105),
		FieldGoalPct: fp(48), ReboundMargin: fp(3), TurnoverMargin: fp(1.5),
	})
	p.PutBasketball(model.BasketballStats{
		Team: "Boston Celtics", PointsPerGame: fp(112), PointsAllowed: fp(107),
		FieldGoalPct: fp(47), ReboundMargin: fp(1), TurnoverMargin: fp(0.5),
	})

	cfg := config.Config{Bankroll: 1000, KellyFraction: 0.25, DefaultOdds: -110}
	return NewHandler(engine.New(p, cfg), nil, cfg)
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.HealthCheck(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q, want healthy", body["status"])
	}
}

func TestAnalyzeSpreadHandler(t *testing.T) {
	h := newTestHandler()
	body := `{"favorite": "Lakers", "underdog": "Celtics", "spread": -5.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/spread", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.AnalyzeSpread(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var result struct {
		Sport       string `json:"sport"`
		Probability struct {
			Favorite float64 `json:"favorite_cover_probability"`
			Underdog float64 `json:"underdog_cover_probability"`
		} `json:"probability"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.Sport != "basketball" {
		t.Errorf("sport = %q, want basketball", result.Sport)
	}
	if sum := result.Probability.Favorite + result.Probability.Underdog; sum < 0.999 || sum > 1.001 {
		t.Errorf("probabilities sum to %v, want 1.00", sum)
	}
}

func TestAnalyzeSpreadHandlerErrors(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Unknown team",
			body:       `{"favorite": "Lakurs", "underdog": "Celtics", "spread": -5.5}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "team_not_found",
		},
		{
			name:       "Missing fields",
			body:       `{"favorite": "Lakers"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_input",
		},
		{
			name:       "Team without stats",
			body:       `{"favorite": "Knicks", "underdog": "Celtics", "spread": -5.5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "insufficient_data",
		},
		{
			name:       "Not JSON",
			body:       `not json at all`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/spread", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.AnalyzeSpread(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode == "" {
				return
			}
			var body struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if body.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error, tt.wantCode)
			}
		})
	}
}

func TestAnalyzeTextHandler(t *testing.T) {
	h := newTestHandler()
	body := `{"text": "Lakers -5.5 at Celtics, I'm taking the Celtics"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/text", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.AnalyzeText(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/analyze/text", strings.NewReader(`{"text": ""}`))
	w = httptest.NewRecorder()
	h.AnalyzeText(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", w.Code)
	}
}

func TestKellyHandler(t *testing.T) {
	h := newTestHandler()
	body := `{"bankroll": 1000, "probability": 55, "odds": -110, "fraction": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/kelly", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Kelly(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var result struct {
		RecommendedStake float64 `json:"recommended_stake"`
		HasValue         bool    `json:"has_value"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !result.HasValue {
		t.Error("55% at -110 should have value")
	}
	if result.RecommendedStake != 55.0 {
		t.Errorf("RecommendedStake = %v, want 55.0", result.RecommendedStake)
	}
}

// Zero-valued staking fields fall back to the configured defaults.
func TestKellyHandlerDefaults(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/kelly", strings.NewReader(`{"probability": 55}`))
	w := httptest.NewRecorder()

	h.Kelly(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var result struct {
		RecommendedStake float64 `json:"recommended_stake"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	// 1000 bankroll, -110, quarter Kelly.
	if result.RecommendedStake != 13.75 {
		t.Errorf("RecommendedStake = %v, want 13.75", result.RecommendedStake)
	}
}

func TestResolveTeamHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/resolve?q=lakers", nil)
	w := httptest.NewRecorder()
	h.ResolveTeam(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var res struct {
		Team struct {
			Name string `json:"name"`
		} `json:"team"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Team.Name != "Los Angeles Lakers" {
		t.Errorf("team = %q, want Los Angeles Lakers", res.Team.Name)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/teams/resolve?q=wombats", nil)
	w = httptest.NewRecorder()
	h.ResolveTeam(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown team status = %d, want 404", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/teams/resolve", nil)
	w = httptest.NewRecorder()
	h.ResolveTeam(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing q status = %d, want 400", w.Code)
	}
}

func TestConvertOddsHandler(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert?american=-110", nil)
	w := httptest.NewRecorder()
	h.ConvertOdds(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var res struct {
		American   int     `json:"american"`
		Decimal    float64 `json:"decimal"`
		Fractional string  `json:"fractional"`
		Implied    float64 `json:"implied_probability"`
	}
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.American != -110 {
		t.Errorf("american = %d, want -110", res.American)
	}
	if res.Decimal < 1.90 || res.Decimal > 1.92 {
		t.Errorf("decimal = %v, want about 1.909", res.Decimal)
	}
	if res.Implied < 52.3 || res.Implied > 52.5 {
		t.Errorf("implied = %v, want about 52.38", res.Implied)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert?american=-50", nil)
	w = httptest.NewRecorder()
	h.ConvertOdds(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid odds status = %d, want 400", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/odds/convert", nil)
	w = httptest.NewRecorder()
	h.ConvertOdds(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("no parameters status = %d, want 400", w.Code)
	}
}

// Bet routes degrade cleanly when no database is configured.
func TestBetRoutesWithoutDB(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bets", strings.NewReader(`{"user_id":"alice"}`))
	w := httptest.NewRecorder()
	h.LogBet(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("LogBet status = %d, want 503", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/bets?user=alice", nil)
	w = httptest.NewRecorder()
	h.ListBets(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("ListBets status = %d, want 503", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/bankroll/deposit", strings.NewReader(`{"user_id":"alice","amount":100}`))
	w = httptest.NewRecorder()
	h.Deposit(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Deposit status = %d, want 503", w.Code)
	}
}
