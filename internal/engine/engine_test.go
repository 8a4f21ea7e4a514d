package engine

import (
	"errors"
	"math"
	"testing"

	"bet-advisor/internal/config"
	"bet-advisor/internal/model"
	"bet-advisor/internal/stats"
)

func fp(v float64) *float64 { return &v }

func testConfig() config.Config {
	return config.Config{
		Bankroll:      1000,
		KellyFraction: 0.25,
		DefaultOdds:   -110,
	}
}

func testProvider() *stats.StaticProvider {
	p := stats.NewStaticProvider()
	p.PutBasketball(model.BasketballStats{
		Team: "Los Angeles Lakers", PointsPerGame: fp(115), PointsAllowed: fp(105),
		FieldGoalPct: fp(48), ReboundMargin: fp(3), TurnoverMargin: fp(1.5),
	})
	p.PutBasketball(model.BasketballStats{
		Team: "Boston Celtics", PointsPerGame: fp(112), PointsAllowed: fp(107),
		FieldGoalPct: fp(47), ReboundMargin: fp(1), TurnoverMargin: fp(0.5),
	})
	p.PutFootball(model.FootballStats{
		Team: "Kansas City Chiefs", PointsPerGame: fp(27), PointsAllowed: fp(20),
		OffensiveYards: fp(375), DefensiveYards: fp(325), TurnoverDiff: fp(8),
	})
	p.PutFootball(model.FootballStats{
		Team: "Buffalo Bills", PointsPerGame: fp(24), PointsAllowed: fp(21),
		OffensiveYards: fp(360), DefensiveYards: fp(340), TurnoverDiff: fp(3),
	})
	p.PutHockey(model.HockeyStats{
		Team: "Edmonton Oilers", XGF60: fp(3.4), XGA60: fp(2.9), GSAx60: fp(0.1),
		HDCF60: fp(13.5), PP: fp(26), PK: fp(79), TimesShorthandedPerGame: fp(3.1),
	})
	p.PutHockey(model.HockeyStats{
		Team: "Calgary Flames", XGF60: fp(2.9), XGA60: fp(3.1), GSAx60: fp(-0.1),
		HDCF60: fp(11.0), PP: fp(18), PK: fp(77), TimesShorthandedPerGame: fp(3.4),
	})
	return p
}

func newTestEngine() *Engine {
	return New(testProvider(), testConfig())
}

func TestAnalyzeSpread(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.AnalyzeSpread(map[string]any{
		"favorite": "Lakers",
		"underdog": "Celtics",
		"spread":   -5.5,
	})
	if err != nil {
		t.Fatalf("AnalyzeSpread unexpected error: %v", err)
	}

	if result.Favorite.Name != "Los Angeles Lakers" {
		t.Errorf("Favorite = %q, want Los Angeles Lakers", result.Favorite.Name)
	}
	if result.Underdog.Name != "Boston Celtics" {
		t.Errorf("Underdog = %q, want Boston Celtics", result.Underdog.Name)
	}
	if result.Sport != "basketball" {
		t.Errorf("Sport = %q, want basketball", result.Sport)
	}

	fav := result.Probability.FavoriteCoverProbability
	dog := result.Probability.UnderdogCoverProbability
	if fav <= 0 || fav >= 1 {
		t.Errorf("favorite probability %v outside (0, 1)", fav)
	}
	if math.Abs(fav+dog-1.00) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1.00", fav+dog)
	}
	if result.Odds != -110 {
		t.Errorf("Odds = %d, want configured default -110", result.Odds)
	}
	if result.Probability.Sigma != model.SigmaBasketball {
		t.Errorf("Sigma = %v, want %v", result.Probability.Sigma, model.SigmaBasketball)
	}
}

func TestAnalyzeSpreadStakingOverrides(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.AnalyzeSpread(map[string]any{
		"favorite": "Chiefs",
		"underdog": "Bills",
		"spread":   -3.0,
		"odds":     -120,
		"bankroll": 500,
	})
	if err != nil {
		t.Fatalf("AnalyzeSpread unexpected error: %v", err)
	}
	if result.Sport != "football" {
		t.Errorf("Sport = %q, want football", result.Sport)
	}
	if result.Odds != -120 {
		t.Errorf("Odds = %d, want override -120", result.Odds)
	}
	if result.Kelly.HasValue && result.Kelly.RecommendedStake > 500 {
		t.Errorf("stake %v exceeds the supplied bankroll", result.Kelly.RecommendedStake)
	}
}

func TestAnalyzeSpreadErrors(t *testing.T) {
	eng := newTestEngine()

	tests := []struct {
		name     string
		raw      any
		wantCode ErrorCode
	}{
		{
			name:     "Missing fields",
			raw:      map[string]any{"favorite": "Lakers"},
			wantCode: ErrInvalidInput,
		},
		{
			name: "Unknown team with suggestions",
			raw: map[string]any{
				"favorite": "Lakurs", "underdog": "Celtics", "spread": -5.5,
			},
			wantCode: ErrTeamNotFound,
		},
		{
			name: "Positive spread",
			raw: map[string]any{
				"favorite": "Lakers", "underdog": "Celtics", "spread": 5.5,
			},
			wantCode: ErrInvalidInput,
		},
		{
			name: "Same team twice",
			raw: map[string]any{
				"favorite": "Lakers", "underdog": "LAL", "spread": -5.5,
			},
			wantCode: ErrInvalidInput,
		},
		{
			name: "Cross-sport pair",
			raw: map[string]any{
				"favorite": "Lakers", "underdog": "Bills", "spread": -5.5,
			},
			wantCode: ErrInvalidInput,
		},
		{
			name: "Unknown sport value",
			raw: map[string]any{
				"favorite": "Lakers", "underdog": "Celtics", "spread": -5.5, "sport": "cricket",
			},
			wantCode: ErrInvalidInput,
		},
		{
			name: "No stats loaded for team",
			raw: map[string]any{
				"favorite": "Knicks", "underdog": "Celtics", "spread": -5.5,
			},
			wantCode: ErrInsufficientData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.AnalyzeSpread(tt.raw)
			var eerr *Error
			if !errors.As(err, &eerr) {
				t.Fatalf("expected engine error, got %v", err)
			}
			if eerr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", eerr.Code, tt.wantCode)
			}
		})
	}
}

func TestAnalyzeSpreadNotFoundSuggestions(t *testing.T) {
	eng := newTestEngine()
	_, err := eng.AnalyzeSpread(map[string]any{
		"favorite": "Lakurs", "underdog": "Celtics", "spread": -5.5,
	})
	var eerr *Error
	if !errors.As(err, &eerr) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if len(eerr.Suggestions) == 0 {
		t.Error("team_not_found must carry suggestions")
	}
	if len(eerr.Suggestions) > 5 {
		t.Errorf("got %d suggestions, want at most 5", len(eerr.Suggestions))
	}
}

func TestAnalyzeHockeyTotal(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.AnalyzeHockeyTotal(map[string]any{
		"team_a": "Oilers",
		"team_b": "Flames",
		"line":   6.5,
	})
	if err != nil {
		t.Fatalf("AnalyzeHockeyTotal unexpected error: %v", err)
	}
	if result.TeamA.Name != "Edmonton Oilers" || result.TeamB.Name != "Calgary Flames" {
		t.Errorf("teams = %q, %q", result.TeamA.Name, result.TeamB.Name)
	}
	if result.Projection.ProjectedTotal <= 0 {
		t.Errorf("ProjectedTotal = %v, want positive", result.Projection.ProjectedTotal)
	}
	if math.Abs(result.OverProbability+result.UnderProbability-1.00) > 1e-9 {
		t.Errorf("over %v + under %v != 1.00", result.OverProbability, result.UnderProbability)
	}
}

func TestAnalyzeHockeyTotalErrors(t *testing.T) {
	eng := newTestEngine()

	_, err := eng.AnalyzeHockeyTotal(map[string]any{"team_a": "Oilers"})
	var eerr *Error
	if !errors.As(err, &eerr) || eerr.Code != ErrInvalidInput {
		t.Errorf("missing fields: got %v, want invalid_input", err)
	}

	_, err = eng.AnalyzeHockeyTotal(map[string]any{
		"team_a": "Rangers", "team_b": "Flames", "line": 6.5,
	})
	if !errors.As(err, &eerr) || eerr.Code != ErrInsufficientData {
		t.Errorf("unloaded team: got %v, want insufficient_data", err)
	}
}

func TestAnalyzeText(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.AnalyzeText("Lakers -5.5 at Celtics, I'm taking the Celtics")
	if err != nil {
		t.Fatalf("AnalyzeText unexpected error: %v", err)
	}

	if result.Parsed.Pick.Name != "Boston Celtics" {
		t.Errorf("Pick = %q, want Boston Celtics", result.Parsed.Pick.Name)
	}
	if result.Analysis.Favorite.Name != "Los Angeles Lakers" {
		t.Errorf("Favorite = %q, want Los Angeles Lakers", result.Analysis.Favorite.Name)
	}
	if result.Analysis.Spread != -5.5 {
		t.Errorf("favorite spread = %v, want -5.5", result.Analysis.Spread)
	}

	// The pick is the underdog, so its cover probability is the complement.
	want := 1.00 - result.Analysis.Probability.FavoriteCoverProbability
	if math.Abs(result.PickCoverProbability-want) > 0.011 {
		t.Errorf("PickCoverProbability = %v, want about %v", result.PickCoverProbability, want)
	}
	if result.Analysis.Odds != -110 {
		t.Errorf("Odds = %d, want configured default -110", result.Analysis.Odds)
	}
}

func TestAnalyzeTextParsedOdds(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.AnalyzeText("take the Chiefs -3 vs the Bills at -115")
	if err != nil {
		t.Fatalf("AnalyzeText unexpected error: %v", err)
	}
	if result.Analysis.Odds != -115 {
		t.Errorf("Odds = %d, want parsed -115", result.Analysis.Odds)
	}
	if result.Parsed.Pick.Name != "Kansas City Chiefs" {
		t.Errorf("Pick = %q, want Kansas City Chiefs", result.Parsed.Pick.Name)
	}
	if result.Analysis.Spread != -3 {
		t.Errorf("favorite spread = %v, want -3", result.Analysis.Spread)
	}
}

func TestAnalyzeTextFailures(t *testing.T) {
	eng := newTestEngine()

	_, err := eng.AnalyzeText("what should I bet tonight?")
	var eerr *Error
	if !errors.As(err, &eerr) {
		t.Fatalf("expected engine error, got %v", err)
	}
	if eerr.Code != ErrParseFailure {
		t.Errorf("Code = %q, want parse_failure", eerr.Code)
	}
	if len(eerr.ClarificationNeeded) == 0 {
		t.Error("parse_failure must say what needs clarifying")
	}

	_, err = eng.AnalyzeText("NHL: Oilers -1.5 vs Flames")
	if !errors.As(err, &eerr) || eerr.Code != ErrInvalidInput {
		t.Errorf("hockey spread text: got %v, want invalid_input", err)
	}
}
