package parse

import (
	"errors"
	"math"
	"testing"

	"bet-advisor/internal/teams"
)

func TestMatchupRequest(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantSport    teams.Sport
		wantPick     string
		wantOpponent string
		wantSpread   float64
		wantVenue    Venue
		wantKnown    bool
		wantOdds     *int
	}{
		{
			name:         "Pick the underdog, spread flips sign",
			text:         "Lakers -5.5 at Celtics, I'm taking the Celtics",
			wantSport:    teams.Basketball,
			wantPick:     "Boston Celtics",
			wantOpponent: "Los Angeles Lakers",
			wantSpread:   5.5,
			wantVenue:    VenueHome,
			wantKnown:    true,
		},
		{
			name:         "Pick the favorite with odds",
			text:         "take the Chiefs -3 vs the Bills at -115",
			wantSport:    teams.Football,
			wantPick:     "Kansas City Chiefs",
			wantOpponent: "Buffalo Bills",
			wantSpread:   -3,
			wantVenue:    VenueNeutral,
			wantKnown:    false,
			wantOdds:     intp(-115),
		},
		{
			name:         "Underdog phrasing keeps the positive sign",
			text:         "Bills are 4 point underdogs at Kansas City, I'm taking the Bills",
			wantSport:    teams.Football,
			wantPick:     "Buffalo Bills",
			wantOpponent: "Kansas City Chiefs",
			wantSpread:   4,
			wantVenue:    VenueAway,
			wantKnown:    true,
		},
		{
			name:         "Favored by phrasing",
			text:         "Lakers favored by 3 over the Celtics",
			wantSport:    teams.Basketball,
			wantPick:     "Los Angeles Lakers",
			wantOpponent: "Boston Celtics",
			wantSpread:   -3,
			wantVenue:    VenueNeutral,
			wantKnown:    false,
		},
		{
			name:         "Spelled-out spread with a half",
			text:         "Celtics minus six and a half vs the Bucks",
			wantSport:    teams.Basketball,
			wantPick:     "Boston Celtics",
			wantOpponent: "Milwaukee Bucks",
			wantSpread:   -6.5,
			wantVenue:    VenueNeutral,
			wantKnown:    false,
		},
		{
			name:         "Neutral site stated",
			text:         "Chiefs -3 vs Bills on a neutral field",
			wantSport:    teams.Football,
			wantPick:     "Kansas City Chiefs",
			wantOpponent: "Buffalo Bills",
			wantSpread:   -3,
			wantVenue:    VenueNeutral,
			wantKnown:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := MatchupRequest(tt.text)
			if err != nil {
				t.Fatalf("MatchupRequest(%q) unexpected error: %v", tt.text, err)
			}
			if res.Sport != tt.wantSport {
				t.Errorf("Sport = %q, want %q", res.Sport, tt.wantSport)
			}
			if res.Pick.Name != tt.wantPick {
				t.Errorf("Pick = %q, want %q", res.Pick.Name, tt.wantPick)
			}
			if res.Opponent.Name != tt.wantOpponent {
				t.Errorf("Opponent = %q, want %q", res.Opponent.Name, tt.wantOpponent)
			}
			if math.Abs(res.Spread-tt.wantSpread) > 0.0001 {
				t.Errorf("Spread = %v, want %v", res.Spread, tt.wantSpread)
			}
			if res.Venue != tt.wantVenue {
				t.Errorf("Venue = %q, want %q", res.Venue, tt.wantVenue)
			}
			if res.VenueKnown != tt.wantKnown {
				t.Errorf("VenueKnown = %v, want %v", res.VenueKnown, tt.wantKnown)
			}
			if tt.wantOdds == nil {
				if res.Odds != nil {
					t.Errorf("Odds = %v, want none", *res.Odds)
				}
			} else if res.Odds == nil || *res.Odds != *tt.wantOdds {
				t.Errorf("Odds = %v, want %d", res.Odds, *tt.wantOdds)
			}
			if !tt.wantKnown && len(res.Assumptions) == 0 {
				t.Error("unknown venue must be recorded as an assumption")
			}
		})
	}
}

func intp(v int) *int { return &v }

func TestMatchupRequestFailures(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantReason string
	}{
		{
			name:       "No teams at all",
			text:       "what should I bet tonight?",
			wantReason: ReasonTeamsNotIdentified,
		},
		{
			name:       "Empty input",
			text:       "   ",
			wantReason: ReasonTeamsNotIdentified,
		},
		{
			name:       "Only one team",
			text:       "Lakers -5.5 looks good",
			wantReason: ReasonTeamsNotIdentified,
		},
		{
			name:       "Same team on both sides",
			text:       "Lakers at Lakers -5.5",
			wantReason: ReasonSameTeamTwice,
		},
		{
			name:       "Cross-sport pair without a league token",
			text:       "Panthers vs Hornets -3",
			wantReason: ReasonSportUndetermined,
		},
		{
			name:       "No spread anywhere",
			text:       "Lakers vs Celtics tonight",
			wantReason: ReasonSpreadUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MatchupRequest(tt.text)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("MatchupRequest(%q) expected parse error, got %v", tt.text, err)
			}
			if perr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", perr.Reason, tt.wantReason)
			}
			if len(perr.ClarificationNeeded) == 0 {
				t.Error("failure must name what needs clarifying")
			}
		})
	}
}

// A league token overrides cross-sport ambiguity between the resolved teams.
func TestMatchupRequestLeagueToken(t *testing.T) {
	res, err := MatchupRequest("NHL: Panthers vs Rangers, Panthers -1.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Sport != teams.Hockey {
		t.Errorf("Sport = %q, want hockey", res.Sport)
	}
	if res.Pick.Name != "Florida Panthers" {
		t.Errorf("Pick = %q, want Florida Panthers", res.Pick.Name)
	}
}

// Defaults applied without evidence are recorded.
func TestMatchupRequestAssumptions(t *testing.T) {
	res, err := MatchupRequest("Lakers -5.5 vs Celtics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pick.Name != "Los Angeles Lakers" {
		t.Errorf("Pick = %q, want spread team Los Angeles Lakers", res.Pick.Name)
	}
	if len(res.Assumptions) == 0 {
		t.Error("defaulted pick and venue must be recorded as assumptions")
	}
}

func TestExtractSpread(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		ok       bool
	}{
		{name: "Signed decimal", text: "Lakers -5.5 tonight", expected: -5.5, ok: true},
		{name: "Positive sign", text: "give me the Bills +3", expected: 3, ok: true},
		{name: "Odds quote skipped", text: "at -110, Lakers -5.5", expected: -5.5, ok: true},
		{name: "Odds quote before favored phrasing", text: "taking the Lakers at -110, they're favored by 5", expected: -5, ok: true},
		{name: "Score is not a spread", text: "they won 110-105 last time, Lakers favored by 5", expected: -5, ok: true},
		{name: "Point suffix reads negative", text: "laying 7 points", expected: -7, ok: true},
		{name: "Favorites phrasing", text: "they are 3 point favorites", expected: -3, ok: true},
		{name: "Underdogs phrasing", text: "they are 4 point underdogs", expected: 4, ok: true},
		{name: "Spelled out", text: "minus three and a half", expected: -3.5, ok: true},
		{name: "Year is implausible", text: "the 2025 season", ok: false},
		{name: "Nothing numeric", text: "a close game", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _, ok := extractSpread(tt.text)
			if ok != tt.ok {
				t.Fatalf("extractSpread(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && math.Abs(v-tt.expected) > 0.0001 {
				t.Errorf("extractSpread(%q) = %v, want %v", tt.text, v, tt.expected)
			}
		})
	}
}
