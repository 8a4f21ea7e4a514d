// Package parse extracts a structured matchup request from unstructured
// betting-request text. Parsing is a fixed sequence of independent passes
// over the original string; later passes always see the full text, never a
// stripped residual. Failures are typed and carry the list of facts that
// need clarifying, so a caller can ask the user instead of guessing.
package parse

import (
	"fmt"
	"strings"

	"bet-advisor/internal/teams"
)

// Venue is where the picked team plays.
type Venue string

const (
	VenueHome    Venue = "home"
	VenueAway    Venue = "away"
	VenueNeutral Venue = "neutral"
)

// Failure reasons.
const (
	ReasonTeamsNotIdentified = "teams-not-identified"
	ReasonSportUndetermined  = "sport-undetermined"
	ReasonSameTeamTwice      = "same-team-twice"
	ReasonSpreadUnparseable  = "spread-unparseable"
)

// Error is a typed parse failure naming the missing facts.
type Error struct {
	Reason              string   `json:"reason"`
	ClarificationNeeded []string `json:"clarification_needed"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse failure (%s): %s", e.Reason, strings.Join(e.ClarificationNeeded, "; "))
}

// Result is a fully extracted matchup request. Spread is always expressed
// from the picked team's perspective; Assumptions records every default that
// was applied without explicit evidence in the text.
type Result struct {
	Sport       teams.Sport      `json:"sport"`
	Pick        *teams.TeamInfo  `json:"pick"`
	Opponent    *teams.TeamInfo  `json:"opponent"`
	Spread      float64          `json:"spread"`
	Venue       Venue            `json:"venue"`
	VenueKnown  bool             `json:"venue_known"`
	Odds        *int             `json:"odds,omitempty"`
	Assumptions []string         `json:"assumptions,omitempty"`
}

// MatchupRequest parses free text into a Result.
func MatchupRequest(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &Error{
			Reason:              ReasonTeamsNotIdentified,
			ClarificationNeeded: []string{"which two teams are playing"},
		}
	}

	res := &Result{}

	// Pass 1: explicit league tokens. Absence is fine; the sport is then
	// inferred from the resolved teams.
	sportHint := detectSport(text)

	// Pass 2+3: team pair extraction and resolution.
	teamA, teamB, perr := extractTeams(text, sportHint)
	if perr != nil {
		return nil, perr
	}

	// Sport inference from resolved teams when no league token was present.
	if sportHint == "" {
		if teamA.Sport != teamB.Sport {
			return nil, &Error{
				Reason: ReasonSportUndetermined,
				ClarificationNeeded: []string{fmt.Sprintf(
					"which sport: %s is a %s team but %s is a %s team",
					teamA.Name, teamA.Sport, teamB.Name, teamB.Sport)},
			}
		}
		sportHint = teamA.Sport
	}
	res.Sport = sportHint

	// Pass 4: spread extraction. Unparseable spread is a hard failure.
	spread, spreadIdx, ok := extractSpread(text)
	if !ok {
		return nil, &Error{
			Reason:              ReasonSpreadUnparseable,
			ClarificationNeeded: []string{"what is the point spread (e.g. \"-6.5\" or \"favored by 3\")"},
		}
	}

	// Pass 5: which team does the spread number literally describe.
	mentions := teams.Mentions(text, sportHint)
	spreadTeam := attributeSpread(text, spreadIdx, teamA, teamB, mentions)

	// Pass 6: explicit betting-intent pick, else defaults with a trace.
	pick := extractPick(text, sportHint, teamA, teamB)
	if pick == nil {
		if spreadTeam != nil {
			pick = spreadTeam
			res.Assumptions = append(res.Assumptions,
				fmt.Sprintf("no explicit pick; defaulted to %s, the team the spread describes", pick.Name))
		} else {
			pick = teamA
			res.Assumptions = append(res.Assumptions,
				fmt.Sprintf("no explicit pick; defaulted to %s, the first team mentioned", pick.Name))
		}
	}
	opponent := teamB
	if pick == teamB {
		opponent = teamA
	}
	res.Pick = pick
	res.Opponent = opponent

	// Pass 7: reorient the spread to the picked team's perspective.
	if spreadTeam != nil && spreadTeam != pick {
		spread = -spread
	}
	if spreadTeam == nil {
		res.Assumptions = append(res.Assumptions,
			fmt.Sprintf("could not tie the spread to a team; read %+.1f as %s's line", spread, pick.Name))
	}
	res.Spread = spread

	// Pass 8: venue.
	venue, venueKnown := extractVenue(text, pick, opponent, mentions)
	res.Venue = venue
	res.VenueKnown = venueKnown
	if !venueKnown {
		res.Assumptions = append(res.Assumptions, "no venue cue found; assumed a neutral site")
	}

	// Pass 9: odds. Absence is non-fatal; the caller applies its default.
	if o, ok := extractOdds(text); ok {
		res.Odds = &o
	}

	return res, nil
}
