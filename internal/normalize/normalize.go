// Package normalize turns the loosely-shaped argument objects produced by
// agents and tool callers into canonical matchup requests. It accepts plain
// maps, JSON-encoded strings, and payloads nested under an "arguments" or
// "params.arguments" wrapper, and probes an ordered list of accepted key
// aliases per canonical field. It performs no semantic validation; spread
// sign and range checks belong to the caller.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FieldSpec declares one canonical field and the argument keys accepted for
// it, in probe order. Adding a new accepted key is a one-line change here.
type FieldSpec struct {
	Name    string
	Aliases []string
}

var (
	// Spread-request fields.
	FieldTeamFavorite = FieldSpec{"team_favorite", []string{
		"team_favorite", "teamFavorite", "favorite", "favourite", "fav", "favorite_team", "team1", "home_team",
	}}
	FieldTeamUnderdog = FieldSpec{"team_underdog", []string{
		"team_underdog", "teamUnderdog", "underdog", "dog", "underdog_team", "team2", "away_team",
	}}
	FieldSpread = FieldSpec{"spread", []string{
		"spread", "point_spread", "pointSpread", "line", "handicap",
	}}

	// Matchup-request fields.
	FieldTeamA = FieldSpec{"team_a", []string{"team_a", "teamA", "team1", "first_team", "team"}}
	FieldTeamB = FieldSpec{"team_b", []string{"team_b", "teamB", "team2", "second_team", "opponent"}}
	FieldSport = FieldSpec{"sport", []string{"sport", "league", "sport_type"}}

	// Optional staking fields, accepted on any request shape.
	FieldBankroll = FieldSpec{"bankroll", []string{"bankroll", "balance", "bank"}}
	FieldOdds     = FieldSpec{"odds", []string{"odds", "american_odds", "americanOdds", "price"}}
	FieldFraction = FieldSpec{"fraction", []string{"fraction", "kelly_fraction", "kellyFraction", "kelly_multiplier"}}

	// Total (over/under) line for the hockey goals model.
	FieldLine = FieldSpec{"line", []string{"line", "total", "total_line", "goal_line", "over_under"}}
)

// MissingField reports a canonical field whose accepted keys were all absent,
// with the full alias set so callers can produce an actionable message.
type MissingField struct {
	Field   string   `json:"field"`
	Aliases []string `json:"accepted_keys"`
}

// SpreadArgs is the canonical {favorite, underdog, spread} shape. Sport and
// the staking fields are optional and never reported missing.
type SpreadArgs struct {
	TeamFavorite string
	TeamUnderdog string
	Spread       *float64
	Sport        string
	Staking      StakingArgs
}

// MatchupArgs is the canonical {teamA, teamB, sport} shape.
type MatchupArgs struct {
	TeamA string
	TeamB string
	Sport string
}

// TotalArgs is the canonical shape for a two-team over/under request.
type TotalArgs struct {
	TeamA   string
	TeamB   string
	Line    *float64
	Staking StakingArgs
}

// StakingArgs are the optional bankroll/odds/fraction overrides a request
// may carry; nil means "use the configured default".
type StakingArgs struct {
	Bankroll *float64
	Odds     *float64
	Fraction *float64
}

func stakingArgs(m map[string]any) StakingArgs {
	var s StakingArgs
	if v, ok := firstNumber(m, FieldBankroll); ok {
		s.Bankroll = &v
	}
	if v, ok := firstNumber(m, FieldOdds); ok {
		s.Odds = &v
	}
	if v, ok := firstNumber(m, FieldFraction); ok {
		s.Fraction = &v
	}
	return s
}

// SpreadRequest normalizes raw arguments into SpreadArgs, reporting every
// canonical field that could not be filled.
func SpreadRequest(raw any) (SpreadArgs, []MissingField) {
	m := Unwrap(raw)
	var out SpreadArgs
	var missing []MissingField

	if v, ok := firstString(m, FieldTeamFavorite); ok {
		out.TeamFavorite = v
	} else {
		missing = append(missing, MissingField{FieldTeamFavorite.Name, FieldTeamFavorite.Aliases})
	}
	if v, ok := firstString(m, FieldTeamUnderdog); ok {
		out.TeamUnderdog = v
	} else {
		missing = append(missing, MissingField{FieldTeamUnderdog.Name, FieldTeamUnderdog.Aliases})
	}
	if v, ok := firstNumber(m, FieldSpread); ok {
		out.Spread = &v
	} else {
		missing = append(missing, MissingField{FieldSpread.Name, FieldSpread.Aliases})
	}
	if v, ok := firstString(m, FieldSport); ok {
		out.Sport = v
	}
	out.Staking = stakingArgs(m)
	return out, missing
}

// TotalRequest normalizes raw arguments into TotalArgs for the over/under
// pipeline.
func TotalRequest(raw any) (TotalArgs, []MissingField) {
	m := Unwrap(raw)
	var out TotalArgs
	var missing []MissingField

	if v, ok := firstString(m, FieldTeamA); ok {
		out.TeamA = v
	} else {
		missing = append(missing, MissingField{FieldTeamA.Name, FieldTeamA.Aliases})
	}
	if v, ok := firstString(m, FieldTeamB); ok {
		out.TeamB = v
	} else {
		missing = append(missing, MissingField{FieldTeamB.Name, FieldTeamB.Aliases})
	}
	if v, ok := firstNumber(m, FieldLine); ok {
		out.Line = &v
	} else {
		missing = append(missing, MissingField{FieldLine.Name, FieldLine.Aliases})
	}
	out.Staking = stakingArgs(m)
	return out, missing
}

// MatchupRequest normalizes raw arguments into MatchupArgs. The sport field
// is optional when defaultSport is non-empty.
func MatchupRequest(raw any, defaultSport string) (MatchupArgs, []MissingField) {
	m := Unwrap(raw)
	var out MatchupArgs
	var missing []MissingField

	if v, ok := firstString(m, FieldTeamA); ok {
		out.TeamA = v
	} else {
		missing = append(missing, MissingField{FieldTeamA.Name, FieldTeamA.Aliases})
	}
	if v, ok := firstString(m, FieldTeamB); ok {
		out.TeamB = v
	} else {
		missing = append(missing, MissingField{FieldTeamB.Name, FieldTeamB.Aliases})
	}
	if v, ok := firstString(m, FieldSport); ok {
		out.Sport = v
	} else if defaultSport != "" {
		out.Sport = defaultSport
	} else {
		missing = append(missing, MissingField{FieldSport.Name, FieldSport.Aliases})
	}
	return out, missing
}

// Unwrap coerces raw into a flat key→value map. Non-JSON string input
// yields an empty map rather than an error, and a single level of
// "arguments" / "params.arguments" wrapping is removed.
func Unwrap(raw any) map[string]any {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return unwrapNested(v)
	case string:
		var parsed map[string]any
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			return unwrapNested(parsed)
		}
		return map[string]any{}
	default:
		// Anything marshalable gets one round-trip through JSON, which
		// flattens struct arguments into the same map shape.
		b, err := json.Marshal(v)
		if err != nil {
			return map[string]any{}
		}
		var parsed map[string]any
		if err := json.Unmarshal(b, &parsed); err != nil {
			return map[string]any{}
		}
		return unwrapNested(parsed)
	}
}

func unwrapNested(m map[string]any) map[string]any {
	if params, ok := m["params"].(map[string]any); ok {
		if args, ok := params["arguments"].(map[string]any); ok {
			return args
		}
	}
	if args, ok := m["arguments"].(map[string]any); ok {
		return args
	}
	if args, ok := m["arguments"].(string); ok {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(args), &parsed); err == nil {
			return parsed
		}
	}
	return m
}

// firstString probes the field's aliases in order and returns the first
// present, trimmed, non-empty string value.
func firstString(m map[string]any, spec FieldSpec) (string, bool) {
	for _, key := range spec.Aliases {
		v, ok := m[key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		return s, true
	}
	return "", false
}

// firstNumber probes the field's aliases in order, accepting both numbers and
// numeric strings. Non-numeric strings and NaN fail closed (treated absent).
func firstNumber(m map[string]any, spec FieldSpec) (float64, bool) {
	for _, key := range spec.Aliases {
		v, ok := m[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			if math.IsNaN(n) || math.IsInf(n, 0) {
				continue
			}
			return n, true
		case int:
			return float64(n), true
		case json.Number:
			if f, err := n.Float64(); err == nil && !math.IsNaN(f) {
				return f, true
			}
		case string:
			s := strings.TrimSpace(n)
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
				return f, true
			}
		}
	}
	return 0, false
}
