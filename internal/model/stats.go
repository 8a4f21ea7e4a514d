package model

import (
	"fmt"
	"strings"
)

// Team stat snapshots are immutable inputs to the margin models. Every
// numeric field is a pointer: absent means "insufficient data", never zero.
// The only documented default is football yardage (see leagueAverageYards).

// BasketballStats is a team's season snapshot for the basketball margin model.
type BasketballStats struct {
	Team           string   `json:"team"`
	PointsPerGame  *float64 `json:"points_per_game"`
	PointsAllowed  *float64 `json:"points_allowed"`
	FieldGoalPct   *float64 `json:"field_goal_pct"`
	ReboundMargin  *float64 `json:"rebound_margin"`
	TurnoverMargin *float64 `json:"turnover_margin"`
}

// FootballStats is a team's season snapshot for the football margin model.
type FootballStats struct {
	Team           string   `json:"team"`
	PointsPerGame  *float64 `json:"points_per_game"`
	PointsAllowed  *float64 `json:"points_allowed"`
	OffensiveYards *float64 `json:"offensive_yards"`
	DefensiveYards *float64 `json:"defensive_yards"`
	TurnoverDiff   *float64 `json:"turnover_diff"`
}

// HockeyStats is a team's season snapshot for the hockey total-goals model.
// Rate stats are per 60 minutes.
type HockeyStats struct {
	Team                    string   `json:"team"`
	XGF60                   *float64 `json:"xgf_60"`
	XGA60                   *float64 `json:"xga_60"`
	GSAx60                  *float64 `json:"gsax_60"`
	HDCF60                  *float64 `json:"hdcf_60"`
	PP                      *float64 `json:"pp_pct"`
	PK                      *float64 `json:"pk_pct"`
	TimesShorthandedPerGame *float64 `json:"times_shorthanded_per_game"`
}

// MissingStat names one absent required field on one team.
type MissingStat struct {
	Team  string `json:"team"`
	Field string `json:"field"`
}

// InsufficientDataError reports which teams lack which required stats.
type InsufficientDataError struct {
	Missing []MissingStat `json:"missing"`
}

func (e *InsufficientDataError) Error() string {
	byTeam := make(map[string][]string)
	var order []string
	for _, m := range e.Missing {
		if _, seen := byTeam[m.Team]; !seen {
			order = append(order, m.Team)
		}
		byTeam[m.Team] = append(byTeam[m.Team], m.Field)
	}
	parts := make([]string, 0, len(order))
	for _, team := range order {
		parts = append(parts, fmt.Sprintf("%s missing %s", team, strings.Join(byTeam[team], ", ")))
	}
	return "insufficient data: " + strings.Join(parts, "; ")
}

// checkRequired appends a MissingStat for every nil field.
func checkRequired(team string, fields map[string]*float64, order []string, missing *[]MissingStat) {
	for _, name := range order {
		if fields[name] == nil {
			*missing = append(*missing, MissingStat{Team: team, Field: name})
		}
	}
}
