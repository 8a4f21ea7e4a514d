package model

import (
	"fmt"
	"math"

	"bet-advisor/internal/mathutil"
)

// Hockey total-goals model constants.
const (
	// paceBonus is added to the projected total when the combined
	// high-danger-chance rate clears paceThreshold.
	paceBonus     = 0.25
	paceThreshold = 25.0

	// specialTeamsBonus is added once per side whose power-play vs
	// penalty-kill mismatch score clears specialTeamsThreshold. Both sides
	// may trigger.
	specialTeamsBonus     = 0.35
	specialTeamsThreshold = 150.0
)

var hockeyRequired = []string{"xgf_60", "xga_60", "gsax_60", "hdcf_60", "pp_pct", "pk_pct", "times_shorthanded_per_game"}

func hockeyFields(s HockeyStats) map[string]*float64 {
	return map[string]*float64{
		"xgf_60":                     s.XGF60,
		"xga_60":                     s.XGA60,
		"gsax_60":                    s.GSAx60,
		"hdcf_60":                    s.HDCF60,
		"pp_pct":                     s.PP,
		"pk_pct":                     s.PK,
		"times_shorthanded_per_game": s.TimesShorthandedPerGame,
	}
}

// TotalProjection is the projected combined score of a hockey game.
type TotalProjection struct {
	TeamAGoals        float64 `json:"team_a_goals"`
	TeamBGoals        float64 `json:"team_b_goals"`
	PaceBonus         float64 `json:"pace_bonus"`
	SpecialTeamsBonus float64 `json:"special_teams_bonus"`
	ProjectedTotal    float64 `json:"projected_total"`
	Sigma             float64 `json:"sigma"`
}

// HockeyTotal projects the combined goals for a game between a and b.
// Each side's base expectation blends its own expected-goals-for rate with
// the opponent's expected-goals-against rate, less the opponent's goaltending
// (goals saved above expected). Goal scoring is roughly Poisson, so the
// model uses sqrt(total) as the deviation of the total.
func HockeyTotal(a, b HockeyStats) (*TotalProjection, error) {
	var missing []MissingStat
	checkRequired(a.Team, hockeyFields(a), hockeyRequired, &missing)
	checkRequired(b.Team, hockeyFields(b), hockeyRequired, &missing)
	if len(missing) > 0 {
		return nil, &InsufficientDataError{Missing: missing}
	}

	goalsA := (*a.XGF60+*b.XGA60)/2.0 - *b.GSAx60
	goalsB := (*b.XGF60+*a.XGA60)/2.0 - *a.GSAx60

	proj := &TotalProjection{TeamAGoals: goalsA, TeamBGoals: goalsB}

	if *a.HDCF60+*b.HDCF60 > paceThreshold {
		proj.PaceBonus = paceBonus
	}
	if specialTeamsScore(a, b) > specialTeamsThreshold {
		proj.SpecialTeamsBonus += specialTeamsBonus
	}
	if specialTeamsScore(b, a) > specialTeamsThreshold {
		proj.SpecialTeamsBonus += specialTeamsBonus
	}

	proj.ProjectedTotal = goalsA + goalsB + proj.PaceBonus + proj.SpecialTeamsBonus
	if proj.ProjectedTotal <= 0 {
		return nil, fmt.Errorf("projected total %.2f is not positive; check input stats", proj.ProjectedTotal)
	}
	proj.Sigma = math.Sqrt(proj.ProjectedTotal)
	return proj, nil
}

// specialTeamsScore measures how badly own's power play mismatches opp's
// penalty kill, weighted by how often opp is shorthanded.
func specialTeamsScore(own, opp HockeyStats) float64 {
	return (*own.PP + (100.0 - *opp.PK)) * *opp.TimesShorthandedPerGame
}

// OverProbability returns the probability, in percent, that the game total
// exceeds the supplied line, using the projection's sigma and the same
// z-score machinery as the spread model.
func (p *TotalProjection) OverProbability(line float64) (float64, error) {
	if line <= 0 {
		return 0, fmt.Errorf("total line must be positive, got %.2f", line)
	}
	z := (p.ProjectedTotal - line) / p.Sigma
	prob := mathutil.NormalCDF(z) * 100.0
	return mathutil.Clamp(prob, MinCoverProbability, MaxCoverProbability), nil
}
