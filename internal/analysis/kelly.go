package analysis

import (
	"fmt"
	"math"

	"bet-advisor/internal/mathutil"
	"bet-advisor/internal/odds"
)

// KellyResult is a staking recommendation. KellyFraction is the raw f* before
// the caller's fractional multiplier; RecommendedStake is zero whenever the
// edge is non-positive, regardless of the multiplier supplied.
type KellyResult struct {
	RecommendedStake float64 `json:"recommended_stake"`
	StakePercentage  float64 `json:"stake_percentage"`
	KellyFraction    float64 `json:"kelly_fraction"`
	Edge             float64 `json:"edge"`
	HasValue         bool    `json:"has_value"`
}

// CalculateKellyStake computes the Kelly criterion stake for a bet.
// Kelly formula: f* = (b*p - q) / b
// where p = win probability, q = 1-p, b = decimal odds minus 1.
//
// probabilityPercent is the estimated win probability in percent (0-100
// exclusive). fraction is the Kelly multiplier (0.25/0.5/1 for quarter, half
// and full Kelly by convention; any positive value is accepted). Edge is
// probabilityPercent minus the implied probability of the odds. Internal math
// runs at full float precision; outputs are rounded only at the boundary
// (stake and percentages to 2 decimals, raw Kelly fraction to 4).
func CalculateKellyStake(bankroll, probabilityPercent float64, americanOdds int, fraction float64) (KellyResult, error) {
	if bankroll <= 0 {
		return KellyResult{}, fmt.Errorf("bankroll must be positive, got %.2f", bankroll)
	}
	if probabilityPercent <= 0 || probabilityPercent >= 100 {
		return KellyResult{}, fmt.Errorf("probability must be between 0 and 100 exclusive, got %.2f", probabilityPercent)
	}
	if fraction <= 0 {
		return KellyResult{}, fmt.Errorf("kelly fraction multiplier must be positive, got %.2f", fraction)
	}

	decimal, err := odds.AmericanToDecimal(americanOdds)
	if err != nil {
		return KellyResult{}, err
	}
	implied, err := odds.ImpliedProbability(americanOdds)
	if err != nil {
		return KellyResult{}, err
	}

	b := decimal - 1.0
	p := probabilityPercent / 100.0
	q := 1.0 - p

	// Never bet a negative edge.
	kelly := math.Max(0, (b*p-q)/b)
	edge := probabilityPercent - implied

	hasValue := edge > 0 && kelly > 0
	applied := kelly * fraction

	stake := 0.0
	if hasValue {
		stake = bankroll * applied
	}

	return KellyResult{
		RecommendedStake: mathutil.Round2(stake),
		StakePercentage:  mathutil.Round2(applied * 100.0),
		KellyFraction:    mathutil.Round4(kelly),
		Edge:             mathutil.Round2(edge),
		HasValue:         hasValue,
	}, nil
}
