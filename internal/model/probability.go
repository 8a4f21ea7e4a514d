package model

import (
	"fmt"

	"bet-advisor/internal/mathutil"
	"bet-advisor/internal/teams"
)

// Per-sport standard deviations of game-margin outcomes. These are fixed
// calibration constants, not recalculated from data at runtime.
const (
	SigmaFootball = 13.5

	// SigmaBasketball is the canonical basketball constant. Two upstream call
	// sites historically disagreed (11.5 vs 12.0) for what should be the same
	// model; 11.5 is kept as the single value pending a recalibration pass.
	SigmaBasketball = 11.5
)

// Cover probabilities are clamped so the output never claims certainty.
const (
	MinCoverProbability = 0.1
	MaxCoverProbability = 99.9
)

// Valid point spreads, from the favorite's perspective.
const (
	MinSpread = -50.0
	MaxSpread = -0.5
)

// SpreadError rejects a spread outside [-50, -0.5]. A non-negative spread is
// almost always a sign mistake, so the message carries a corrective hint
// instead of silently flipping the sign.
type SpreadError struct {
	Spread float64
}

func (e *SpreadError) Error() string {
	if e.Spread >= 0 {
		return fmt.Sprintf("spread %+.1f must be negative from the favorite's perspective: the favorite laying 6.5 points is spread -6.5", e.Spread)
	}
	return fmt.Sprintf("spread %.1f is outside the plausible range [%.1f, %.1f]", e.Spread, MinSpread, MaxSpread)
}

// ValidateSpread checks that spread lies in [-50, -0.5].
func ValidateSpread(spread float64) error {
	if spread < MinSpread || spread > MaxSpread {
		return &SpreadError{Spread: spread}
	}
	return nil
}

// SigmaForSport returns the margin deviation constant for a spread sport.
// Hockey uses the Poisson-style total-goals model instead.
func SigmaForSport(sport teams.Sport) (float64, error) {
	switch sport {
	case teams.Basketball:
		return SigmaBasketball, nil
	case teams.Football:
		return SigmaFootball, nil
	}
	return 0, fmt.Errorf("no margin sigma for sport %q", sport)
}

// CoverProbability returns the probability, in percent, that the favorite
// covers the given spread, under a normal model of the final margin centered
// on predictedMargin. The spread is negative, so z measures how far the
// predicted margin clears the line.
func CoverProbability(predictedMargin, spread, sigma float64) (float64, error) {
	if err := ValidateSpread(spread); err != nil {
		return 0, err
	}
	if sigma <= 0 {
		return 0, fmt.Errorf("sigma must be positive, got %f", sigma)
	}

	z := (predictedMargin + spread) / sigma
	p := mathutil.NormalCDF(z) * 100.0
	return mathutil.Clamp(p, MinCoverProbability, MaxCoverProbability), nil
}

// ProbabilityResult is the favorite/underdog cover pair as fractions, with
// the predicted margin and sigma that produced it.
type ProbabilityResult struct {
	FavoriteCoverProbability float64 `json:"favorite_cover_probability"`
	UnderdogCoverProbability float64 `json:"underdog_cover_probability"`
	PredictedMargin          float64 `json:"predicted_margin"`
	Sigma                    float64 `json:"sigma"`
}

// NewProbabilityResult rounds the favorite probability to 2 decimals and
// derives the underdog side as 1.00 minus it. Rounding each independently
// can drift the pair to 0.99 or 1.01; deriving the second keeps the sum at
// exactly 1.00.
func NewProbabilityResult(favoritePct, predictedMargin, sigma float64) ProbabilityResult {
	fav := mathutil.Round2(favoritePct / 100.0)
	return ProbabilityResult{
		FavoriteCoverProbability: fav,
		UnderdogCoverProbability: mathutil.Round2(1.00 - fav),
		PredictedMargin:          predictedMargin,
		Sigma:                    sigma,
	}
}
