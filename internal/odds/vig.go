package odds

// CalculateVig returns the bookmaker margin for a two-way market, in percent.
// It is the amount by which the two implied probabilities overshoot 100%.
// A standard -110/-110 spread market carries about 4.76% vig.
func CalculateVig(american1, american2 int) (float64, error) {
	implied1, err := ImpliedProbability(american1)
	if err != nil {
		return 0, err
	}
	implied2, err := ImpliedProbability(american2)
	if err != nil {
		return 0, err
	}
	return implied1 + implied2 - 100.0, nil
}

// RemoveVig strips the vig from a two-way market proportionally.
// Returns the fair probabilities (percent) that sum to 100.
func RemoveVig(impliedPct1, impliedPct2 float64) (float64, float64) {
	total := impliedPct1 + impliedPct2
	if impliedPct1 <= 0 || impliedPct2 <= 0 || total <= 0 {
		return 0, 0
	}
	return impliedPct1 / total * 100.0, impliedPct2 / total * 100.0
}
