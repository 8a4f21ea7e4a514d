package analysis

import (
	"fmt"

	"bet-advisor/internal/mathutil"
	"bet-advisor/internal/odds"
)

// ExpectedValue calculates the expected profit per unit staked at American
// odds. EV = p*b - (1-p), where b is the decimal payout minus the stake.
// A fair price returns 0; positive means the probability estimate beats the
// implied probability of the odds.
func ExpectedValue(probabilityPercent float64, americanOdds int) (float64, error) {
	if probabilityPercent <= 0 || probabilityPercent >= 100 {
		return 0, fmt.Errorf("probability must be between 0 and 100 exclusive, got %.2f", probabilityPercent)
	}
	decimal, err := odds.AmericanToDecimal(americanOdds)
	if err != nil {
		return 0, err
	}
	p := probabilityPercent / 100.0
	b := decimal - 1.0
	return mathutil.Round4(p*b - (1.0 - p)), nil
}
