package odds

import (
	"fmt"
	"math"
)

// MinAmerican is the smallest absolute value a valid American odds quote can have.
// Quotes like -50 or +99 are not real American odds and are rejected.
const MinAmerican = 100

// Validate checks that the given value is a real American odds quote.
func Validate(american int) error {
	if american == 0 {
		return fmt.Errorf("invalid American odds: cannot be 0")
	}
	if american > -MinAmerican && american < MinAmerican {
		return fmt.Errorf("invalid American odds %d: absolute value must be at least %d", american, MinAmerican)
	}
	return nil
}

// AmericanToDecimal converts American odds to decimal odds.
// +150 → 2.50, -150 → 1.67
func AmericanToDecimal(american int) (float64, error) {
	if err := Validate(american); err != nil {
		return 0, err
	}

	var decimal float64
	if american > 0 {
		decimal = float64(american)/100.0 + 1.0
	} else {
		decimal = 100.0/math.Abs(float64(american)) + 1.0
	}

	if decimal <= 1.0 {
		return 0, fmt.Errorf("American odds %d produce degenerate decimal odds %.4f", american, decimal)
	}
	return decimal, nil
}

// DecimalToAmerican converts decimal odds to American odds.
// 2.50 → +150, 1.67 → -150
func DecimalToAmerican(decimal float64) (int, error) {
	if decimal <= 1.0 {
		return 0, fmt.Errorf("invalid decimal odds %.4f: must be greater than 1.0", decimal)
	}

	if decimal >= 2.0 {
		return int(math.Round((decimal - 1.0) * 100.0)), nil
	}
	return int(math.Round(-100.0 / (decimal - 1.0))), nil
}

// ImpliedProbability converts American odds to implied win probability in percent.
// -150 → 60.0, +150 → 40.0. The result is always in (0, 100) exclusive.
func ImpliedProbability(american int) (float64, error) {
	if err := Validate(american); err != nil {
		return 0, err
	}

	if american > 0 {
		return 100.0 / (float64(american) + 100.0) * 100.0, nil
	}
	abs := math.Abs(float64(american))
	return abs / (abs + 100.0) * 100.0, nil
}
