package odds

import (
	"fmt"
	"math"
)

// Fraction is a fractional (UK-style) odds quote, e.g. 3/2.
type Fraction struct {
	Num int `json:"numerator"`
	Den int `json:"denominator"`
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// FractionalToDecimal converts fractional odds to decimal odds.
// 3/2 → 2.50
func FractionalToDecimal(num, den int) (float64, error) {
	if num <= 0 || den <= 0 {
		return 0, fmt.Errorf("invalid fractional odds %d/%d: numerator and denominator must be positive", num, den)
	}
	return float64(num)/float64(den) + 1.0, nil
}

// fracPrecision fixes the precision at which decimal odds are converted
// to a fraction. Three decimal digits keeps reduced fractions readable
// instead of producing irrational-looking ratios.
const fracPrecision = 1000

// DecimalToFractional converts decimal odds to reduced fractional odds.
// 2.50 → 3/2
func DecimalToFractional(decimal float64) (Fraction, error) {
	if decimal <= 1.0 {
		return Fraction{}, fmt.Errorf("invalid decimal odds %.4f: must be greater than 1.0", decimal)
	}

	num := int(math.Round((decimal - 1.0) * fracPrecision))
	den := fracPrecision
	if num <= 0 {
		return Fraction{}, fmt.Errorf("decimal odds %.4f reduce to a non-positive fraction", decimal)
	}

	g := gcd(num, den)
	return Fraction{Num: num / g, Den: den / g}, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
