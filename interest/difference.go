package interest

import "fmt"

// Difference returns how much more the compound final amount is than the simple one for the
// same inputs, rounded to 2 decimal places. Only the difference is rounded: the simple amount
// enters unrounded, so Difference(8.9, 9.9, 7) is 2.17 where rounding the simple amount first
// would give 2.16.
func Difference(principal, ratePercent, years float64) (float64, error) {
	if err := checkInputs(principal, ratePercent, years); err != nil {
		return 0, fmt.Errorf("interest difference: %w", err)
	}

	_, compound, err := Compound(principal, ratePercent, years)
	if err != nil {
		return 0, fmt.Errorf("interest difference: %w", err)
	}
	simple := simpleAmount(principal, ratePercent, years)
	if err := checkResult(simple); err != nil {
		return 0, fmt.Errorf("interest difference: %w", err)
	}

	return round2(compound - simple), nil
}
