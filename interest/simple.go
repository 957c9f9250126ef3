package interest

import "fmt"

// Simple returns the final amount of principal invested for years at ratePercent simple interest,
//
//	M = C * (1 + i*t)
//
// rounded to 2 decimal places. ratePercent is a percentage, 5 means 5%. years may be fractional.
// A result too large for a float64 is an ErrInvalidValue.
func Simple(principal, ratePercent, years float64) (float64, error) {
	if err := checkInputs(principal, ratePercent, years); err != nil {
		return 0, fmt.Errorf("simple interest: %w", err)
	}
	amount := simpleAmount(principal, ratePercent, years)
	if err := checkResult(amount); err != nil {
		return 0, fmt.Errorf("simple interest: %w", err)
	}
	return round2(amount), nil
}

func simpleAmount(principal, ratePercent, years float64) float64 {
	if principal == 0 {
		return 0
	}
	rate := ratePercent / 100
	return principal * (1 + rate*years)
}
