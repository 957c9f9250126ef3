package interest

import (
	"fmt"
	"math"
)

// Compound returns the interest earned and the final amount of principal invested for
// periods at ratePercent compounded once per period,
//
//	M = C * (1 + i)^t
//
// Neither result is rounded. A result too large for a float64 is an ErrInvalidValue.
func Compound(principal, ratePercent, periods float64) (interest, amount float64, err error) {
	if err = checkInputs(principal, ratePercent, periods); err != nil {
		return 0, 0, fmt.Errorf("compound interest: %w", err)
	}
	amount = compoundAmount(principal, ratePercent, periods)
	if err = checkResult(amount); err != nil {
		return 0, 0, fmt.Errorf("compound interest: %w", err)
	}
	return amount - principal, amount, nil
}

func compoundAmount(principal, ratePercent, periods float64) float64 {
	if principal == 0 {
		return 0
	}
	return principal * math.Pow(1+ratePercent/100, periods)
}
