package interest

import (
	"math"

	"github.com/shopspring/decimal"
)

// places every rounded result has this many decimal places
const places = 2

// round2 rounds half away from zero on the shortest decimal form of v,
// so 1.005 rounds to 1.01. Non-finite values are returned as is.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
