package domain

// Amount a monetary amount
type Amount float64

// Rate an interest rate in percent per period, 5 means 5%
type Rate float64

// Period a duration in years, or in whatever period the rate applies to.
// May be fractional.
type Period float64

// Inputs the arguments shared by every calculation
type Inputs struct {
	Principal Amount
	Rate      Rate
	Period    Period
}

// Compounded result of a compound interest calculation
type Compounded struct {
	Interest Amount
	Amount   Amount
}

// Formula names a calculation
type Formula string

const (
	FormulaSimple     Formula = "simple"
	FormulaCompound   Formula = "compound"
	FormulaDifference Formula = "difference"
)

var KnownFormulas = []Formula{
	FormulaSimple,
	FormulaCompound,
	FormulaDifference,
}

func IsKnownFormula(formula Formula) bool {
	for _, f := range KnownFormulas {
		if f == formula {
			return true
		}
	}
	return false
}
