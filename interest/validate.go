package interest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"go-interest-calculator/domain"
)

const (
	argPrincipal = "principal"
	argRate      = "rate"
	argPeriod    = "period"
	argResult    = "result"
)

type argument struct {
	name  string
	value interface{}
}

// checkRange rejects negative and non-finite values, first failing argument wins.
func checkRange(name string, value float64) error {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return &ArgumentError{Name: name, Value: value, Reason: "must be finite", Kind: ErrInvalidValue}
	case value < 0:
		return &ArgumentError{Name: name, Value: value, Reason: "must be non-negative", Kind: ErrInvalidValue}
	}
	return nil
}

// checkResult rejects a computed amount that overflowed
func checkResult(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ArgumentError{Name: argResult, Value: value, Reason: "out of range", Kind: ErrInvalidValue}
	}
	return nil
}

func checkInputs(principal, ratePercent, period float64) error {
	if err := checkRange(argPrincipal, principal); err != nil {
		return err
	}
	if err := checkRange(argRate, ratePercent); err != nil {
		return err
	}
	return checkRange(argPeriod, period)
}

// toFloat reports whether v holds a number and returns it as float64.
// Strings are never numbers, even "5". Neither are bools. A json.Number beyond the float64
// range is still a number and comes back as ±Inf, for checkRange to reject.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return f, errors.Is(err, strconv.ErrRange)
		}
		return f, true
	}
	return 0, false
}

// Parse converts untyped arguments, as decoded from a JSON body or read from a command line,
// into Inputs for formula.
//
// Simple and difference check every argument is a number before checking any range and
// report non-numbers with ErrNotNumeric. Compound checks each argument in turn and reports
// non-numbers with ErrInvalidValue.
func Parse(formula domain.Formula, principal, rate, period interface{}) (domain.Inputs, error) {
	if !domain.IsKnownFormula(formula) {
		return domain.Inputs{}, fmt.Errorf("unknown formula (%v)", formula)
	}

	args := []argument{
		{argPrincipal, principal},
		{argRate, rate},
		{argPeriod, period},
	}
	values := make([]float64, len(args))

	if formula == domain.FormulaCompound {
		for i, a := range args {
			f, ok := toFloat(a.value)
			if !ok {
				return domain.Inputs{}, &ArgumentError{Name: a.name, Value: a.value, Reason: "must be a number", Kind: ErrInvalidValue}
			}
			if err := checkRange(a.name, f); err != nil {
				return domain.Inputs{}, err
			}
			values[i] = f
		}
	} else {
		for i, a := range args {
			f, ok := toFloat(a.value)
			if !ok {
				return domain.Inputs{}, &ArgumentError{Name: a.name, Value: a.value, Reason: "must be a number", Kind: ErrNotNumeric}
			}
			values[i] = f
		}
		if err := checkInputs(values[0], values[1], values[2]); err != nil {
			return domain.Inputs{}, err
		}
	}

	return domain.Inputs{
		Principal: domain.Amount(values[0]),
		Rate:      domain.Rate(values[1]),
		Period:    domain.Period(values[2]),
	}, nil
}
