package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go-interest-calculator/domain"
	"go-interest-calculator/interest"
)

const argsUsage = "<principal> <rate> <period>"

func newSimpleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simple " + argsUsage,
		Short: "Final amount under simple interest, rounded to cents",
		Args:  cobra.ExactArgs(3),
		RunE:  run(domain.FormulaSimple),
	}
}

func newCompoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compound " + argsUsage,
		Short: "Interest earned and final amount under compound interest",
		Args:  cobra.ExactArgs(3),
		RunE:  run(domain.FormulaCompound),
	}
}

func newDifferenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difference " + argsUsage,
		Short: "Compound final amount minus simple final amount, rounded to cents",
		Args:  cobra.ExactArgs(3),
		RunE:  run(domain.FormulaDifference),
	}
}

// argValue a float where the argument parses as one, the raw string otherwise.
// Numbers beyond the float64 range come back as ±Inf and are rejected as out of range.
func argValue(arg string) interface{} {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return arg
	}
	return f
}

func run(formula domain.Formula) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if output != "text" && output != "json" {
			return fmt.Errorf("unknown output format [%v]", output)
		}

		in, err := interest.Parse(formula, argValue(args[0]), argValue(args[1]), argValue(args[2]))
		if err != nil {
			return err
		}

		service, err := newService(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		result := map[string]domain.Amount{}
		switch formula {
		case domain.FormulaSimple:
			amount, err := service.Simple(ctx, in)
			if err != nil {
				return err
			}
			result["amount"] = amount
		case domain.FormulaCompound:
			compounded, err := service.Compound(ctx, in)
			if err != nil {
				return err
			}
			result["interest"] = compounded.Interest
			result["amount"] = compounded.Amount
		case domain.FormulaDifference:
			difference, err := service.Difference(ctx, in)
			if err != nil {
				return err
			}
			result["difference"] = difference
		}

		return printResult(cmd, formula, result)
	}
}

func printResult(cmd *cobra.Command, formula domain.Formula, result map[string]domain.Amount) error {
	out := cmd.OutOrStdout()
	if output == "json" {
		return json.NewEncoder(out).Encode(result)
	}

	switch formula {
	case domain.FormulaCompound:
		_, err := fmt.Fprintf(out, "interest: %v\namount:   %v\n", result["interest"], result["amount"])
		return err
	case domain.FormulaDifference:
		_, err := fmt.Fprintf(out, "%.2f\n", float64(result["difference"]))
		return err
	}
	_, err := fmt.Fprintf(out, "%.2f\n", float64(result["amount"]))
	return err
}
