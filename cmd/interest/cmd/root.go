package cmd

import (
	"github.com/go-kit/log"
	"github.com/spf13/cobra"

	"go-interest-calculator/calculator"
	"go-interest-calculator/logging"
)

var (
	output  string
	verbose bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "interest",
		Short: "Simple and compound interest calculator",
		Long: `interest computes final amounts under simple and compound interest.

Rates are percentages per period: 5 means 5%.

  interest simple 1000 5 2        # 1100
  interest compound 1000 5 2      # interest and amount, unrounded
  interest difference 8.9 9.9 7   # 2.17`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each calculation to stderr")

	root.AddCommand(newSimpleCmd(), newCompoundCmd(), newDifferenceCmd(), newVersionCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}

// newService builds the calculator, logging each call to stderr when verbose
func newService(cmd *cobra.Command) (calculator.Service, error) {
	s := calculator.NewService()
	if !verbose {
		return s, nil
	}
	logger, err := logging.New(cmd.ErrOrStderr(), "logfmt", "debug")
	if err != nil {
		return nil, err
	}
	return calculator.NewLoggingService(log.With(logger, "component", "calculator"), s), nil
}
