package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Each call returns a fresh tree, so
// tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "npvcalc",
		Short: "Net present value and internal rate of return calculator",
		Long: `npvcalc evaluates a five-period cash-flow series against a required rate.

Commands:
  npv    - discount the cash flows and decide accept/reject
  irr    - find the rate at which NPV is zero (secant method)
  serve  - run the JSON calculation service`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file (TOML)")

	root.AddCommand(
		newCalculationCommand(calcNpv),
		newCalculationCommand(calcIrr),
		newServeCommand(),
		newVersionCommand(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error: %s: %v", msg, err)))
}
