package cli

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"npv-engine/internal/engine"
	"npv-engine/internal/irr"
	"npv-engine/internal/model"
	"npv-engine/internal/npv"
	"npv-engine/internal/report"
	"npv-engine/internal/validate"
)

type calcKind struct {
	name  string
	short string
}

var (
	calcNpv = calcKind{model.CalculationNpv, "Compute the net present value of five cash flows"}
	calcIrr = calcKind{model.CalculationIrr, "Compute the internal rate of return of five cash flows"}
)

const (
	formatText = "text"
	formatJSON = "json"
)

func newCalculationCommand(kind calcKind) *cobra.Command {
	var (
		rate   string
		format string
	)

	cmd := &cobra.Command{
		Use:     kind.name + " --rate RATE -- CF0 CF1 CF2 CF3 CF4",
		Short:   kind.short,
		Example: fmt.Sprintf("  npvcalc %s --rate 0.10 -- -1000 300 300 300 300", kind.name),
		Args:    cobra.ExactArgs(model.Periods),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText:
				return runText(cmd.OutOrStdout(), kind, rate, args)
			case formatJSON:
				return runJSON(cmd.OutOrStdout(), kind, rate, args)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&rate, "rate", "r", "", "required rate as a fraction, e.g. 0.10 for 10%")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	if err := cmd.MarkFlagRequired("rate"); err != nil {
		panic(err)
	}
	return cmd
}

// runText prints the narrative report. Computation failures are part of the
// report but still make the command fail.
func runText(w io.Writer, kind calcKind, rate string, args []string) error {
	input, err := validate.Strings(rate, args)
	if err != nil {
		fmt.Fprint(w, report.Invalid(err))
		return fmt.Errorf("invalid input: %w", err)
	}

	var text string
	var calcErr error
	switch kind.name {
	case model.CalculationNpv:
		text = report.Npv(input, npv.Compute(input))
	case model.CalculationIrr:
		result, err := irr.Compute(input)
		text = report.Irr(input, result, err)
		calcErr = err
	}

	fmt.Fprint(w, styleReport(text))
	if calcErr != nil {
		return fmt.Errorf("irr: %w", calcErr)
	}
	return nil
}

// runJSON prints the engine's response, the same body the service returns.
func runJSON(w io.Writer, kind calcKind, rate string, args []string) error {
	flows := make([]interface{}, len(args))
	for i, a := range args {
		flows[i] = a
	}
	resp := engine.Process(&model.CalculationRequest{
		CalculationInstructions: model.CalculationInstructions{
			DiscountRate: rate,
			CashFlows:    flows,
			Calculations: []string{kind.name},
		},
	})

	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(w, string(body))

	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		return fmt.Errorf("%s failed: %s", kind.name, resp.CalculationResult.Messages[0].Message)
	}
	return nil
}

// styleReport highlights the report title.
func styleReport(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "## ") {
		lines[0] = titleStyle.Render(lines[0])
	}
	return strings.Join(lines, "\n")
}
