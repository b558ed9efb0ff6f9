// Package report renders calculation results as a markdown-flavoured narrative.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"npv-engine/internal/irr"
	"npv-engine/internal/model"
)

const (
	NpvTitle = "## Net Present Value (NPV)"
	IrrTitle = "## Internal Rate of Return (IRR)"
)

// Npv explains how result was derived from input, period by period.
func Npv(input model.CalculationInput, result model.NpvResult) string {
	var b strings.Builder

	b.WriteString(NpvTitle + "\n\n")
	b.WriteString("**Formula:**\n")
	b.WriteString("NPV = CF0 + Σ CFt / (1 + r)^t, for t = 1..4\n\n")
	writeInputs(&b, input)

	b.WriteString("**Discounting by period:**\n\n")
	t := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		Headers("Period", "Cash Flow", "Calculation", "Present Value")
	for _, pv := range result.PresentValues {
		t.Row(
			strconv.Itoa(pv.Period),
			money(pv.CashFlow),
			fmt.Sprintf("%s / (1 + %s)^%d", money(pv.CashFlow), number(input.DiscountRate), pv.Period),
			money(pv.PresentValue),
		)
	}
	b.WriteString(t.String())
	b.WriteString("\n\n")

	b.WriteString("**Result:**\n")
	b.WriteString("NPV = sum of the present values\n")
	fmt.Fprintf(&b, "NPV = **%s**\n\n", money(result.Value))

	b.WriteString("**Decision:** ")
	switch result.Decision {
	case model.DecisionAccept:
		b.WriteString("ACCEPT. The NPV is positive, so the project adds value at the required rate.")
	case model.DecisionReject:
		b.WriteString("REJECT. The NPV is negative, so the project destroys value at the required rate.")
	default:
		b.WriteString("INDIFFERENT. The NPV is not above or below zero, so the project earns exactly the required rate.")
	}
	b.WriteString("\n")

	return b.String()
}

// Irr explains an IRR search. When err is non-nil the report states the
// failure instead of a result.
func Irr(input model.CalculationInput, result model.IrrResult, err error) string {
	var b strings.Builder

	b.WriteString(IrrTitle + "\n\n")

	var f *irr.Failure
	if errors.As(err, &f) && f.Kind == irr.NoSignChange {
		b.WriteString(failureLine(err))
		return b.String()
	}

	b.WriteString("**Formula:**\n")
	b.WriteString("IRR is the rate that makes NPV zero: Σ CFt / (1 + IRR)^t = 0, for t = 0..4\n\n")
	b.WriteString("**Method:** secant iteration from 10% and 20%, since there is no closed-form solution.\n\n")
	writeInputs(&b, input)

	if err != nil {
		b.WriteString(failureLine(err))
		return b.String()
	}

	required := percent(input.DiscountRate)
	got := percent(result.Rate)

	b.WriteString("**Result:**\n")
	fmt.Fprintf(&b, "IRR = **%s** after %d iterations\n\n", got, result.IterationsUsed)
	fmt.Fprintf(&b, "**Check:** NPV at %s = %s (should be approximately 0)\n\n", got, money(result.VerificationNpv))

	b.WriteString("**Decision:** ")
	switch result.Decision {
	case model.DecisionAccept:
		fmt.Fprintf(&b, "ACCEPT. IRR (%s) is above the required rate (%s).", got, required)
	case model.DecisionReject:
		fmt.Fprintf(&b, "REJECT. IRR (%s) is below the required rate (%s).", got, required)
	default:
		fmt.Fprintf(&b, "INDIFFERENT. IRR (%s) equals the required rate (%s).", got, required)
	}
	b.WriteString("\n")

	return b.String()
}

// Invalid renders a rejected input.
func Invalid(err error) string {
	return "Error: please enter valid numbers for all fields (" + err.Error() + ").\n"
}

func writeInputs(b *strings.Builder, input model.CalculationInput) {
	flows := make([]string, len(input.CashFlows))
	for i, cf := range input.CashFlows {
		flows[i] = number(cf)
	}
	b.WriteString("**Inputs:**\n")
	fmt.Fprintf(b, "* Required rate (r): %s\n", percent(input.DiscountRate))
	fmt.Fprintf(b, "* Cash flows (CF0..CF4): [%s]\n\n", strings.Join(flows, ", "))
}

func failureLine(err error) string {
	return "**Calculation aborted:** " + err.Error() + ".\n"
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func percent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', 2, 64) + "%"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
