// Package npv discounts a cash-flow series to time 0.
package npv

import (
	"math"

	"npv-engine/internal/model"
)

// PresentValue discounts cf received at period t. Period 0 is returned as is.
// A rate of -1 is not special-cased; the result is ±Inf or NaN.
func PresentValue(cf, rate float64, t int) float64 {
	if t == 0 {
		return cf
	}
	return cf / math.Pow(1+rate, float64(t))
}

// Sum returns CF0 + Σ CFt/(1+rate)^t, accumulated in period order.
func Sum(rate float64, flows [model.Periods]float64) float64 {
	total := flows[0]
	for t := 1; t < len(flows); t++ {
		total += PresentValue(flows[t], rate, t)
	}
	return total
}

// Compute returns the NPV of input at its discount rate with the per-period trace.
func Compute(input model.CalculationInput) model.NpvResult {
	var res model.NpvResult

	for t, cf := range input.CashFlows {
		pv := PresentValue(cf, input.DiscountRate, t)
		res.PresentValues[t] = model.PresentValue{Period: t, CashFlow: cf, PresentValue: pv}
		if t == 0 {
			res.Value = pv
			continue
		}
		res.Value += pv
	}

	res.Decision = model.Decide(res.Value, 0)
	return res
}
