package calculations

import (
	"fmt"
	"math"

	"npv-engine/internal/model"
	"npv-engine/internal/npv"
	"npv-engine/internal/report"
)

type NpvHandler struct{}

func (h *NpvHandler) Calculate(input *model.CalculationInput) (model.ProcessedCalculation, []model.CalculationMessage) {
	result := npv.Compute(*input)

	var msgs []model.CalculationMessage
	if math.IsNaN(result.Value) || math.IsInf(result.Value, 0) {
		msgs = append(msgs, model.Warning(model.CodeNonFiniteResult,
			fmt.Sprintf("NPV is %v at discount rate %v", result.Value, input.DiscountRate)))
	}

	return model.ProcessedCalculation{
		Calculation: model.CalculationNpv,
		Npv:         model.NewNpvOutcome(result),
		Report:      report.Npv(*input, result),
	}, msgs
}
