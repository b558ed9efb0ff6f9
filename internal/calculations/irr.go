package calculations

import (
	"errors"

	"npv-engine/internal/irr"
	"npv-engine/internal/model"
	"npv-engine/internal/report"
)

type IrrHandler struct{}

func (h *IrrHandler) Calculate(input *model.CalculationInput) (model.ProcessedCalculation, []model.CalculationMessage) {
	result, err := irr.Compute(*input)

	processed := model.ProcessedCalculation{
		Calculation: model.CalculationIrr,
		Report:      report.Irr(*input, result, err),
	}
	if err != nil {
		code := "IRR_FAILED"
		var f *irr.Failure
		if errors.As(err, &f) {
			code = f.Kind.String()
		}
		return processed, []model.CalculationMessage{model.Critical(code, err.Error())}
	}

	processed.Irr = model.NewIrrOutcome(result)
	return processed, nil
}
