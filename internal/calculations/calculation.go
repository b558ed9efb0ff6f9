package calculations

import "npv-engine/internal/model"

// CalculationHandler defines the contract for all calculation implementations.
// A handler never fails outright: problems are reported as messages and the
// processed calculation still carries a report.
type CalculationHandler interface {
	Calculate(input *model.CalculationInput) (model.ProcessedCalculation, []model.CalculationMessage)
}
