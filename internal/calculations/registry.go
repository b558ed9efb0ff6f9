package calculations

import "npv-engine/internal/model"

var registry = map[string]CalculationHandler{
	model.CalculationNpv: &NpvHandler{},
	model.CalculationIrr: &IrrHandler{},
}

func Get(name string) (CalculationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
