package model

type CalculationRequest struct {
	TenantID                string                  `json:"tenant_id"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

// CalculationInstructions carries raw, unvalidated input. Rate and cash flows
// may be JSON numbers or numeric strings.
type CalculationInstructions struct {
	DiscountRate interface{}   `json:"discount_rate"`
	CashFlows    []interface{} `json:"cash_flows"`
	Calculations []string      `json:"calculations"`
}

const (
	CalculationNpv = "npv"
	CalculationIrr = "irr"
)
