package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages     []CalculationMessage   `json:"messages"`
	Input        *InputEcho             `json:"input"`
	Calculations []ProcessedCalculation `json:"calculations"`
}

// Outcome is FAILURE when any message is critical.
func (r *CalculationResult) Outcome() string {
	for _, m := range r.Messages {
		if m.Level == LevelCritical {
			return OutcomeFailure
		}
	}
	return OutcomeSuccess
}

type InputEcho struct {
	DiscountRate Float   `json:"discount_rate"`
	CashFlows    []Float `json:"cash_flows"`
}

type ProcessedCalculation struct {
	Calculation               string      `json:"calculation"`
	Npv                       *NpvOutcome `json:"npv,omitempty"`
	Irr                       *IrrOutcome `json:"irr,omitempty"`
	Report                    string      `json:"report"`
	CalculationMessageIndexes []int       `json:"calculation_message_indexes,omitempty"`
}

type NpvOutcome struct {
	Value         Float             `json:"value"`
	PresentValues []PresentValueRow `json:"present_values"`
	Decision      Decision          `json:"decision"`
}

type PresentValueRow struct {
	Period       int   `json:"period"`
	CashFlow     Float `json:"cash_flow"`
	PresentValue Float `json:"present_value"`
}

type IrrOutcome struct {
	Rate            Float    `json:"rate"`
	VerificationNpv Float    `json:"verification_npv"`
	IterationsUsed  int      `json:"iterations_used"`
	Decision        Decision `json:"decision"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

func NewInputEcho(in CalculationInput) *InputEcho {
	flows := make([]Float, len(in.CashFlows))
	for i, cf := range in.CashFlows {
		flows[i] = Float(cf)
	}
	return &InputEcho{DiscountRate: Float(in.DiscountRate), CashFlows: flows}
}

func NewNpvOutcome(r NpvResult) *NpvOutcome {
	rows := make([]PresentValueRow, len(r.PresentValues))
	for i, pv := range r.PresentValues {
		rows[i] = PresentValueRow{
			Period:       pv.Period,
			CashFlow:     Float(pv.CashFlow),
			PresentValue: Float(pv.PresentValue),
		}
	}
	return &NpvOutcome{Value: Float(r.Value), PresentValues: rows, Decision: r.Decision}
}

func NewIrrOutcome(r IrrResult) *IrrOutcome {
	return &IrrOutcome{
		Rate:            Float(r.Rate),
		VerificationNpv: Float(r.VerificationNpv),
		IterationsUsed:  r.IterationsUsed,
		Decision:        r.Decision,
	}
}
