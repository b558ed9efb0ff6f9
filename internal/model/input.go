package model

// Periods is the fixed length of a cash-flow series: time 0 plus four periods.
const Periods = 5

// CalculationInput is a validated discount rate and cash-flow series.
// All values are finite.
type CalculationInput struct {
	DiscountRate float64
	CashFlows    [Periods]float64
}

type Decision string

const (
	DecisionAccept      Decision = "ACCEPT"
	DecisionReject      Decision = "REJECT"
	DecisionIndifferent Decision = "INDIFFERENT"
)

// Decide maps the sign of x - threshold onto a decision.
// Equality is exact; there is no tolerance band.
func Decide(x, threshold float64) Decision {
	switch {
	case x > threshold:
		return DecisionAccept
	case x < threshold:
		return DecisionReject
	default:
		return DecisionIndifferent
	}
}

type PresentValue struct {
	Period       int
	CashFlow     float64
	PresentValue float64
}

type NpvResult struct {
	Value         float64
	PresentValues [Periods]PresentValue
	Decision      Decision
}

type IrrResult struct {
	Rate            float64
	VerificationNpv float64
	IterationsUsed  int
	Decision        Decision
}
