package model

// CalculationMessage reports a problem found while processing a request.
// CRITICAL messages make the outcome FAILURE; warnings are informational.
type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeInvalidNumber        = "INVALID_NUMBER"
	CodeInvalidCashFlowCount = "INVALID_CASH_FLOW_COUNT"
	CodeUnknownCalculation   = "UNKNOWN_CALCULATION"
	CodeNonFiniteResult      = "NON_FINITE_RESULT"
)

func Critical(code, message string) CalculationMessage {
	return CalculationMessage{Level: LevelCritical, Code: code, Message: message}
}

func Warning(code, message string) CalculationMessage {
	return CalculationMessage{Level: LevelWarning, Code: code, Message: message}
}
