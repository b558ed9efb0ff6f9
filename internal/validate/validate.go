package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"npv-engine/internal/model"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrCashFlowCount = errors.New("wrong number of cash flows")
)

const FieldDiscountRate = "discount_rate"

// ValidationError names the input field that failed to parse.
type ValidationError struct {
	Field string
	Value interface{}
	err   error
}

func (e *ValidationError) Error() string {
	if errors.Is(e.err, ErrCashFlowCount) {
		return fmt.Sprintf("%s: expected %d cash flows, got %v", e.Field, model.Periods, e.Value)
	}
	return fmt.Sprintf("%s: %q is not a finite number", e.Field, fmt.Sprint(e.Value))
}

func (e *ValidationError) Unwrap() error { return e.err }

// CashFlowField returns the field name of the cash flow at period t.
func CashFlowField(t int) string {
	return "cf" + strconv.Itoa(t)
}

// Validate parses a raw rate and five raw cash flows into a CalculationInput.
// Raw values may be strings or Go numeric types. No range checks are applied.
func Validate(rawRate interface{}, rawCashFlows []interface{}) (model.CalculationInput, error) {
	var in model.CalculationInput

	rate, ok := parse(rawRate)
	if !ok {
		return model.CalculationInput{}, &ValidationError{Field: FieldDiscountRate, Value: rawRate, err: ErrInvalidNumber}
	}
	in.DiscountRate = rate

	if len(rawCashFlows) != model.Periods {
		return model.CalculationInput{}, &ValidationError{Field: "cash_flows", Value: len(rawCashFlows), err: ErrCashFlowCount}
	}
	for t, raw := range rawCashFlows {
		cf, ok := parse(raw)
		if !ok {
			return model.CalculationInput{}, &ValidationError{Field: CashFlowField(t), Value: raw, err: ErrInvalidNumber}
		}
		in.CashFlows[t] = cf
	}

	return in, nil
}

// Strings is Validate for callers holding text fields, such as a form or CLI args.
func Strings(rate string, cashFlows []string) (model.CalculationInput, error) {
	raw := make([]interface{}, len(cashFlows))
	for i, s := range cashFlows {
		raw[i] = s
	}
	return Validate(rate, raw)
}

func parse(raw interface{}) (float64, bool) {
	var v float64
	switch x := raw.(type) {
	case string:
		s := strings.TrimSpace(x)
		if s == "" || !isDecimal(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int64:
		v = float64(x)
	case int32:
		v = float64(x)
	case fmt.Stringer:
		// json.Number and similar decoder number types
		return parse(x.String())
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// isDecimal rejects Go literal forms that strconv accepts but a decimal
// form field should not: hexadecimal floats and digit separators.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return !(len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'))
}
