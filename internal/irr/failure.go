package irr

import (
	"errors"
	"fmt"
)

var (
	ErrNoSignChange         = errors.New("cash flows need at least one outflow and one inflow")
	ErrNumericalInstability = errors.New("secant denominator too small")
	ErrOutOfBounds          = errors.New("rate estimate left the plausible range")
	ErrDidNotConverge       = errors.New("iteration limit reached without convergence")
)

type FailureKind int

const (
	NoSignChange FailureKind = iota + 1
	NumericalInstability
	OutOfBounds
	DidNotConverge
)

func (k FailureKind) String() string {
	switch k {
	case NoSignChange:
		return "NO_SIGN_CHANGE"
	case NumericalInstability:
		return "NUMERICAL_INSTABILITY"
	case OutOfBounds:
		return "OUT_OF_BOUNDS"
	case DidNotConverge:
		return "DID_NOT_CONVERGE"
	default:
		return "UNKNOWN"
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case NoSignChange:
		return ErrNoSignChange
	case NumericalInstability:
		return ErrNumericalInstability
	case OutOfBounds:
		return ErrOutOfBounds
	default:
		return ErrDidNotConverge
	}
}

// Failure describes why the secant search stopped without a root.
// Iterations and Rate are zero for NoSignChange, which fails before iterating.
type Failure struct {
	Kind       FailureKind
	Iterations int
	Rate       float64
}

func (f *Failure) Error() string {
	switch f.Kind {
	case NoSignChange:
		return "IRR requires at least one negative cash flow (outflow) and one positive cash flow (inflow)"
	case NumericalInstability:
		return fmt.Sprintf("IRR calculation failed after %d iterations: the NPV difference between estimates is too small to divide by", f.Iterations)
	case OutOfBounds:
		return fmt.Sprintf("IRR calculation failed after %d iterations: estimate %.4f is outside the plausible range (-99%% to 1000%%)", f.Iterations, f.Rate)
	default:
		return fmt.Sprintf("IRR calculation did not converge within %d iterations", f.Iterations)
	}
}

func (f *Failure) Unwrap() error { return f.Kind.sentinel() }
