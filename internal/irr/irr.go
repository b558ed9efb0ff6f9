// Package irr finds the rate at which a cash-flow series has zero NPV using
// the secant method.
package irr

import (
	"math"

	"npv-engine/internal/model"
	"npv-engine/internal/npv"
)

const (
	seedLow       = 0.10
	seedHigh      = 0.20
	precision     = 1e-6
	minNpvDelta   = 1e-10
	maxIterations = 100
	upperBound    = 10.0
	lowerBound    = -0.99
)

// Objective is the NPV of flows at rate, or +Inf when rate <= -1.
func Objective(rate float64, flows [model.Periods]float64) float64 {
	if rate <= -1 {
		return math.Inf(1)
	}
	return npv.Sum(rate, flows)
}

type state int

const (
	iterating state = iota
	converged
	failedNoSignChange
	failedInstability
	failedOutOfBounds
	failedNoConvergence
)

type solver struct {
	flows        [model.Periods]float64
	rateA, rateB float64
	iteration    int
	state        state
}

// step runs one secant iteration and moves the solver to its next state.
func (s *solver) step() {
	npvA := Objective(s.rateA, s.flows)
	npvB := Objective(s.rateB, s.flows)

	if math.Abs(npvB) < precision {
		s.state = converged
		return
	}
	if math.Abs(npvB-npvA) < minNpvDelta {
		s.state = failedInstability
		return
	}

	rateC := s.rateB - npvB*((s.rateB-s.rateA)/(npvB-npvA))
	s.rateA, s.rateB = s.rateB, rateC

	if s.rateB > upperBound || s.rateB < lowerBound {
		s.state = failedOutOfBounds
		return
	}
	if s.iteration == maxIterations-1 {
		s.state = failedNoConvergence
		return
	}
	s.iteration++
}

func (s *solver) failure() *Failure {
	if s.state == failedNoSignChange {
		return &Failure{Kind: NoSignChange}
	}
	f := &Failure{Iterations: s.iteration + 1, Rate: s.rateB}
	switch s.state {
	case failedInstability:
		f.Kind = NumericalInstability
	case failedOutOfBounds:
		f.Kind = OutOfBounds
	default:
		f.Kind = DidNotConverge
	}
	return f
}

// Compute returns the IRR of input's cash flows and compares it with the
// input's discount rate. It fails with a *Failure when the flows do not change
// sign or the secant iteration aborts.
func Compute(input model.CalculationInput) (model.IrrResult, error) {
	s := solver{flows: input.CashFlows, rateA: seedLow, rateB: seedHigh}
	if !hasSignChange(s.flows) {
		s.state = failedNoSignChange
	}
	for s.state == iterating {
		s.step()
	}
	if s.state != converged {
		return model.IrrResult{}, s.failure()
	}

	return model.IrrResult{
		Rate:            s.rateB,
		VerificationNpv: Objective(s.rateB, s.flows),
		IterationsUsed:  s.iteration + 1,
		Decision:        model.Decide(s.rateB, input.DiscountRate),
	}, nil
}

func hasSignChange(flows [model.Periods]float64) bool {
	var neg, pos bool
	for _, cf := range flows {
		if cf < 0 {
			neg = true
		} else if cf > 0 {
			pos = true
		}
	}
	return neg && pos
}
