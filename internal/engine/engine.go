package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"npv-engine/internal/calculations"
	"npv-engine/internal/model"
	"npv-engine/internal/validate"
)

func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()
	result := Evaluate(&req.CalculationInstructions)
	return Respond(req, result, start)
}

// Evaluate validates the raw instructions once and runs every requested
// calculation against the same input. It has no side effects.
func Evaluate(instr *model.CalculationInstructions) model.CalculationResult {
	var allMessages []model.CalculationMessage
	processed := []model.ProcessedCalculation{}

	input, err := validate.Validate(instr.DiscountRate, instr.CashFlows)
	if err != nil {
		code := model.CodeInvalidNumber
		if errors.Is(err, validate.ErrCashFlowCount) {
			code = model.CodeInvalidCashFlowCount
		}
		return model.CalculationResult{
			Messages:     []model.CalculationMessage{model.Critical(code, err.Error())},
			Calculations: processed,
		}
	}

	for _, name := range instr.Calculations {
		handler, ok := calculations.Get(name)
		if !ok {
			msg := model.Critical(model.CodeUnknownCalculation, fmt.Sprintf("Unknown calculation: %s", name))
			msg.ID = len(allMessages)
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedCalculation{
				Calculation:               name,
				CalculationMessageIndexes: []int{msg.ID},
			})
			continue
		}

		out, msgs := handler.Calculate(&input)
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			out.CalculationMessageIndexes = append(out.CalculationMessageIndexes, m.ID)
		}
		processed = append(processed, out)
	}

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return model.CalculationResult{
		Messages:     allMessages,
		Input:        model.NewInputEcho(input),
		Calculations: processed,
	}
}

// Respond wraps a result with fresh metadata. start is when handling began.
func Respond(req *model.CalculationRequest, result model.CalculationResult, start time.Time) *model.CalculationResponse {
	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     result.Outcome(),
		},
		CalculationResult: result,
	}
}
