// Package cache memoises calculation results. Results are pure functions of
// their instructions, so a hit is indistinguishable from recomputing.
package cache

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"

	"npv-engine/internal/model"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
}

const keyPrefix = "npvcalc:result:"

// Key derives a stable cache key from the instructions.
func Key(instr *model.CalculationInstructions) (string, error) {
	b, err := json.Marshal(instr)
	if err != nil {
		return "", err
	}
	return keyPrefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}

// Load returns the cached result for instr, if any.
func Load(ctx context.Context, repo Repository, instr *model.CalculationInstructions) (model.CalculationResult, bool) {
	key, err := Key(instr)
	if err != nil {
		return model.CalculationResult{}, false
	}
	raw, ok := repo.Get(ctx, key)
	if !ok {
		return model.CalculationResult{}, false
	}
	var result model.CalculationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return model.CalculationResult{}, false
	}
	return result, true
}

// Store saves result under the key for instr.
func Store(ctx context.Context, repo Repository, instr *model.CalculationInstructions, result model.CalculationResult) error {
	key, err := Key(instr)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return repo.Set(ctx, key, raw)
}
