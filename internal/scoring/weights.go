package scoring

import (
	"errors"
	"fmt"
	"math"
)

// normTolerance is the floating-point tolerance used when deciding whether a
// weight set is already normalized.
const normTolerance = 1e-9

var (
	ErrInvalidWeight      = errors.New("weight outside [0,1]")
	ErrDuplicateCriterion = errors.New("duplicate criterion name")
	ErrEmptyWeightSet     = errors.New("empty weight set")
	ErrInvalidWeightSet   = errors.New("invalid weight set")
)

// CriterionWeight pairs a criterion name with its relative importance.
type CriterionWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// WeightSet is an ordered sequence of uniquely named criterion weights.
// The sum need not be 1.0, but composite scores are only guaranteed to stay
// in [0,1] when it is (Score clamps as a guard either way).
type WeightSet []CriterionWeight

// DefaultWeights returns the built-in weight distribution used when the
// caller supplies no weights, or when normalization encounters a zero sum.
func DefaultWeights() WeightSet {
	return WeightSet{
		{Name: CriterionEthical, Weight: 0.4},
		{Name: CriterionTechnical, Weight: 0.4},
		{Name: CriterionPopularity, Weight: 0.2},
	}
}

// Sum returns the total of all weights.
func (ws WeightSet) Sum() float64 {
	var total float64
	for _, cw := range ws {
		total += cw.Weight
	}
	return total
}

// Validate checks that the set is non-empty, every weight lies in [0,1],
// and no criterion name repeats.
func (ws WeightSet) Validate() error {
	if len(ws) == 0 {
		return ErrEmptyWeightSet
	}
	seen := make(map[string]bool, len(ws))
	for _, cw := range ws {
		if cw.Weight < 0 || cw.Weight > 1 {
			return fmt.Errorf("%w: %s=%f", ErrInvalidWeight, cw.Name, cw.Weight)
		}
		if seen[cw.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateCriterion, cw.Name)
		}
		seen[cw.Name] = true
	}
	return nil
}

// Normalize returns a new WeightSet whose weights sum to exactly 1.0.
// A zero-sum input carries no ranking signal, so the built-in defaults are
// returned instead. Normalizing an already-normalized set returns an equal
// set (within normTolerance). The receiver is never mutated.
func (ws WeightSet) Normalize() WeightSet {
	sum := ws.Sum()
	if sum == 0 {
		return DefaultWeights()
	}
	if math.Abs(sum-1.0) <= normTolerance {
		out := make(WeightSet, len(ws))
		copy(out, ws)
		return out
	}
	out := make(WeightSet, len(ws))
	for i, cw := range ws {
		out[i] = CriterionWeight{Name: cw.Name, Weight: cw.Weight / sum}
	}
	return out
}

// Active returns the subset of the weight set with strictly positive weight,
// preserving order. Used to pick matrix columns.
func (ws WeightSet) Active() WeightSet {
	var out WeightSet
	for _, cw := range ws {
		if cw.Weight > 0 {
			out = append(out, cw)
		}
	}
	return out
}
