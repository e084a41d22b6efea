package scoring

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Candidate bundles everything needed to score one dataset. Authoritative
// carries per-criterion scores supplied by the upstream scoring service;
// when a criterion name is present there it takes precedence over the local
// estimator.
type Candidate struct {
	DatasetID     uuid.UUID          `json:"dataset_id"`
	Metrics       Metrics            `json:"metrics"`
	Authoritative map[string]float64 `json:"authoritative,omitempty"`
}

// Breakdown maps each criterion name to its sub-score, alongside the
// weighted composite.
type Breakdown struct {
	Criteria  map[string]float64 `json:"criteria"`
	Composite float64            `json:"composite"`
}

// RankedCandidate is one entry of a ranking: the candidate, its composite
// score, and the per-criterion breakdown behind it.
type RankedCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// criterionScore resolves one criterion for a candidate, preferring an
// authoritative value over the local estimate.
func criterionScore(name string, c Candidate) float64 {
	if v, ok := c.Authoritative[name]; ok {
		return clamp(v, 0, 1)
	}
	return Estimate(name, c.Metrics)
}

// Score computes the weighted composite for one candidate. The result is
// clamped to [0,1] so an un-normalized weight set summing above 1 cannot
// push a score out of range.
func Score(c Candidate, ws WeightSet) (float64, Breakdown) {
	bd := Breakdown{Criteria: make(map[string]float64, len(ws))}
	var total float64
	for _, cw := range ws {
		s := criterionScore(cw.Name, c)
		bd.Criteria[cw.Name] = s
		total += cw.Weight * s
	}
	bd.Composite = clamp(total, 0, 1)
	return bd.Composite, bd
}

// Rank scores every candidate against the weight set and returns them in
// non-increasing score order. Ties keep their original relative order; no
// secondary sort key is invented. An empty candidate list yields an empty
// ranking. A weight set that fails validation yields ErrInvalidWeightSet.
// Inputs are never mutated.
func Rank(candidates []Candidate, ws WeightSet) ([]RankedCandidate, error) {
	if err := ws.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeightSet, err)
	}
	norm := ws.Normalize()

	ranked := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		score, bd := Score(c, norm)
		ranked = append(ranked, RankedCandidate{Candidate: c, Score: score, Breakdown: bd})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}
