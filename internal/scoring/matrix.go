package scoring

import "github.com/google/uuid"

// Color bucket labels for matrix cells. Classification only; rendering is
// the consumer's problem.
const (
	BucketLow       = "low"
	BucketMedium    = "medium"
	BucketGood      = "good"
	BucketExcellent = "excellent"
)

// ScoreMatrix arranges per-criterion scores for a set of datasets into a
// rectangular layout for an external visualizer. Rows follow the candidate
// input order, columns the criterion input order; nothing is re-sorted.
type ScoreMatrix struct {
	Datasets []uuid.UUID `json:"datasets"`
	Criteria []string    `json:"criteria"`
	Cells    [][]float64 `json:"cells"` // Cells[row][col], row=dataset, col=criterion
}

// ScoreFn resolves the score for one (candidate, criterion) cell.
type ScoreFn func(c Candidate, criterion string) float64

// BuildMatrix fills a ScoreMatrix for the given candidates and active
// criteria. activeCriteria is typically WeightSet.Active(); scoreFn defaults
// to the authoritative-preferring resolver when nil.
func BuildMatrix(candidates []Candidate, activeCriteria WeightSet, scoreFn ScoreFn) ScoreMatrix {
	if scoreFn == nil {
		scoreFn = defaultCellScore
	}
	m := ScoreMatrix{
		Datasets: make([]uuid.UUID, len(candidates)),
		Criteria: make([]string, len(activeCriteria)),
		Cells:    make([][]float64, len(candidates)),
	}
	for j, cw := range activeCriteria {
		m.Criteria[j] = cw.Name
	}
	for i, c := range candidates {
		m.Datasets[i] = c.DatasetID
		row := make([]float64, len(activeCriteria))
		for j, cw := range activeCriteria {
			row[j] = scoreFn(c, cw.Name)
		}
		m.Cells[i] = row
	}
	return m
}

// defaultCellScore adapts criterionScore to the ScoreFn argument order.
func defaultCellScore(c Candidate, criterion string) float64 {
	return criterionScore(criterion, c)
}

// ColorBucket classifies a [0,1] score into one of four display buckets.
func ColorBucket(score float64) string {
	switch {
	case score < 0.30:
		return BucketLow
	case score < 0.60:
		return BucketMedium
	case score < 0.85:
		return BucketGood
	default:
		return BucketExcellent
	}
}
