package scoring

import (
	"testing"

	"github.com/google/uuid"
)

func TestBuildMatrixPreservesOrdering(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	candidates := []Candidate{
		{DatasetID: a, Metrics: Metrics{NumCitations: int64Ptr(1000)}},
		{DatasetID: b, Metrics: Metrics{}},
	}
	criteria := WeightSet{
		{CriterionPopularity, 0.5},
		{CriterionEthical, 0.5},
	}

	m := BuildMatrix(candidates, criteria, nil)

	if len(m.Datasets) != 2 || m.Datasets[0] != a || m.Datasets[1] != b {
		t.Errorf("row order not preserved: %v", m.Datasets)
	}
	if len(m.Criteria) != 2 || m.Criteria[0] != CriterionPopularity || m.Criteria[1] != CriterionEthical {
		t.Errorf("column order not preserved: %v", m.Criteria)
	}
	if m.Cells[0][0] != 1.0 {
		t.Errorf("cell[0][0] = %f, want popularity 1.0", m.Cells[0][0])
	}
	if m.Cells[1][0] != 0.0 {
		t.Errorf("cell[1][0] = %f, want popularity 0.0", m.Cells[1][0])
	}
	if m.Cells[0][1] != NeutralEthicalScore {
		t.Errorf("cell[0][1] = %f, want neutral ethical %f", m.Cells[0][1], NeutralEthicalScore)
	}
}

func TestBuildMatrixCustomScoreFn(t *testing.T) {
	candidates := []Candidate{{DatasetID: uuid.New()}}
	criteria := WeightSet{{CriterionEthical, 1.0}}
	m := BuildMatrix(candidates, criteria, func(c Candidate, criterion string) float64 {
		return 0.42
	})
	if m.Cells[0][0] != 0.42 {
		t.Errorf("custom score fn ignored: got %f", m.Cells[0][0])
	}
}

func TestBuildMatrixEmptyInputs(t *testing.T) {
	m := BuildMatrix(nil, nil, nil)
	if len(m.Datasets) != 0 || len(m.Criteria) != 0 || len(m.Cells) != 0 {
		t.Errorf("expected empty matrix, got %+v", m)
	}
}

func TestColorBucket(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.0, BucketLow},
		{0.2, BucketLow},
		{0.29999, BucketLow},
		{0.30, BucketMedium},
		{0.5, BucketMedium},
		{0.60, BucketGood},
		{0.84, BucketGood},
		{0.85, BucketExcellent},
		{0.868, BucketExcellent},
		{0.95, BucketExcellent},
		{1.0, BucketExcellent},
	}
	for _, tt := range tests {
		if got := ColorBucket(tt.score); got != tt.want {
			t.Errorf("ColorBucket(%f) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
