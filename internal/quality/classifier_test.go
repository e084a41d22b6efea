package quality

import (
	"math"
	"testing"
)

func TestIsTechnicalColumn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"id", true},
		{"ID", true},
		{"uuid", true},
		{"index", true},
		{"user_id", true},
		{"ORDER_ID", true},
		{"session_uuid", true},
		{"pk_customer", true},
		{"primary_key", true},
		{"primary_key_v2", true},
		{"row_number", true},
		{"serial", true},
		{"email", false},
		{"identifier", false}, // ^id$ is anchored
		{"ids", false},
		{"idea", false},
		{"age", false},
		{"uuid_format", false}, // _uuid$ and ^uuid$ only
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTechnicalColumn(tt.name); got != tt.want {
				t.Errorf("IsTechnicalColumn(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestClassifyExcludesTechnicalColumns(t *testing.T) {
	// Excluded regardless of how bad the missing percentage is.
	cols := []ColumnStat{
		{ColumnName: "user_id", DataType: "int", MissingCount: 90, TotalCount: 100},
		{ColumnName: "email", DataType: "string", MissingCount: 0, TotalCount: 100},
	}
	analyzed, excluded := Classify(cols)
	if len(excluded) != 1 || excluded[0] != "user_id" {
		t.Errorf("expected user_id excluded, got %v", excluded)
	}
	if len(analyzed) != 1 {
		t.Fatalf("expected 1 analyzed column, got %d", len(analyzed))
	}
	if analyzed[0].ColumnName != "email" {
		t.Errorf("expected email analyzed, got %s", analyzed[0].ColumnName)
	}
	if analyzed[0].MissingPercentage != 0 {
		t.Errorf("expected 0%% missing, got %f", analyzed[0].MissingPercentage)
	}
	if analyzed[0].Severity != SeverityLow {
		t.Errorf("expected low severity, got %s", analyzed[0].Severity)
	}
}

func TestClassifyZeroTotalCount(t *testing.T) {
	analyzed, _ := Classify([]ColumnStat{
		{ColumnName: "notes", DataType: "string", MissingCount: 0, TotalCount: 0},
	})
	if analyzed[0].MissingPercentage != 0 {
		t.Errorf("zero total must resolve to 0%%, got %f", analyzed[0].MissingPercentage)
	}
	if analyzed[0].Severity != SeverityLow {
		t.Errorf("expected low severity, got %s", analyzed[0].Severity)
	}
}

func TestSeverityBands(t *testing.T) {
	tests := []struct {
		missing int64
		total   int64
		want    Severity
	}{
		{0, 100, SeverityLow},
		{4, 100, SeverityLow},
		{5, 100, SeverityMedium}, // lower bound inclusive
		{14, 100, SeverityMedium},
		{15, 100, SeverityHigh},
		{29, 100, SeverityHigh},
		{30, 100, SeverityCritical},
		{100, 100, SeverityCritical},
	}
	for _, tt := range tests {
		analyzed, _ := Classify([]ColumnStat{
			{ColumnName: "age", DataType: "int", MissingCount: tt.missing, TotalCount: tt.total},
		})
		if analyzed[0].Severity != tt.want {
			t.Errorf("%d/%d missing: got %s, want %s", tt.missing, tt.total, analyzed[0].Severity, tt.want)
		}
	}
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		dataType string
		missing  int64
		want     string
	}{
		{"clean column", "string", 2, SuggestMinimalCleaning},
		{"numeric medium", "float", 10, SuggestImputeMean},
		{"integer medium", "INTEGER", 10, SuggestImputeMean},
		{"categorical medium", "string", 10, SuggestImputeMode},
		{"date medium", "date", 10, SuggestImputeMode},
		{"high band", "float", 20, SuggestCarefulAnalysis},
		{"critical band", "string", 60, SuggestColumnRemoval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzed, _ := Classify([]ColumnStat{
				{ColumnName: "value", DataType: tt.dataType, MissingCount: tt.missing, TotalCount: 100},
			})
			if analyzed[0].Suggestion != tt.want {
				t.Errorf("got %q, want %q", analyzed[0].Suggestion, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	cols := []ColumnStat{
		{ColumnName: "age", DataType: "int", MissingCount: 7, TotalCount: 50},
		{ColumnName: "city", DataType: "string", MissingCount: 3, TotalCount: 50},
	}
	first, _ := Classify(cols)
	second, _ := Classify(cols)
	for i := range first {
		if math.Abs(first[i].MissingPercentage-second[i].MissingPercentage) > 0 ||
			first[i].Severity != second[i].Severity ||
			first[i].Suggestion != second[i].Suggestion {
			t.Errorf("column %s classified differently across runs", first[i].ColumnName)
		}
	}
}
