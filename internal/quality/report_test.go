package quality

import "testing"

func TestAggregateEmptyIsVacuouslyPerfect(t *testing.T) {
	score := Aggregate(nil, nil, 0)
	if score.OverallScore != 100 {
		t.Errorf("expected 100, got %d", score.OverallScore)
	}
	if score.QualityLevel != LevelPerfect {
		t.Errorf("expected perfect, got %s", score.QualityLevel)
	}
	if score.AnalyzedColumns != 0 || score.TotalColumns != 0 {
		t.Errorf("expected zero counts, got %+v", score)
	}
}

func TestAggregateAllExcluded(t *testing.T) {
	// Technical columns only: still counted in TotalColumns, score stays 100.
	score := Analyze([]ColumnStat{
		{ColumnName: "id", DataType: "int", MissingCount: 50, TotalCount: 100},
		{ColumnName: "row_number", DataType: "int", MissingCount: 10, TotalCount: 100},
	})
	if score.OverallScore != 100 || score.QualityLevel != LevelPerfect {
		t.Errorf("expected 100/perfect, got %d/%s", score.OverallScore, score.QualityLevel)
	}
	if score.TotalColumns != 2 || score.AnalyzedColumns != 0 {
		t.Errorf("expected 2 total / 0 analyzed, got %d/%d", score.TotalColumns, score.AnalyzedColumns)
	}
	if len(score.ExcludedColumns) != 2 {
		t.Errorf("expected 2 excluded, got %v", score.ExcludedColumns)
	}
}

func TestAnalyzeRoundTrip(t *testing.T) {
	// 10 columns, 1 excluded technical id, one numeric column at 20% missing,
	// the other 8 clean: overall = round(100 - (20+0*8)/9) = 98, good.
	cols := []ColumnStat{
		{ColumnName: "id", DataType: "int", MissingCount: 0, TotalCount: 100},
		{ColumnName: "amount", DataType: "float", MissingCount: 20, TotalCount: 100},
	}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		cols = append(cols, ColumnStat{ColumnName: name, DataType: "string", MissingCount: 0, TotalCount: 100})
	}

	score := Analyze(cols)

	if score.TotalColumns != 10 {
		t.Errorf("expected 10 total columns, got %d", score.TotalColumns)
	}
	if score.AnalyzedColumns != 9 {
		t.Errorf("expected 9 analyzed columns, got %d", score.AnalyzedColumns)
	}
	if len(score.ExcludedColumns) != 1 || score.ExcludedColumns[0] != "id" {
		t.Errorf("expected [id] excluded, got %v", score.ExcludedColumns)
	}
	if score.OverallScore != 98 {
		t.Errorf("expected overall 98, got %d", score.OverallScore)
	}
	if score.QualityLevel != LevelGood {
		t.Errorf("expected good, got %s", score.QualityLevel)
	}
	if score.ColumnStats[0].Severity != SeverityHigh {
		t.Errorf("20%% missing should be high severity, got %s", score.ColumnStats[0].Severity)
	}
	if score.ColumnStats[0].Suggestion != SuggestCarefulAnalysis {
		t.Errorf("unexpected suggestion %q", score.ColumnStats[0].Suggestion)
	}
}

func TestQualityLevels(t *testing.T) {
	tests := []struct {
		missingPct float64
		wantScore  int
		wantLevel  QualityLevel
	}{
		{0, 100, LevelPerfect},
		{5, 95, LevelGood},
		{20, 80, LevelGood},
		{20.4, 80, LevelGood}, // round(79.6)
		{35, 65, LevelWarning},
		{50, 50, LevelWarning},
		{60, 40, LevelCritical},
		{100, 0, LevelCritical},
	}
	for _, tt := range tests {
		analyzed := []ColumnMissingStats{{ColumnName: "x", MissingPercentage: tt.missingPct}}
		score := Aggregate(analyzed, nil, 1)
		if score.OverallScore != tt.wantScore {
			t.Errorf("%.1f%% missing: score %d, want %d", tt.missingPct, score.OverallScore, tt.wantScore)
		}
		if score.QualityLevel != tt.wantLevel {
			t.Errorf("%.1f%% missing: level %s, want %s", tt.missingPct, score.QualityLevel, tt.wantLevel)
		}
	}
}

func TestAggregateAveragesAcrossColumns(t *testing.T) {
	analyzed := []ColumnMissingStats{
		{ColumnName: "a", MissingPercentage: 10},
		{ColumnName: "b", MissingPercentage: 30},
	}
	score := Aggregate(analyzed, nil, 2)
	if score.OverallScore != 80 {
		t.Errorf("expected round(100-20)=80, got %d", score.OverallScore)
	}
	if score.QualityLevel != LevelGood {
		t.Errorf("expected good, got %s", score.QualityLevel)
	}
}
