package quality

import "math"

// QualityLevel classifies a dataset's overall missing-data health.
type QualityLevel string

const (
	LevelPerfect  QualityLevel = "perfect"
	LevelGood     QualityLevel = "good"
	LevelWarning  QualityLevel = "warning"
	LevelCritical QualityLevel = "critical"
)

// MissingDataScore is the dataset-level quality report. It is computed
// fresh from a column-stat snapshot and replaced wholesale on every
// analysis; nothing mutates one in place.
type MissingDataScore struct {
	OverallScore    int                  `json:"overall_score"` // 0–100
	TotalColumns    int                  `json:"total_columns"`
	AnalyzedColumns int                  `json:"analyzed_columns"`
	ExcludedColumns []string             `json:"excluded_columns"`
	ColumnStats     []ColumnMissingStats `json:"column_stats"`
	QualityLevel    QualityLevel         `json:"quality_level"`
}

// Aggregate rolls per-column classifications into one MissingDataScore.
// overall = round(100 - mean missing percentage over analyzed columns),
// clamped to [0,100]. Zero analyzed columns score a vacuously perfect 100:
// with nothing informative to analyze there is nothing to penalize.
func Aggregate(analyzed []ColumnMissingStats, excluded []string, totalColumns int) MissingDataScore {
	score := 100
	if len(analyzed) > 0 {
		var sum float64
		for _, c := range analyzed {
			sum += c.MissingPercentage
		}
		avg := sum / float64(len(analyzed))
		score = int(math.Round(100 - avg))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
	}
	return MissingDataScore{
		OverallScore:    score,
		TotalColumns:    totalColumns,
		AnalyzedColumns: len(analyzed),
		ExcludedColumns: excluded,
		ColumnStats:     analyzed,
		QualityLevel:    levelFor(score),
	}
}

// Analyze is the whole pipeline over one raw snapshot: classify, then
// aggregate. Total column count includes the excluded technical columns.
func Analyze(columns []ColumnStat) MissingDataScore {
	analyzed, excluded := Classify(columns)
	return Aggregate(analyzed, excluded, len(columns))
}

// levelFor bands an overall score: 100 perfect, >=80 good, >=50 warning,
// else critical.
func levelFor(score int) QualityLevel {
	switch {
	case score == 100:
		return LevelPerfect
	case score >= 80:
		return LevelGood
	case score >= 50:
		return LevelWarning
	default:
		return LevelCritical
	}
}
