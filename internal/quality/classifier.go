// Package quality classifies per-column missing-data statistics and rolls
// them up into one dataset-level quality score. Everything here is a pure
// computation over an in-memory column-stat snapshot; callers own fetching
// and staleness.
package quality

import (
	"regexp"
	"strings"
)

// Severity classifies one column's missing-data proportion.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Cleaning suggestions attached to each severity band.
const (
	SuggestMinimalCleaning = "minimal cleaning"
	SuggestImputeMean      = "impute with mean"
	SuggestImputeMode      = "impute with mode"
	SuggestCarefulAnalysis = "careful analysis required"
	SuggestColumnRemoval   = "consider column removal"
)

// ColumnStat is the raw input for one column.
type ColumnStat struct {
	ColumnName   string `json:"column_name"`
	DataType     string `json:"data_type"`
	IsNullable   bool   `json:"is_nullable"`
	MissingCount int64  `json:"missing_count"`
	TotalCount   int64  `json:"total_count"`
}

// ColumnMissingStats is the classified output for one analyzed column.
type ColumnMissingStats struct {
	ColumnName        string   `json:"column_name"`
	DataType          string   `json:"data_type"`
	MissingCount      int64    `json:"missing_count"`
	TotalCount        int64    `json:"total_count"`
	MissingPercentage float64  `json:"missing_percentage"`
	Severity          Severity `json:"severity"`
	Suggestion        string   `json:"suggestion"`
}

// technicalColumnPatterns match identifier/index-like columns whose
// completeness says nothing about data quality.
var technicalColumnPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^id$`),
	regexp.MustCompile(`(?i)^uuid$`),
	regexp.MustCompile(`(?i)^index$`),
	regexp.MustCompile(`(?i)_id$`),
	regexp.MustCompile(`(?i)_uuid$`),
	regexp.MustCompile(`(?i)^pk_`),
	regexp.MustCompile(`(?i)^primary_key`),
	regexp.MustCompile(`(?i)^row_number$`),
	regexp.MustCompile(`(?i)^serial$`),
}

// numericTypes are the data types eligible for mean imputation.
var numericTypes = map[string]bool{
	"int":      true,
	"integer":  true,
	"smallint": true,
	"bigint":   true,
	"float":    true,
	"double":   true,
	"real":     true,
	"decimal":  true,
	"numeric":  true,
}

// IsTechnicalColumn reports whether a column name marks an identifier or
// index column excluded from quality analysis.
func IsTechnicalColumn(name string) bool {
	for _, p := range technicalColumnPatterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// IsNumericType reports whether a data type supports mean imputation.
func IsNumericType(dataType string) bool {
	return numericTypes[strings.ToLower(dataType)]
}

// Classify splits the columns into analyzed and excluded sets and grades
// each analyzed column by missing-data severity. Excluded column names come
// back in input order. The result depends only on the input snapshot; an
// unavailable true missing count is the caller's contract violation to fix,
// never something to fabricate here.
func Classify(columns []ColumnStat) (analyzed []ColumnMissingStats, excluded []string) {
	for _, col := range columns {
		if IsTechnicalColumn(col.ColumnName) {
			excluded = append(excluded, col.ColumnName)
			continue
		}
		analyzed = append(analyzed, classifyColumn(col))
	}
	return analyzed, excluded
}

func classifyColumn(col ColumnStat) ColumnMissingStats {
	pct := 0.0
	if col.TotalCount > 0 {
		pct = float64(col.MissingCount) / float64(col.TotalCount) * 100
	}
	return ColumnMissingStats{
		ColumnName:        col.ColumnName,
		DataType:          col.DataType,
		MissingCount:      col.MissingCount,
		TotalCount:        col.TotalCount,
		MissingPercentage: pct,
		Severity:          severityFor(pct),
		Suggestion:        suggestionFor(pct, col.DataType),
	}
}

// severityFor bands a missing percentage: [0,5) low, [5,15) medium,
// [15,30) high, [30,100] critical.
func severityFor(pct float64) Severity {
	switch {
	case pct < 5:
		return SeverityLow
	case pct < 15:
		return SeverityMedium
	case pct < 30:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

func suggestionFor(pct float64, dataType string) string {
	switch {
	case pct < 5:
		return SuggestMinimalCleaning
	case pct < 15:
		if IsNumericType(dataType) {
			return SuggestImputeMean
		}
		return SuggestImputeMode
	case pct < 30:
		return SuggestCarefulAnalysis
	default:
		return SuggestColumnRemoval
	}
}
