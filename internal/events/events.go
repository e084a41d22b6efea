package events

import "time"

type DatasetCreatedEvent struct {
	DatasetID string `json:"dataset_id"`
	Name      string `json:"name"`
	Source    string `json:"source,omitempty"`
}

type QualityComputedEvent struct {
	DatasetID       string    `json:"dataset_id"`
	OverallScore    int       `json:"overall_score"`
	QualityLevel    string    `json:"quality_level"`
	AnalyzedColumns int       `json:"analyzed_columns"`
	ExcludedColumns int       `json:"excluded_columns"`
	ComputedAt      time.Time `json:"computed_at"`
}

type RankingComputedEvent struct {
	DatasetCount int       `json:"dataset_count"`
	Criteria     []string  `json:"criteria"`
	TopDatasetID string    `json:"top_dataset_id,omitempty"`
	TopScore     float64   `json:"top_score,omitempty"`
	ComputedAt   time.Time `json:"computed_at"`
}

type ColumnsReplacedEvent struct {
	DatasetID   string `json:"dataset_id"`
	ColumnCount int    `json:"column_count"`
}
