package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arcadia-data/appraise/internal/quality"
	"github.com/arcadia-data/appraise/internal/scoring"
)

// Dataset is one catalog entry: descriptive fields plus the scoring-relevant
// metric snapshot and the last persisted quality report summary.
type Dataset struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source,omitempty"`

	Metrics scoring.Metrics `json:"metrics"`

	// Last persisted missing-data summary; nil until first analysis.
	QualityScore      *int       `json:"quality_score,omitempty"`
	QualityLevel      string     `json:"quality_level,omitempty"`
	QualityComputedAt *time.Time `json:"quality_computed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DatasetFilter struct {
	Source string
	IDs    []uuid.UUID
	Limit  int
	Offset int
}

// CatalogStats summarizes the catalog for the admin endpoint.
type CatalogStats struct {
	TotalDatasets    int     `json:"total_datasets"`
	AnalyzedDatasets int     `json:"analyzed_datasets"`
	AvgQualityScore  float64 `json:"avg_quality_score"`
	CriticalDatasets int     `json:"critical_datasets"`
}

type Store interface {
	CreateDataset(ctx context.Context, d *Dataset) error
	GetDataset(ctx context.Context, id uuid.UUID) (*Dataset, error)
	ListDatasets(ctx context.Context, filter DatasetFilter) ([]*Dataset, error)
	UpdateDataset(ctx context.Context, d *Dataset) error

	ReplaceColumnStats(ctx context.Context, datasetID uuid.UUID, cols []quality.ColumnStat) error
	GetColumnStats(ctx context.Context, datasetID uuid.UUID) ([]quality.ColumnStat, error)

	// SaveQualitySummary persists the roll-up of a fresh MissingDataScore.
	SaveQualitySummary(ctx context.Context, datasetID uuid.UUID, overall int, level quality.QualityLevel) error
	// ListStaleQuality returns datasets whose quality summary is older than
	// maxAge (or was never computed), oldest first.
	ListStaleQuality(ctx context.Context, maxAge time.Duration, limit int) ([]*Dataset, error)

	GetStats(ctx context.Context) (*CatalogStats, error)

	Close() error
}
