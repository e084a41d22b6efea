package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arcadia-data/appraise/internal/quality"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const datasetColumns = `id, name, description, source,
	informed_consent, transparency, user_control, equity_non_discrimination,
	security_measures_in_place, anonymization_applied, record_keeping_policy_exists,
	purpose_limitation_respected, accountability_defined,
	external_documentation_available, split, has_missing_values,
	instances_number, features_number, num_citations, global_missing_percentage,
	quality_score, quality_level, quality_computed_at,
	created_at, updated_at`

func (s *PostgresStore) CreateDataset(ctx context.Context, d *Dataset) error {
	m := d.Metrics
	return s.pool.QueryRow(ctx, `
		INSERT INTO catalog_datasets (name, description, source,
			informed_consent, transparency, user_control, equity_non_discrimination,
			security_measures_in_place, anonymization_applied, record_keeping_policy_exists,
			purpose_limitation_respected, accountability_defined,
			external_documentation_available, split, has_missing_values,
			instances_number, features_number, num_citations, global_missing_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at`,
		d.Name, d.Description, d.Source,
		m.InformedConsent, m.Transparency, m.UserControl, m.EquityNonDiscrimination,
		m.SecurityMeasuresInPlace, m.AnonymizationApplied, m.RecordKeepingPolicyExists,
		m.PurposeLimitationRespected, m.AccountabilityDefined,
		m.ExternalDocumentationAvailable, m.Split, m.HasMissingValues,
		m.InstancesNumber, m.FeaturesNumber, m.NumCitations, m.GlobalMissingPercentage,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (s *PostgresStore) GetDataset(ctx context.Context, id uuid.UUID) (*Dataset, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+datasetColumns+`
		FROM catalog_datasets WHERE id = $1`, id)
	d, err := scanDataset(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *PostgresStore) ListDatasets(ctx context.Context, filter DatasetFilter) ([]*Dataset, error) {
	query := `SELECT ` + datasetColumns + ` FROM catalog_datasets WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Source != "" {
		n++
		query += fmt.Sprintf(" AND source = $%d", n)
		args = append(args, filter.Source)
	}
	if len(filter.IDs) > 0 {
		n++
		query += fmt.Sprintf(" AND id = ANY($%d)", n)
		args = append(args, filter.IDs)
	}

	query += " ORDER BY created_at ASC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDatasets(rows)
}

func (s *PostgresStore) UpdateDataset(ctx context.Context, d *Dataset) error {
	m := d.Metrics
	_, err := s.pool.Exec(ctx, `
		UPDATE catalog_datasets SET
			name = $2, description = $3, source = $4,
			informed_consent = $5, transparency = $6, user_control = $7,
			equity_non_discrimination = $8, security_measures_in_place = $9,
			anonymization_applied = $10, record_keeping_policy_exists = $11,
			purpose_limitation_respected = $12, accountability_defined = $13,
			external_documentation_available = $14, split = $15, has_missing_values = $16,
			instances_number = $17, features_number = $18, num_citations = $19,
			global_missing_percentage = $20,
			updated_at = now()
		WHERE id = $1`,
		d.ID, d.Name, d.Description, d.Source,
		m.InformedConsent, m.Transparency, m.UserControl,
		m.EquityNonDiscrimination, m.SecurityMeasuresInPlace,
		m.AnonymizationApplied, m.RecordKeepingPolicyExists,
		m.PurposeLimitationRespected, m.AccountabilityDefined,
		m.ExternalDocumentationAvailable, m.Split, m.HasMissingValues,
		m.InstancesNumber, m.FeaturesNumber, m.NumCitations,
		m.GlobalMissingPercentage,
	)
	return err
}

func (s *PostgresStore) ReplaceColumnStats(ctx context.Context, datasetID uuid.UUID, cols []quality.ColumnStat) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_column_stats WHERE dataset_id = $1`, datasetID); err != nil {
		return err
	}
	for i, c := range cols {
		if _, err := tx.Exec(ctx, `
			INSERT INTO catalog_column_stats (dataset_id, position, column_name, data_type, is_nullable, missing_count, total_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			datasetID, i, c.ColumnName, c.DataType, c.IsNullable, c.MissingCount, c.TotalCount,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) GetColumnStats(ctx context.Context, datasetID uuid.UUID) ([]quality.ColumnStat, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT column_name, data_type, is_nullable, missing_count, total_count
		FROM catalog_column_stats WHERE dataset_id = $1
		ORDER BY position ASC`, datasetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []quality.ColumnStat
	for rows.Next() {
		var c quality.ColumnStat
		if err := rows.Scan(&c.ColumnName, &c.DataType, &c.IsNullable, &c.MissingCount, &c.TotalCount); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

func (s *PostgresStore) SaveQualitySummary(ctx context.Context, datasetID uuid.UUID, overall int, level quality.QualityLevel) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE catalog_datasets SET
			quality_score = $2, quality_level = $3, quality_computed_at = now(), updated_at = now()
		WHERE id = $1`,
		datasetID, overall, string(level),
	)
	return err
}

func (s *PostgresStore) ListStaleQuality(ctx context.Context, maxAge time.Duration, limit int) ([]*Dataset, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT `+datasetColumns+`
		FROM catalog_datasets
		WHERE quality_computed_at IS NULL OR quality_computed_at < now() - ($1 * interval '1 second')
		ORDER BY quality_computed_at ASC NULLS FIRST
		LIMIT $2`,
		maxAge.Seconds(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDatasets(rows)
}

func (s *PostgresStore) GetStats(ctx context.Context) (*CatalogStats, error) {
	stats := &CatalogStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(quality_score),
			COALESCE(AVG(quality_score), 0),
			COALESCE(SUM(CASE WHEN quality_level = 'critical' THEN 1 ELSE 0 END), 0)
		FROM catalog_datasets`,
	).Scan(&stats.TotalDatasets, &stats.AnalyzedDatasets, &stats.AvgQualityScore, &stats.CriticalDatasets)
	return stats, err
}

func scanDataset(row pgx.Row) (*Dataset, error) {
	d := &Dataset{}
	var qualityLevel *string
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.Source,
		&d.Metrics.InformedConsent, &d.Metrics.Transparency, &d.Metrics.UserControl,
		&d.Metrics.EquityNonDiscrimination, &d.Metrics.SecurityMeasuresInPlace,
		&d.Metrics.AnonymizationApplied, &d.Metrics.RecordKeepingPolicyExists,
		&d.Metrics.PurposeLimitationRespected, &d.Metrics.AccountabilityDefined,
		&d.Metrics.ExternalDocumentationAvailable, &d.Metrics.Split, &d.Metrics.HasMissingValues,
		&d.Metrics.InstancesNumber, &d.Metrics.FeaturesNumber, &d.Metrics.NumCitations,
		&d.Metrics.GlobalMissingPercentage,
		&d.QualityScore, &qualityLevel, &d.QualityComputedAt,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if qualityLevel != nil {
		d.QualityLevel = *qualityLevel
	}
	return d, nil
}

func scanDatasets(rows pgx.Rows) ([]*Dataset, error) {
	var datasets []*Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}
