package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/arcadia-data/appraise/internal/authority"
	"github.com/arcadia-data/appraise/internal/quality"
	"github.com/arcadia-data/appraise/internal/store"
)

// MockStore implements store.Store for handler tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateDataset(ctx context.Context, d *store.Dataset) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStore) GetDataset(ctx context.Context, id uuid.UUID) (*store.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Dataset), args.Error(1)
}

func (m *MockStore) ListDatasets(ctx context.Context, filter store.DatasetFilter) ([]*store.Dataset, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Dataset), args.Error(1)
}

func (m *MockStore) UpdateDataset(ctx context.Context, d *store.Dataset) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockStore) ReplaceColumnStats(ctx context.Context, datasetID uuid.UUID, cols []quality.ColumnStat) error {
	args := m.Called(ctx, datasetID, cols)
	return args.Error(0)
}

func (m *MockStore) GetColumnStats(ctx context.Context, datasetID uuid.UUID) ([]quality.ColumnStat, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]quality.ColumnStat), args.Error(1)
}

func (m *MockStore) SaveQualitySummary(ctx context.Context, datasetID uuid.UUID, overall int, level quality.QualityLevel) error {
	args := m.Called(ctx, datasetID, overall, level)
	return args.Error(0)
}

func (m *MockStore) ListStaleQuality(ctx context.Context, maxAge time.Duration, limit int) ([]*store.Dataset, error) {
	args := m.Called(ctx, maxAge, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Dataset), args.Error(1)
}

func (m *MockStore) GetStats(ctx context.Context) (*store.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.CatalogStats), args.Error(1)
}

func (m *MockStore) Close() error { return nil }

// MockEvents implements events.Client for testing.
type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockEvents) Subscribe(subject string, handler func(subject string, data []byte)) error {
	args := m.Called(subject, handler)
	return args.Error(0)
}

func (m *MockEvents) Close() {}

// MockAuthority implements authority.Client for testing.
type MockAuthority struct {
	mock.Mock
}

func (m *MockAuthority) GetCriterionScores(ctx context.Context, ids []uuid.UUID) (authority.CriterionScores, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(authority.CriterionScores), args.Error(1)
}
