// Package sweeper keeps persisted quality summaries fresh: a background
// loop re-analyzes datasets whose missing-data score is stale and replaces
// the stored summary wholesale.
package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/arcadia-data/appraise/internal/config"
	"github.com/arcadia-data/appraise/internal/events"
	"github.com/arcadia-data/appraise/internal/quality"
	"github.com/arcadia-data/appraise/internal/store"
)

type Sweeper struct {
	store  store.Store
	events events.Client
	cfg    *config.Config
	logger *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func New(s store.Store, ev events.Client, cfg *config.Config, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		store:  s,
		events: ev,
		cfg:    cfg,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.loop(ctx)
}

func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.SweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass: fetch stale datasets, re-analyze their column
// snapshots, persist fresh summaries. Datasets without column stats are
// skipped, not scored; there is nothing truthful to score them with.
func (s *Sweeper) Sweep(ctx context.Context) {
	stale, err := s.store.ListStaleQuality(ctx, s.cfg.QualityMaxAge(), s.cfg.Sweeper.BatchSize)
	if err != nil {
		s.logger.Error("failed to list stale datasets", "error", err)
		return
	}

	for _, d := range stale {
		cols, err := s.store.GetColumnStats(ctx, d.ID)
		if err != nil {
			s.logger.Error("failed to load column stats", "dataset", d.ID, "error", err)
			continue
		}
		if len(cols) == 0 {
			continue
		}

		score := quality.Analyze(cols)
		if err := s.store.SaveQualitySummary(ctx, d.ID, score.OverallScore, score.QualityLevel); err != nil {
			s.logger.Error("failed to save quality summary", "dataset", d.ID, "error", err)
			continue
		}

		s.logger.Info("quality summary refreshed",
			"dataset", d.ID,
			"score", score.OverallScore,
			"level", score.QualityLevel,
		)

		if s.events != nil {
			_ = s.events.Publish(events.SubjectDatasetQuality(d.ID.String()), events.QualityComputedEvent{
				DatasetID:       d.ID.String(),
				OverallScore:    score.OverallScore,
				QualityLevel:    string(score.QualityLevel),
				AnalyzedColumns: score.AnalyzedColumns,
				ExcludedColumns: len(score.ExcludedColumns),
				ComputedAt:      time.Now().UTC(),
			})
		}
	}
}
