package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arcadia-data/appraise/internal/events"
	"github.com/arcadia-data/appraise/internal/quality"
	"github.com/arcadia-data/appraise/internal/store"
)

type QualityHandler struct {
	store  store.Store
	events events.Client
}

func NewQualityHandler(s store.Store, ev events.Client) *QualityHandler {
	return &QualityHandler{store: s, events: ev}
}

// Report handles GET /api/v1/datasets/{id}/quality: classify the stored
// column snapshot, persist the roll-up, return the full report.
func (h *QualityHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid dataset id"})
		return
	}

	d, err := h.store.GetDataset(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if d == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "dataset not found"})
		return
	}

	cols, err := h.store.GetColumnStats(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	score := quality.Analyze(cols)

	if err := h.store.SaveQualitySummary(r.Context(), id, score.OverallScore, score.QualityLevel); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	qualityReportsTotal.WithLabelValues(string(score.QualityLevel)).Inc()

	if h.events != nil {
		_ = h.events.Publish(events.SubjectDatasetQuality(id.String()), events.QualityComputedEvent{
			DatasetID:       id.String(),
			OverallScore:    score.OverallScore,
			QualityLevel:    string(score.QualityLevel),
			AnalyzedColumns: score.AnalyzedColumns,
			ExcludedColumns: len(score.ExcludedColumns),
			ComputedAt:      time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, score)
}

type AnalyzeRequest struct {
	Columns []quality.ColumnStat `json:"columns"`
}

// Analyze handles POST /api/v1/quality/analyze: the stateless fallback path
// for callers that already hold column statistics. Nothing is persisted and
// nothing is fabricated; the caller's snapshot is classified as-is.
func (h *QualityHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if len(req.Columns) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "columns required"})
		return
	}

	score := quality.Analyze(req.Columns)
	qualityReportsTotal.WithLabelValues(string(score.QualityLevel)).Inc()
	writeJSON(w, http.StatusOK, score)
}
