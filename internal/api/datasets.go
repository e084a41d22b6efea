package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arcadia-data/appraise/internal/events"
	"github.com/arcadia-data/appraise/internal/quality"
	"github.com/arcadia-data/appraise/internal/scoring"
	"github.com/arcadia-data/appraise/internal/store"
)

type DatasetsHandler struct {
	store  store.Store
	events events.Client
}

func NewDatasetsHandler(s store.Store, ev events.Client) *DatasetsHandler {
	return &DatasetsHandler{store: s, events: ev}
}

type CreateDatasetRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Source      string          `json:"source,omitempty"`
	Metrics     scoring.Metrics `json:"metrics"`
}

func (h *DatasetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name required"})
		return
	}

	d := &store.Dataset{
		Name:        req.Name,
		Description: req.Description,
		Source:      req.Source,
		Metrics:     req.Metrics,
	}
	if err := h.store.CreateDataset(r.Context(), d); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectDatasetCreated(d.ID.String()), events.DatasetCreatedEvent{
			DatasetID: d.ID.String(),
			Name:      d.Name,
			Source:    d.Source,
		})
	}

	writeJSON(w, http.StatusCreated, d)
}

func (h *DatasetsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.DatasetFilter{
		Source: r.URL.Query().Get("source"),
	}

	datasets, err := h.store.ListDatasets(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if datasets == nil {
		datasets = []*store.Dataset{}
	}
	writeJSON(w, http.StatusOK, datasets)
}

func (h *DatasetsHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, d)
}

type ReplaceColumnsRequest struct {
	Columns []quality.ColumnStat `json:"columns"`
}

func (h *DatasetsHandler) ReplaceColumns(w http.ResponseWriter, r *http.Request) {
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

	var req ReplaceColumnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := h.store.ReplaceColumnStats(r.Context(), id, req.Columns); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectDatasetColumns(id.String()), events.ColumnsReplacedEvent{
			DatasetID:   id.String(),
			ColumnCount: len(req.Columns),
		})
	}

	writeJSON(w, http.StatusOK, map[string]int{"columns": len(req.Columns)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
