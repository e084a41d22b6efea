package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/arcadia-data/appraise/internal/config"
	"github.com/arcadia-data/appraise/internal/scoring"
	"github.com/arcadia-data/appraise/internal/store"
)

type MatrixHandler struct {
	store    store.Store
	defaults scoring.WeightSet
}

func NewMatrixHandler(s store.Store, cfg *config.Config) *MatrixHandler {
	return &MatrixHandler{store: s, defaults: defaultWeightSet(cfg)}
}

type MatrixRequest struct {
	Weights    scoring.WeightSet `json:"weights,omitempty"`
	DatasetIDs []string          `json:"dataset_ids,omitempty"`
}

type MatrixResponse struct {
	scoring.ScoreMatrix
	// Buckets classifies each cell for the renderer; same shape as Cells.
	Buckets [][]string `json:"buckets"`
}

func (h *MatrixHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req MatrixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ws := req.Weights
	if len(ws) == 0 {
		ws = h.defaults
	}
	if err := ws.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	filter := store.DatasetFilter{}
	for _, raw := range req.DatasetIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid dataset id: " + raw})
			return
		}
		filter.IDs = append(filter.IDs, id)
	}

	datasets, err := h.store.ListDatasets(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	candidates := make([]scoring.Candidate, len(datasets))
	for i, d := range datasets {
		candidates[i] = scoring.Candidate{DatasetID: d.ID, Metrics: d.Metrics}
	}

	m := scoring.BuildMatrix(candidates, ws.Active(), nil)

	buckets := make([][]string, len(m.Cells))
	for i, row := range m.Cells {
		buckets[i] = make([]string, len(row))
		for j, score := range row {
			buckets[i][j] = scoring.ColorBucket(score)
		}
	}

	writeJSON(w, http.StatusOK, MatrixResponse{ScoreMatrix: m, Buckets: buckets})
}
