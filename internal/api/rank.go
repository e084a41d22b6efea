package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arcadia-data/appraise/internal/authority"
	"github.com/arcadia-data/appraise/internal/config"
	"github.com/arcadia-data/appraise/internal/events"
	"github.com/arcadia-data/appraise/internal/scoring"
	"github.com/arcadia-data/appraise/internal/store"
)

type RankHandler struct {
	store     store.Store
	events    events.Client
	authority authority.Client
	defaults  scoring.WeightSet
	logger    *slog.Logger
}

func NewRankHandler(s store.Store, ev events.Client, auth authority.Client, cfg *config.Config, logger *slog.Logger) *RankHandler {
	return &RankHandler{
		store:     s,
		events:    ev,
		authority: auth,
		defaults:  defaultWeightSet(cfg),
		logger:    logger,
	}
}

// defaultWeightSet builds the configured fallback weights, dropping
// zero-weight criteria so they don't show up in breakdowns.
func defaultWeightSet(cfg *config.Config) scoring.WeightSet {
	w := cfg.Scoring.Weights
	ws := scoring.WeightSet{
		{Name: scoring.CriterionEthical, Weight: w.EthicalScore},
		{Name: scoring.CriterionTechnical, Weight: w.TechnicalScore},
		{Name: scoring.CriterionPopularity, Weight: w.PopularityScore},
		{Name: scoring.CriterionDataQuality, Weight: w.DataQuality},
	}
	return ws.Active()
}

type RankRequest struct {
	Weights    scoring.WeightSet `json:"weights,omitempty"`
	DatasetIDs []string          `json:"dataset_ids,omitempty"`
	// CriterionScores carries authoritative per-dataset scores supplied by
	// the caller; they win over both the authority service and the local
	// estimator.
	CriterionScores map[string]map[string]float64 `json:"criterion_scores,omitempty"`
}

type RankEntry struct {
	DatasetID uuid.UUID         `json:"dataset_id"`
	Name      string            `json:"name"`
	Score     float64           `json:"score"`
	Breakdown scoring.Breakdown `json:"breakdown"`
}

func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RankRequest
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

	candidates, names := h.buildCandidates(r, datasets, req.CriterionScores)

	ranked, err := scoring.Rank(candidates, ws)
	if err != nil {
		// Validation already passed above, so this is unexpected.
		if errors.Is(err, scoring.ErrInvalidWeightSet) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	entries := make([]RankEntry, len(ranked))
	for i, rc := range ranked {
		entries[i] = RankEntry{
			DatasetID: rc.Candidate.DatasetID,
			Name:      names[rc.Candidate.DatasetID],
			Score:     rc.Score,
			Breakdown: rc.Breakdown,
		}
	}

	rankingsTotal.Inc()
	rankDuration.Observe(time.Since(start).Seconds())

	if h.events != nil && len(entries) > 0 {
		criteria := make([]string, len(ws))
		for i, cw := range ws {
			criteria[i] = cw.Name
		}
		_ = h.events.Publish(events.SubjectRankingComputed, events.RankingComputedEvent{
			DatasetCount: len(entries),
			Criteria:     criteria,
			TopDatasetID: entries[0].DatasetID.String(),
			TopScore:     entries[0].Score,
			ComputedAt:   time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, entries)
}

// buildCandidates assembles scoring candidates, merging authoritative
// criterion scores: request-supplied values first, then the authority
// service for datasets the request didn't cover. Authority failures
// degrade to the local estimator; they never fail the ranking.
func (h *RankHandler) buildCandidates(r *http.Request, datasets []*store.Dataset, supplied map[string]map[string]float64) ([]scoring.Candidate, map[uuid.UUID]string) {
	names := make(map[uuid.UUID]string, len(datasets))

	var missing []uuid.UUID
	for _, d := range datasets {
		if _, ok := supplied[d.ID.String()]; !ok {
			missing = append(missing, d.ID)
		}
	}

	var fetched authority.CriterionScores
	if h.authority != nil && len(missing) > 0 {
		var err error
		fetched, err = h.authority.GetCriterionScores(r.Context(), missing)
		if err != nil {
			h.logger.Warn("authority unavailable, using local estimates", "error", err)
			fetched = nil
		}
	}

	candidates := make([]scoring.Candidate, len(datasets))
	for i, d := range datasets {
		names[d.ID] = d.Name
		auth := supplied[d.ID.String()]
		if auth == nil {
			auth = fetched[d.ID]
		}
		candidates[i] = scoring.Candidate{
			DatasetID:     d.ID,
			Metrics:       d.Metrics,
			Authoritative: auth,
		}
	}
	return candidates, names
}
