// Package authority talks to the backend scoring service. When it answers,
// its per-criterion scores take precedence over the local estimator; when it
// is unreachable the caller falls back to local estimates.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CriterionScores maps dataset IDs to authoritative per-criterion scores.
type CriterionScores map[uuid.UUID]map[string]float64

type Client interface {
	GetCriterionScores(ctx context.Context, datasetIDs []uuid.UUID) (CriterionScores, error)
}

type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type scoresResponse struct {
	Datasets []struct {
		DatasetID       string             `json:"dataset_id"`
		CriterionScores map[string]float64 `json:"criterion_scores"`
	} `json:"datasets"`
}

func (c *HTTPClient) GetCriterionScores(ctx context.Context, datasetIDs []uuid.UUID) (CriterionScores, error) {
	body, err := json.Marshal(map[string]interface{}{"dataset_ids": datasetIDs})
	if err != nil {
		return nil, err
	}
	data, err := c.doReq(ctx, "POST", "/v1/scores/query", body)
	if err != nil {
		return nil, err
	}

	var resp scoresResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	scores := make(CriterionScores, len(resp.Datasets))
	for _, d := range resp.Datasets {
		id, err := uuid.Parse(d.DatasetID)
		if err != nil {
			continue
		}
		scores[id] = d.CriterionScores
	}
	return scores, nil
}

func (c *HTTPClient) doReq(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("authority %s %s: %d %s", method, path, resp.StatusCode, string(data))
	}
	return data, nil
}
