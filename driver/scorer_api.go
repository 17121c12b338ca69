package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"feed-composer/domain"
)

// ScorerAPIDriver calls the external relevance-scoring service. One
// request scores a whole batch of candidates keyed by ID.
type ScorerAPIDriver struct {
	baseURL string
	client  *http.Client
}

func NewScorerAPIDriver(baseURL string, timeout time.Duration) *ScorerAPIDriver {
	return &ScorerAPIDriver{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type scoreRequest struct {
	UserID string                          `json:"user_id"`
	Items  map[string]domain.FeatureBundle `json:"items"`
}

type scoreResponse struct {
	Scores map[string]struct {
		Score float64 `json:"score"`
	} `json:"scores"`
}

// ScoreItems posts the feature bundles and returns a score per
// candidate ID. No retry: a failed scoring call fails the ranking.
func (d *ScorerAPIDriver) ScoreItems(ctx context.Context, userID string, items map[string]domain.FeatureBundle) (map[string]float64, error) {
	if userID == "" {
		return nil, &DriverError{Op: "ScoreItems", Err: "user ID cannot be empty"}
	}
	if len(items) == 0 {
		return map[string]float64{}, nil
	}

	payload, err := json.Marshal(scoreRequest{UserID: userID, Items: items})
	if err != nil {
		return nil, &DriverError{Op: "ScoreItems", Err: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/batch", bytes.NewReader(payload))
	if err != nil {
		return nil, &DriverError{Op: "ScoreItems", Err: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &DriverError{Op: "ScoreItems", Err: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &DriverError{
			Op:  "ScoreItems",
			Err: fmt.Sprintf("scorer returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var decoded scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &DriverError{Op: "ScoreItems", Err: err.Error()}
	}

	scores := make(map[string]float64, len(decoded.Scores))
	for id, s := range decoded.Scores {
		scores[id] = s.Score
	}

	return scores, nil
}
