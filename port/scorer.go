package port

import (
	"context"

	"feed-composer/domain"
)

// Scorer is the external relevance-scoring service. One call scores a
// whole batch of candidates, keyed by candidate ID.
type Scorer interface {
	ScoreItems(ctx context.Context, userID string, items map[string]domain.FeatureBundle) (map[string]float64, error)
}
