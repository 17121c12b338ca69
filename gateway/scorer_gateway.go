package gateway

import (
	"context"

	"feed-composer/domain"
)

type ScorerDriver interface {
	ScoreItems(ctx context.Context, userID string, items map[string]domain.FeatureBundle) (map[string]float64, error)
}

// ScorerGateway adapts the scoring API driver to the Scorer port.
type ScorerGateway struct {
	driver ScorerDriver
}

func NewScorerGateway(driver ScorerDriver) *ScorerGateway {
	return &ScorerGateway{driver: driver}
}

func (g *ScorerGateway) ScoreItems(ctx context.Context, userID string, items map[string]domain.FeatureBundle) (map[string]float64, error) {
	scores, err := g.driver.ScoreItems(ctx, userID, items)
	if err != nil {
		return nil, &domain.ScorerError{
			Op:  "ScoreItems",
			Err: err.Error(),
		}
	}
	return scores, nil
}
