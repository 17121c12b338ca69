package gateway

import (
	"context"

	"feed-composer/domain"
)

type FeedStoreDriver interface {
	Append(ctx context.Context, userID string, sections []domain.Section) error
	Fetch(ctx context.Context, userID string, limit int, before *int64) ([]domain.FeedEntry, error)
}

// FeedStoreGateway adapts the Redis feed store driver to the FeedStore
// port.
type FeedStoreGateway struct {
	driver FeedStoreDriver
}

func NewFeedStoreGateway(driver FeedStoreDriver) *FeedStoreGateway {
	return &FeedStoreGateway{driver: driver}
}

func (g *FeedStoreGateway) Append(ctx context.Context, userID string, sections []domain.Section) error {
	if err := g.driver.Append(ctx, userID, sections); err != nil {
		return &domain.FeedStoreError{
			Op:  "Append",
			Err: err.Error(),
		}
	}
	return nil
}

func (g *FeedStoreGateway) Fetch(ctx context.Context, userID string, limit int, before *int64) ([]domain.FeedEntry, error) {
	entries, err := g.driver.Fetch(ctx, userID, limit, before)
	if err != nil {
		return nil, &domain.FeedStoreError{
			Op:  "Fetch",
			Err: err.Error(),
		}
	}
	return entries, nil
}
