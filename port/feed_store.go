package port

import (
	"context"

	"feed-composer/domain"
)

// FeedStore is the per-user persistent ordered structure the mixer's
// sections land in. Append assigns rank-scores, trims to capacity and
// drops expired entries in one atomic batch; Fetch pages downward from
// an optional exclusive rank ceiling.
type FeedStore interface {
	Append(ctx context.Context, userID string, sections []domain.Section) error
	Fetch(ctx context.Context, userID string, limit int, before *int64) ([]domain.FeedEntry, error)
}
