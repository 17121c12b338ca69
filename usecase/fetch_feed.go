package usecase

import (
	"context"
	"errors"

	"feed-composer/domain"
	"feed-composer/port"
)

const (
	fetchDefaultLimit = 20
	fetchMaxLimit     = 100
)

// FetchFeedUsecase is the independent retrieval path: it pages a user's
// stored feed downward by rank-score.
type FetchFeedUsecase struct {
	feedStore port.FeedStore
}

func NewFetchFeedUsecase(feedStore port.FeedStore) *FetchFeedUsecase {
	return &FetchFeedUsecase{feedStore: feedStore}
}

// Execute returns up to limit entries in descending rank order,
// strictly below the optional before cursor. Each entry carries its
// rank so callers can chain pages.
func (u *FetchFeedUsecase) Execute(ctx context.Context, userID string, limit int, before *int64) ([]domain.FeedEntry, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if limit <= 0 {
		limit = fetchDefaultLimit
	}
	if limit > fetchMaxLimit {
		limit = fetchMaxLimit
	}

	return u.feedStore.Fetch(ctx, userID, limit, before)
}
