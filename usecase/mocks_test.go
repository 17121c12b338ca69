package usecase

import (
	"context"

	"feed-composer/domain"
	"feed-composer/port"
)

type mockLibrary struct {
	items     []port.LibraryItem
	err       error
	lastQuery port.LibraryQuery
}

func (m *mockLibrary) SearchUnseen(ctx context.Context, userID string, query port.LibraryQuery) ([]port.LibraryItem, error) {
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

type mockInventory struct {
	items     []*domain.Candidate
	err       error
	lastLimit int
}

func (m *mockInventory) UnseenItems(ctx context.Context, userID string, limit int) ([]*domain.Candidate, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if len(m.items) > limit {
		return m.items[:limit], nil
	}
	return m.items, nil
}

type mockSubscriptions struct {
	records   []port.SubscriptionRecord
	err       error
	lastNames []string
	calls     int
}

func (m *mockSubscriptions) FindByNames(ctx context.Context, userID string, names []string) ([]port.SubscriptionRecord, error) {
	m.calls++
	m.lastNames = names
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

type mockUsers struct {
	user *domain.User
	err  error
}

func (m *mockUsers) FindActiveUser(ctx context.Context, userID string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

type mockScorer struct {
	scores    map[string]float64
	err       error
	lastItems map[string]domain.FeatureBundle
	calls     int
}

func (m *mockScorer) ScoreItems(ctx context.Context, userID string, items map[string]domain.FeatureBundle) (map[string]float64, error) {
	m.calls++
	m.lastItems = items
	if m.err != nil {
		return nil, m.err
	}
	return m.scores, nil
}

type mockFeedStore struct {
	appended  [][]domain.Section
	entries   []domain.FeedEntry
	appendErr error
	fetchErr  error
}

func (m *mockFeedStore) Append(ctx context.Context, userID string, sections []domain.Section) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, sections)
	return nil
}

func (m *mockFeedStore) Fetch(ctx context.Context, userID string, limit int, before *int64) ([]domain.FeedEntry, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if len(m.entries) > limit {
		return m.entries[:limit], nil
	}
	return m.entries, nil
}
