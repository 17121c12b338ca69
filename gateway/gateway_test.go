package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feed-composer/domain"
	"feed-composer/driver"
	"feed-composer/port"
)

type fakeSearchDriver struct {
	docs []driver.LibraryItemDocument
	err  error
}

func (f *fakeSearchDriver) SearchUnseen(ctx context.Context, userID string, limit int, includeContent bool) ([]driver.LibraryItemDocument, error) {
	return f.docs, f.err
}

type fakePublicItemDriver struct {
	rows []driver.PublicItemRow
	err  error
}

func (f *fakePublicItemDriver) GetUnseenPublicItems(ctx context.Context, userID string, limit int) ([]driver.PublicItemRow, error) {
	return f.rows, f.err
}

type fakeUserDriver struct {
	row *driver.UserRow
	err error
}

func (f *fakeUserDriver) GetActiveUser(ctx context.Context, userID string) (*driver.UserRow, error) {
	return f.row, f.err
}

func TestLibraryGateway_ConvertsDocuments(t *testing.T) {
	saved := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	score := 0.8
	fake := &fakeSearchDriver{docs: []driver.LibraryItemDocument{
		{
			ID:               "doc-1",
			Title:            "A Long Read",
			URL:              "https://example.com/a",
			SiteName:         "Example",
			Author:           "Ada",
			SavedAt:          saved,
			WordCount:        1200,
			Score:            &score,
			SubscriptionName: "Example Weekly",
		},
	}}

	g := NewLibraryGateway(fake)
	items, err := g.SearchUnseen(context.Background(), "user-1", port.LibraryQuery{Size: 50})
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "doc-1", item.ID)
	assert.Equal(t, "A Long Read", item.Title)
	assert.Equal(t, "Example", item.SiteName)
	assert.Equal(t, saved, item.SavedAt)
	assert.Equal(t, 1200, item.WordCount)
	require.NotNil(t, item.Score)
	assert.Equal(t, 0.8, *item.Score)
	assert.Equal(t, "Example Weekly", item.SubscriptionName)
}

func TestLibraryGateway_WrapsDriverError(t *testing.T) {
	g := NewLibraryGateway(&fakeSearchDriver{err: errors.New("index offline")})
	_, err := g.SearchUnseen(context.Background(), "user-1", port.LibraryQuery{Size: 50})
	require.Error(t, err)

	var repoErr *domain.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "SearchUnseen", repoErr.Op)
}

func TestInventoryGateway_BuildsPublicCandidates(t *testing.T) {
	created := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	fake := &fakePublicItemDriver{rows: []driver.PublicItemRow{
		{
			ID:        "pub-1",
			Title:     "Shared Story",
			URL:       "https://example.com/s",
			SiteName:  "Example",
			CreatedAt: created,
			WordCount: 340,
		},
	}}

	g := NewInventoryGateway(fake)
	candidates, err := g.UnseenItems(context.Background(), "user-1", 30)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "pub-1", c.ID)
	assert.Equal(t, domain.SourcePublic, c.Source)
	assert.Equal(t, created, c.SavedAt)
	assert.Equal(t, 340, c.WordCount)
}

func TestInventoryGateway_RejectsInvalidRow(t *testing.T) {
	fake := &fakePublicItemDriver{rows: []driver.PublicItemRow{
		{ID: "", Title: "Broken", WordCount: 10},
	}}

	g := NewInventoryGateway(fake)
	_, err := g.UnseenItems(context.Background(), "user-1", 30)

	var repoErr *domain.RepositoryError
	require.ErrorAs(t, err, &repoErr)
}

func TestUserGateway_MissingUserIsNotAnError(t *testing.T) {
	g := NewUserGateway(&fakeUserDriver{row: nil})
	user, err := g.FindActiveUser(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserGateway_MapsRow(t *testing.T) {
	g := NewUserGateway(&fakeUserDriver{row: &driver.UserRow{ID: "user-1", Active: true}})
	user, err := g.FindActiveUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.True(t, user.Active)
}

func TestUserGateway_WrapsDriverError(t *testing.T) {
	g := NewUserGateway(&fakeUserDriver{err: errors.New("db down")})
	_, err := g.FindActiveUser(context.Background(), "user-1")

	var repoErr *domain.RepositoryError
	require.ErrorAs(t, err, &repoErr)
	assert.Equal(t, "FindActiveUser", repoErr.Op)
}
