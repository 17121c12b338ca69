package usecase

import (
	"context"

	"feed-composer/domain"
	"feed-composer/port"
)

const (
	// candidateBudget is the hard cap on candidates per job run.
	candidateBudget = 100
	// privateTake is the maximum number of private-library candidates.
	privateTake = 70
	// publicTake is the maximum number of public-inventory candidates.
	publicTake = 30
	// sourceQuerySize is the over-fetch size for both source queries.
	sourceQuerySize = 100
)

// SelectCandidatesUsecase merges a user's private unseen library items
// with unseen public-inventory items into one bounded candidate set.
// Read-only: source errors propagate, nothing is retried here.
type SelectCandidatesUsecase struct {
	library       port.LibrarySource
	inventory     port.PublicInventory
	subscriptions port.SubscriptionRepository
}

func NewSelectCandidatesUsecase(
	library port.LibrarySource,
	inventory port.PublicInventory,
	subscriptions port.SubscriptionRepository,
) *SelectCandidatesUsecase {
	return &SelectCandidatesUsecase{
		library:       library,
		inventory:     inventory,
		subscriptions: subscriptions,
	}
}

// Execute returns at most candidateBudget candidates: up to privateTake
// from the private library followed by up to publicTake from the public
// inventory, preserving each source's ordering.
func (u *SelectCandidatesUsecase) Execute(ctx context.Context, userID string) ([]*domain.Candidate, error) {
	private, err := u.selectPrivate(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := candidateBudget - len(private)
	if remaining > publicTake {
		remaining = publicTake
	}

	public, err := u.selectPublic(ctx, userID, remaining)
	if err != nil {
		return nil, err
	}

	return append(private, public...), nil
}

func (u *SelectCandidatesUsecase) selectPrivate(ctx context.Context, userID string) ([]*domain.Candidate, error) {
	items, err := u.library.SearchUnseen(ctx, userID, port.LibraryQuery{
		Size:           sourceQuerySize,
		IncludeContent: false,
	})
	if err != nil {
		return nil, err
	}

	if len(items) > privateTake {
		items = items[:privateTake]
	}

	candidates := make([]*domain.Candidate, 0, len(items))
	for i := range items {
		candidates = append(candidates, privateCandidate(&items[i]))
	}

	if err := u.annotateSubscriptions(ctx, userID, items, candidates); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (u *SelectCandidatesUsecase) selectPublic(ctx context.Context, userID string, budget int) ([]*domain.Candidate, error) {
	if budget <= 0 {
		return nil, nil
	}

	items, err := u.inventory.UnseenItems(ctx, userID, sourceQuerySize)
	if err != nil {
		return nil, err
	}

	if len(items) > budget {
		items = items[:budget]
	}

	return items, nil
}

// annotateSubscriptions resolves subscription records for the private
// candidates and attaches {name, type} where either the subscription
// name or URL matches. Unresolved subscriptions stay nil.
func (u *SelectCandidatesUsecase) annotateSubscriptions(ctx context.Context, userID string, items []port.LibraryItem, candidates []*domain.Candidate) error {
	names := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		name := items[i].SubscriptionName
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil
	}

	records, err := u.subscriptions.FindByNames(ctx, userID, names)
	if err != nil {
		return err
	}

	byName := make(map[string]port.SubscriptionRecord, len(records))
	byURL := make(map[string]port.SubscriptionRecord, len(records))
	for _, record := range records {
		byName[record.Name] = record
		if record.URL != "" {
			byURL[record.URL] = record
		}
	}

	for i := range items {
		record, ok := byName[items[i].SubscriptionName]
		if !ok && items[i].SubscriptionURL != "" {
			record, ok = byURL[items[i].SubscriptionURL]
		}
		if !ok {
			continue
		}
		candidates[i].Subscription = &domain.Subscription{
			Name: record.Name,
			Type: record.Type,
		}
	}

	return nil
}

func privateCandidate(item *port.LibraryItem) *domain.Candidate {
	return &domain.Candidate{
		ID:          item.ID,
		Title:       item.Title,
		URL:         item.URL,
		Source:      domain.SourcePrivate,
		Thumbnail:   item.Thumbnail,
		Preview:     item.Preview,
		SiteIcon:    item.SiteIcon,
		SiteName:    item.SiteName,
		Author:      item.Author,
		Folder:      item.Folder,
		Topic:       item.Topic,
		Language:    item.Language,
		Direction:   item.Direction,
		SavedAt:     item.SavedAt,
		PublishedAt: item.PublishedAt,
		WordCount:   item.WordCount,
		Score:       item.Score,
	}
}
