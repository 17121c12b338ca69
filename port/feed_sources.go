package port

import (
	"context"
	"time"

	"feed-composer/domain"
)

// LibraryQuery is the structured query issued against a user's private
// library. The search collaborator decides relevance/ordering and owns
// the user/seen scoping; callers only bound the result size.
type LibraryQuery struct {
	Size           int
	IncludeContent bool
}

// LibraryItem is one raw hit from the private library search.
type LibraryItem struct {
	ID               string
	Title            string
	URL              string
	Thumbnail        string
	Preview          string
	SiteIcon         string
	SiteName         string
	Author           string
	Folder           string
	Topic            string
	Language         string
	Direction        string
	SavedAt          time.Time
	PublishedAt      *time.Time
	WordCount        int
	Score            *float64
	SubscriptionName string
	SubscriptionURL  string
}

// LibrarySource searches a user's private saved items.
type LibrarySource interface {
	SearchUnseen(ctx context.Context, userID string, query LibraryQuery) ([]LibraryItem, error)
}

// PublicInventory lists shared public items the user has not seen.
type PublicInventory interface {
	UnseenItems(ctx context.Context, userID string, limit int) ([]*domain.Candidate, error)
}

// SubscriptionRecord is a resolved subscription row.
type SubscriptionRecord struct {
	Name string
	URL  string
	Type string
}

// SubscriptionRepository resolves subscription records by name for one
// user. Unknown names are simply absent from the result.
type SubscriptionRepository interface {
	FindByNames(ctx context.Context, userID string, names []string) ([]SubscriptionRecord, error)
}

// UserRepository looks up feed owners. A missing or inactive user is
// reported as (nil, nil), not as an error.
type UserRepository interface {
	FindActiveUser(ctx context.Context, userID string) (*domain.User, error)
}
