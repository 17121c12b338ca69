package gateway

import (
	"context"

	"feed-composer/domain"
	"feed-composer/driver"
	"feed-composer/port"
)

type LibrarySearchDriver interface {
	SearchUnseen(ctx context.Context, userID string, limit int, includeContent bool) ([]driver.LibraryItemDocument, error)
}

// LibraryGateway adapts the search driver to the LibrarySource port.
type LibraryGateway struct {
	driver LibrarySearchDriver
}

func NewLibraryGateway(driver LibrarySearchDriver) *LibraryGateway {
	return &LibraryGateway{driver: driver}
}

func (g *LibraryGateway) SearchUnseen(ctx context.Context, userID string, query port.LibraryQuery) ([]port.LibraryItem, error) {
	docs, err := g.driver.SearchUnseen(ctx, userID, query.Size, query.IncludeContent)
	if err != nil {
		return nil, &domain.RepositoryError{
			Op:  "SearchUnseen",
			Err: err.Error(),
		}
	}

	items := make([]port.LibraryItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, port.LibraryItem{
			ID:               doc.ID,
			Title:            doc.Title,
			URL:              doc.URL,
			Thumbnail:        doc.Thumbnail,
			Preview:          doc.Preview,
			SiteIcon:         doc.SiteIcon,
			SiteName:         doc.SiteName,
			Author:           doc.Author,
			Folder:           doc.Folder,
			Topic:            doc.Topic,
			Language:         doc.Language,
			Direction:        doc.Direction,
			SavedAt:          doc.SavedAt,
			PublishedAt:      doc.PublishedAt,
			WordCount:        doc.WordCount,
			Score:            doc.Score,
			SubscriptionName: doc.SubscriptionName,
			SubscriptionURL:  doc.SubscriptionURL,
		})
	}

	return items, nil
}
