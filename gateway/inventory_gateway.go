package gateway

import (
	"context"

	"feed-composer/domain"
	"feed-composer/driver"
)

type PublicItemDriver interface {
	GetUnseenPublicItems(ctx context.Context, userID string, limit int) ([]driver.PublicItemRow, error)
}

// InventoryGateway adapts the public-inventory query to the
// PublicInventory port, converting rows into public candidates.
type InventoryGateway struct {
	driver PublicItemDriver
}

func NewInventoryGateway(driver PublicItemDriver) *InventoryGateway {
	return &InventoryGateway{driver: driver}
}

func (g *InventoryGateway) UnseenItems(ctx context.Context, userID string, limit int) ([]*domain.Candidate, error) {
	rows, err := g.driver.GetUnseenPublicItems(ctx, userID, limit)
	if err != nil {
		return nil, &domain.RepositoryError{
			Op:  "UnseenItems",
			Err: err.Error(),
		}
	}

	candidates := make([]*domain.Candidate, 0, len(rows))
	for _, row := range rows {
		candidate, err := domain.NewCandidate(row.ID, row.Title, domain.SourcePublic, row.WordCount)
		if err != nil {
			return nil, &domain.RepositoryError{
				Op:  "UnseenItems",
				Err: "invalid public item: id=" + row.ID + ", " + err.Error(),
			}
		}

		candidate.URL = row.URL
		candidate.Thumbnail = row.Thumbnail
		candidate.SiteName = row.SiteName
		candidate.Author = row.Author
		candidate.Language = row.Language
		candidate.Direction = row.Direction
		candidate.SavedAt = row.CreatedAt
		candidate.PublishedAt = row.PublishedAt

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
