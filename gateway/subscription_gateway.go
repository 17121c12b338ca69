package gateway

import (
	"context"

	"feed-composer/domain"
	"feed-composer/driver"
	"feed-composer/port"
)

type SubscriptionDriver interface {
	GetSubscriptionsByNames(ctx context.Context, userID string, names []string) ([]driver.SubscriptionRow, error)
}

// SubscriptionGateway adapts the subscriptions query to the
// SubscriptionRepository port.
type SubscriptionGateway struct {
	driver SubscriptionDriver
}

func NewSubscriptionGateway(driver SubscriptionDriver) *SubscriptionGateway {
	return &SubscriptionGateway{driver: driver}
}

func (g *SubscriptionGateway) FindByNames(ctx context.Context, userID string, names []string) ([]port.SubscriptionRecord, error) {
	rows, err := g.driver.GetSubscriptionsByNames(ctx, userID, names)
	if err != nil {
		return nil, &domain.RepositoryError{
			Op:  "FindByNames",
			Err: err.Error(),
		}
	}

	records := make([]port.SubscriptionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, port.SubscriptionRecord{
			Name: row.Name,
			URL:  row.URL,
			Type: row.Type,
		})
	}

	return records, nil
}
