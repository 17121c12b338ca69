package driver

import (
	"context"
)

// GetSubscriptionsByNames resolves a user's subscriptions by name.
// Names that resolve to no row are simply absent from the result.
func (d *DatabaseDriver) GetSubscriptionsByNames(ctx context.Context, userID string, names []string) ([]SubscriptionRow, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := `
		SELECT name, COALESCE(url, ''), type
		FROM subscriptions
		WHERE user_id = $1 AND name = ANY($2)
	`

	rows, err := d.pool.Query(ctx, query, userID, names)
	if err != nil {
		return nil, &DriverError{Op: "GetSubscriptionsByNames", Err: err.Error()}
	}
	defer rows.Close()

	var subscriptions []SubscriptionRow
	for rows.Next() {
		var sub SubscriptionRow
		if err := rows.Scan(&sub.Name, &sub.URL, &sub.Type); err != nil {
			return nil, &DriverError{Op: "GetSubscriptionsByNames", Err: err.Error()}
		}
		subscriptions = append(subscriptions, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, &DriverError{Op: "GetSubscriptionsByNames", Err: err.Error()}
	}

	return subscriptions, nil
}
