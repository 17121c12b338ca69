package driver

import (
	"context"
)

// GetUnseenPublicItems returns shared public-inventory items the user
// has not interacted with, newest first.
func (d *DatabaseDriver) GetUnseenPublicItems(ctx context.Context, userID string, limit int) ([]PublicItemRow, error) {
	query := `
		SELECT p.id, p.title, p.url,
			   COALESCE(p.thumbnail, ''), COALESCE(p.site_name, ''),
			   COALESCE(p.author, ''), COALESCE(p.language, ''),
			   COALESCE(p.directionality, ''),
			   p.created_at, p.published_at, p.word_count
		FROM public_items p
		WHERE p.word_count > 0
		  AND NOT EXISTS (
			  SELECT 1 FROM public_item_interactions i
			  WHERE i.public_item_id = p.id AND i.user_id = $1
		  )
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2
	`

	rows, err := d.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, &DriverError{Op: "GetUnseenPublicItems", Err: err.Error()}
	}
	defer rows.Close()

	var items []PublicItemRow
	for rows.Next() {
		var item PublicItemRow
		err := rows.Scan(
			&item.ID, &item.Title, &item.URL,
			&item.Thumbnail, &item.SiteName,
			&item.Author, &item.Language, &item.Direction,
			&item.CreatedAt, &item.PublishedAt, &item.WordCount,
		)
		if err != nil {
			return nil, &DriverError{Op: "GetUnseenPublicItems", Err: err.Error()}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, &DriverError{Op: "GetUnseenPublicItems", Err: err.Error()}
	}

	return items, nil
}
