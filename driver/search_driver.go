package driver

import (
	"context"
	"encoding/json"

	"github.com/meilisearch/meilisearch-go"
)

// LibrarySearchDriver queries the private-library search index owned by
// the search collaborator. This service never writes to the index.
type LibrarySearchDriver struct {
	index meilisearch.IndexManager
}

func NewLibrarySearchDriver(client meilisearch.ServiceManager, indexName string) *LibrarySearchDriver {
	return &LibrarySearchDriver{
		index: client.Index(indexName),
	}
}

// SearchUnseen returns up to limit unseen library items for a user in
// the index's default ordering (most recently saved first).
func (d *LibrarySearchDriver) SearchUnseen(ctx context.Context, userID string, limit int, includeContent bool) ([]LibraryItemDocument, error) {
	attributes := []string{
		"id", "title", "url", "thumbnail", "site_icon", "site_name",
		"author", "folder", "topic", "language", "directionality",
		"saved_at", "published_at", "word_count", "score",
		"subscription", "subscription_url",
	}
	if includeContent {
		attributes = append(attributes, "preview")
	}

	searchRequest := &meilisearch.SearchRequest{
		Limit:                int64(limit),
		Filter:               BuildUnseenLibraryFilter(userID),
		AttributesToRetrieve: attributes,
	}

	result, err := d.index.SearchWithContext(ctx, "", searchRequest)
	if err != nil {
		return nil, &DriverError{
			Op:  "SearchUnseen",
			Err: err.Error(),
		}
	}

	docs := make([]LibraryItemDocument, 0, len(result.Hits))
	for _, hit := range result.Hits {
		raw, err := json.Marshal(hit)
		if err != nil {
			continue
		}

		var doc LibraryItemDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		if doc.ID == "" {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
