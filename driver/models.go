package driver

import "time"

// LibraryItemDocument mirrors one document in the "library_items"
// search index.
type LibraryItemDocument struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	URL              string     `json:"url"`
	Thumbnail        string     `json:"thumbnail,omitempty"`
	Preview          string     `json:"preview,omitempty"`
	SiteIcon         string     `json:"site_icon,omitempty"`
	SiteName         string     `json:"site_name,omitempty"`
	Author           string     `json:"author,omitempty"`
	Folder           string     `json:"folder,omitempty"`
	Topic            string     `json:"topic,omitempty"`
	Language         string     `json:"language,omitempty"`
	Direction        string     `json:"directionality,omitempty"`
	SavedAt          time.Time  `json:"saved_at"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	WordCount        int        `json:"word_count"`
	Score            *float64   `json:"score,omitempty"`
	SubscriptionName string     `json:"subscription,omitempty"`
	SubscriptionURL  string     `json:"subscription_url,omitempty"`
}

// PublicItemRow mirrors one row of the shared public inventory query.
type PublicItemRow struct {
	ID          string
	Title       string
	URL         string
	Thumbnail   string
	SiteName    string
	Author      string
	Language    string
	Direction   string
	CreatedAt   time.Time
	PublishedAt *time.Time
	WordCount   int
}

// SubscriptionRow mirrors one row of the subscriptions table.
type SubscriptionRow struct {
	Name string
	URL  string
	Type string
}
