package domain

import (
	"errors"
	"time"
)

// SourceType identifies where a candidate was collected from.
type SourceType string

const (
	SourcePrivate SourceType = "private"
	SourcePublic  SourceType = "public"
)

// Subscription is the resolved origin subscription of a private candidate.
type Subscription struct {
	Name string
	Type string
}

// Candidate is a content item eligible for inclusion in a user's feed
// before ranking and packing. Candidates are built fresh on every job
// run and are never persisted.
type Candidate struct {
	ID           string
	Title        string
	URL          string
	Source       SourceType
	Thumbnail    string
	Preview      string
	SiteIcon     string
	SiteName     string
	Author       string
	Folder       string
	Topic        string
	Language     string
	Direction    string
	SavedAt      time.Time
	PublishedAt  *time.Time
	WordCount    int
	Score        *float64
	Subscription *Subscription
}

// NewCandidate validates the attributes ranking relies on.
func NewCandidate(id, title string, source SourceType, wordCount int) (*Candidate, error) {
	if id == "" {
		return nil, errors.New("candidate ID cannot be empty")
	}
	if source != SourcePrivate && source != SourcePublic {
		return nil, errors.New("candidate source must be private or public")
	}
	if wordCount < 0 {
		return nil, errors.New("candidate word count cannot be negative")
	}

	return &Candidate{
		ID:        id,
		Title:     title,
		Source:    source,
		WordCount: wordCount,
	}, nil
}

// HasScore reports whether a relevance score was precomputed upstream.
func (c *Candidate) HasScore() bool {
	return c.Score != nil
}

// Features derives the attribute subset sent to the external scorer.
func (c *Candidate) Features() FeatureBundle {
	var published *time.Time
	if c.PublishedAt != nil {
		t := *c.PublishedAt
		published = &t
	}

	var subscriptionType string
	if c.Subscription != nil {
		subscriptionType = c.Subscription.Type
	}

	return FeatureBundle{
		Title:            c.Title,
		HasThumbnail:     c.Thumbnail != "",
		HasSiteIcon:      c.SiteIcon != "",
		SavedAt:          c.SavedAt,
		Site:             c.SiteName,
		Language:         c.Language,
		Direction:        c.Direction,
		Folder:           c.Folder,
		SubscriptionType: subscriptionType,
		Author:           c.Author,
		WordCount:        c.WordCount,
		PublishedAt:      published,
	}
}

// FeatureBundle is the per-candidate payload of a scoring request.
// Derived from a Candidate, never stored.
type FeatureBundle struct {
	Title            string     `json:"title"`
	HasThumbnail     bool       `json:"has_thumbnail"`
	HasSiteIcon      bool       `json:"has_site_icon"`
	SavedAt          time.Time  `json:"saved_at"`
	Site             string     `json:"site,omitempty"`
	Language         string     `json:"language,omitempty"`
	Direction        string     `json:"directionality,omitempty"`
	Folder           string     `json:"folder,omitempty"`
	SubscriptionType string     `json:"subscription_type,omitempty"`
	Author           string     `json:"author,omitempty"`
	WordCount        int        `json:"word_count"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
}

// User is the owner of a feed. Only existence and activity matter to
// the refresh job.
type User struct {
	ID     string
	Active bool
}
