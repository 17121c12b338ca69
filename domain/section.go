package domain

import "errors"

// Section layouts. A "long" section wraps a single item; a
// "quick links" section wraps the remainder of a batch.
const (
	LayoutLong       = "long"
	LayoutQuickLinks = "quick links"
)

// SectionItem is a reference to an original item, carrying just enough
// to resolve it later. The full candidate payload is never persisted.
type SectionItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Section is the atomic unit persisted to the feed store and served to
// clients. Immutable once stored.
type Section struct {
	Layout string        `json:"layout"`
	Items  []SectionItem `json:"items"`
}

// NewLongSection wraps a single candidate reference.
func NewLongSection(item SectionItem) Section {
	return Section{Layout: LayoutLong, Items: []SectionItem{item}}
}

// NewQuickLinksSection wraps the remaining members of a batch.
func NewQuickLinksSection(items []SectionItem) (Section, error) {
	if len(items) == 0 {
		return Section{}, errors.New("quick links section requires at least one item")
	}
	return Section{Layout: LayoutQuickLinks, Items: items}, nil
}

// ItemRef builds the stored reference for a candidate.
func ItemRef(c *Candidate) SectionItem {
	return SectionItem{ID: c.ID, Type: string(c.Source)}
}

// FeedEntry pairs a stored section with its synthetic rank-score. The
// rank encodes insertion order plus the expiry horizon, not relevance.
type FeedEntry struct {
	Section Section
	Rank    int64
}
