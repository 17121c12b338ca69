package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLongSection(t *testing.T) {
	s := NewLongSection(SectionItem{ID: "a", Type: "private"})
	assert.Equal(t, LayoutLong, s.Layout)
	require.Len(t, s.Items, 1)
	assert.Equal(t, "a", s.Items[0].ID)
}

func TestNewQuickLinksSection(t *testing.T) {
	items := []SectionItem{{ID: "a", Type: "private"}, {ID: "b", Type: "public"}}
	s, err := NewQuickLinksSection(items)
	require.NoError(t, err)
	assert.Equal(t, LayoutQuickLinks, s.Layout)
	assert.Equal(t, items, s.Items)
}

func TestNewQuickLinksSection_Empty(t *testing.T) {
	_, err := NewQuickLinksSection(nil)
	assert.Error(t, err)
}

func TestItemRef(t *testing.T) {
	c := &Candidate{ID: "a", Source: SourcePublic}
	ref := ItemRef(c)
	assert.Equal(t, SectionItem{ID: "a", Type: "public"}, ref)
}

func TestSectionJSONShape(t *testing.T) {
	s := NewLongSection(SectionItem{ID: "a", Type: "private"})
	payload, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"layout":"long","items":[{"id":"a","type":"private"}]}`, string(payload))
}
