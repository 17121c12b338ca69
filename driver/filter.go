package driver

import (
	"fmt"
	"strings"
)

// escapeFilterValue escapes special characters in Meilisearch filter values.
func escapeFilterValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	return value
}

// BuildUnseenLibraryFilter scopes a library search to one user's unseen
// items with a non-zero word count.
func BuildUnseenLibraryFilter(userID string) string {
	return fmt.Sprintf("user_id = \"%s\" AND seen = false AND word_count > 0", escapeFilterValue(userID))
}
