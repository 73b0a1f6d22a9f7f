package seo

import (
	"fmt"
	"time"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// LastUpdatedLabel returns a human-readable freshness label for a piece of
// content. The updated timestamp wins when set; otherwise the created
// timestamp is used. Week and larger buckets always use the plural form.
func LastUpdatedLabel(createdAt, updatedAt time.Time) string {
	ts := updatedAt
	if ts.IsZero() {
		ts = createdAt
	}

	days := int(timeNow().Sub(ts).Hours() / 24)

	switch {
	case days <= 0:
		return "Updated today"
	case days == 1:
		return "Updated yesterday"
	case days < 7:
		return fmt.Sprintf("Updated %d days ago", days)
	case days < 30:
		return fmt.Sprintf("Updated %d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("Updated %d months ago", days/30)
	default:
		return fmt.Sprintf("Updated %d years ago", days/365)
	}
}
