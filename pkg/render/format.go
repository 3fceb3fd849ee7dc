package render

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCount abbreviates engagement counts the way the web client does:
// one decimal with an M suffix above a million, K above a thousand, the
// plain integer below that.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(n)
	}
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	// Legacy API timestamp shape, still seen in old records.
	"Mon Jan 02 15:04:05 -0700 2006",
}

func parseCreatedAt(s string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatRelativeTime renders a timestamp in compact relative form
// ("30s", "5m", "2h", "3d", "52w", "1y"). Unparseable input yields "".
func FormatRelativeTime(createdAt string) string {
	return relativeSince(createdAt, time.Now())
}

func relativeSince(createdAt string, now time.Time) string {
	t, ok := parseCreatedAt(createdAt)
	if !ok {
		return ""
	}

	secs := int64(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}

	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh", secs/3600)
	case secs < 604800:
		return fmt.Sprintf("%dd", secs/86400)
	case secs < 31536000:
		return fmt.Sprintf("%dw", secs/604800)
	default:
		return fmt.Sprintf("%dy", secs/31536000)
	}
}

// formatTimestamp renders the absolute footer timestamp. Unparseable
// input is passed through unchanged.
func formatTimestamp(createdAt string) string {
	t, ok := parseCreatedAt(createdAt)
	if !ok {
		return createdAt
	}
	return t.Format("3:04 PM · Jan 2, 2006")
}
