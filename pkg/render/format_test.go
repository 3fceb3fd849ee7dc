package render

import (
	"testing"
	"time"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1.0K"},
		{1500, "1.5K"},
		{12500, "12.5K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{2340000, "2.3M"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRelativeSince(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"seconds", "2024-06-01T11:59:30.000Z", "30s"},
		{"minutes", "2024-06-01T11:55:00.000Z", "5m"},
		{"hours", "2024-06-01T10:00:00.000Z", "2h"},
		{"days", "2024-05-29T12:00:00.000Z", "3d"},
		{"weeks", "2024-05-01T12:00:00.000Z", "4w"},
		{"years", "2022-06-01T12:00:00.000Z", "2y"},
		{"future clamps to zero", "2024-06-02T12:00:00.000Z", "0s"},
		{"unparseable", "yesterday", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeSince(tt.in, now); got != tt.want {
				t.Errorf("relativeSince(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := formatTimestamp("2024-01-15T19:30:00.000Z"); got != "7:30 PM · Jan 15, 2024" {
		t.Errorf("formatTimestamp = %q", got)
	}
	if got := formatTimestamp("garbage"); got != "garbage" {
		t.Errorf("unparseable input not passed through: %q", got)
	}
}
