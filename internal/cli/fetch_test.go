package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTimestampLine(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	if got := formatTimestampLine(recent); !strings.HasSuffix(got, " ago") {
		t.Errorf("formatTimestampLine(%q) = %q, want relative form", recent, got)
	}
	if got := formatTimestampLine("not a timestamp"); got != "not a timestamp" {
		t.Errorf("unparseable input not passed through, got %q", got)
	}
}
