package twitter

import "testing"

func TestExtractTweetID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"twitter.com", "https://twitter.com/alice/status/1234567890", "1234567890"},
		{"x.com", "https://x.com/alice/status/1234567890", "1234567890"},
		{"t.co", "https://t.co/abc123", "abc123"},
		{"no scheme", "twitter.com/bob/status/42", "42"},
		{"query string", "https://x.com/bob/status/42?s=20&t=xyz", "42"},
		{"mobile subdomain", "https://mobile.twitter.com/bob/status/42", "42"},
		{"empty", "", ""},
		{"plain text", "not a url", ""},
		{"profile url", "https://twitter.com/alice", ""},
		{"status without digits", "https://x.com/alice/status/", ""},
		{"unrelated host", "https://example.com/a/status/42", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTweetID(tt.input); got != tt.want {
				t.Errorf("ExtractTweetID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidTweetURL(t *testing.T) {
	if !IsValidTweetURL("https://x.com/a/status/1") {
		t.Error("valid URL rejected")
	}
	if IsValidTweetURL("https://example.com") {
		t.Error("invalid URL accepted")
	}
}

func TestNormalizeTweetURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"x.com to twitter.com", "https://x.com/alice/status/42", "https://twitter.com/alice/status/42"},
		{"twitter.com unchanged host", "https://twitter.com/bob/status/7", "https://twitter.com/bob/status/7"},
		{"t.co unrecoverable", "https://t.co/abc123", ""},
		{"invalid input", "nope", ""},
		{"query string stripped", "https://x.com/alice/status/42?s=20", "https://twitter.com/alice/status/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTweetURL(tt.input); got != tt.want {
				t.Errorf("NormalizeTweetURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
