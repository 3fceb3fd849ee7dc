package twitter

import "regexp"

// Accepted tweet URL shapes. The first capturing match wins.
var tweetIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`twitter\.com/\w+/status/(\d+)`),
	regexp.MustCompile(`x\.com/\w+/status/(\d+)`),
	regexp.MustCompile(`t\.co/(\w+)`),
}

var (
	shortLinkRe = regexp.MustCompile(`t\.co/`)
	usernameRe  = regexp.MustCompile(`(?:twitter\.com|x\.com)/(\w+)/status`)
)

// ExtractTweetID extracts the tweet identifier from a tweet URL.
// Supported shapes:
//   - https://twitter.com/username/status/1234567890
//   - https://x.com/username/status/1234567890
//   - https://t.co/abc123 (shortened)
//
// Returns "" for anything that matches none of them. Never panics on any
// input string.
func ExtractTweetID(url string) string {
	if url == "" {
		return ""
	}
	for _, re := range tweetIDPatterns {
		if m := re.FindStringSubmatch(url); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// IsValidTweetURL reports whether the input matches an accepted shape.
func IsValidTweetURL(url string) bool {
	return ExtractTweetID(url) != ""
}

// NormalizeTweetURL rebuilds the canonical twitter.com form of a tweet URL.
// Returns "" for t.co links (the username is unrecoverable) and for inputs
// ExtractTweetID rejects. The result is for display only; identifiers used
// for fetching always come from ExtractTweetID.
func NormalizeTweetURL(url string) string {
	id := ExtractTweetID(url)
	if id == "" {
		return ""
	}
	if shortLinkRe.MatchString(url) {
		return ""
	}
	m := usernameRe.FindStringSubmatch(url)
	if len(m) < 2 || m[1] == "" {
		return ""
	}
	return "https://twitter.com/" + m[1] + "/status/" + id
}
