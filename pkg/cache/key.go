package cache

import "strings"

// forbiddenKeyChars are the characters the document stores reject in key
// paths. Each occurrence is replaced with an underscore.
var forbiddenKeyChars = strings.NewReplacer(
	".", "_",
	"$", "_",
	"#", "_",
	"[", "_",
	"]", "_",
	"/", "_",
)

// SanitizeKey replaces every occurrence of `. $ # [ ] /` in raw with `_`.
//
// No semantic extraction happens here: two inputs map to the same key only
// if they are byte-identical after sanitization. Query strings, trailing
// slashes and host variants all produce distinct keys on purpose.
func SanitizeKey(raw string) string {
	return forbiddenKeyChars.Replace(raw)
}

// TweetKey builds the cache key for a tweet URL or identifier.
// Format: "tweet:" + sanitized input.
func TweetKey(urlOrID string) string {
	return "tweet:" + SanitizeKey(urlOrID)
}
