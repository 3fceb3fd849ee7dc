package render

import (
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the five HTML metacharacters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var (
	collapseNewlinesRe = regexp.MustCompile(`\n{3,}`)
	bareLinkRe         = regexp.MustCompile(`https?://[^\s]+`)
	mentionRe          = regexp.MustCompile(`@(\w+)`)
	// Hashtags must start with a letter or underscore so numeric
	// character entities emitted by the escape pass survive intact.
	hashtagRe = regexp.MustCompile(`#([a-zA-Z_]\w*)`)
)

// ProcessText prepares a tweet body for embedding in HTML. The passes run
// in fixed order over already-escaped text: collapse runs of three or
// more newlines to two, wrap bare http(s) tokens in anchors, wrap
// @mentions and #hashtags in styled spans, then turn lines opening with
// the escaped ">" marker into blockquotes. Escaping must come first so
// the markup injected by later passes is never itself escaped.
func ProcessText(text string) string {
	if text == "" {
		return ""
	}

	s := EscapeHTML(text)
	s = collapseNewlinesRe.ReplaceAllString(s, "\n\n")
	s = bareLinkRe.ReplaceAllString(s, `<a href="$0" target="_blank" rel="noopener noreferrer" class="tweet-link">$0</a>`)
	s = mentionRe.ReplaceAllString(s, `<span class="tweet-mention">@$1</span>`)
	s = hashtagRe.ReplaceAllString(s, `<span class="tweet-hashtag">#$1</span>`)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "&gt;") {
			lines[i] = `<div class="tweet-blockquote">` + trimmed[len("&gt;"):] + `</div>`
		}
	}
	return strings.Join(lines, "\n")
}
