package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/embedkit/tweetcard/pkg/twitter"
)

// SVG card layout metrics. The card is laid out top-down with a running
// y cursor; heights are fixed per block, only the text block varies.
const (
	svgWidth         = 600
	svgPadding       = 20.0
	svgAvatarSize    = 40.0
	svgFontSize      = 15.0
	svgLineHeight    = 20.0
	svgMaxTextLines  = 10
	svgMediaHeight   = 200.0
	svgActionsHeight = 40.0
	svgMinHeight     = 300.0

	svgErrorWidth  = 600
	svgErrorHeight = 200

	// Approximate glyph width as a fraction of the font size. No font
	// metrics are available at render time, so all horizontal placement
	// uses this constant.
	charWidthRatio = 0.6

	svgFontFamily = "system-ui, -apple-system, sans-serif"
)

const (
	verifiedBadgePath = `M22.5 12.5c0-1.58-.875-2.95-2.148-3.6.154-.435.238-.905.238-1.4 0-2.21-1.71-3.998-3.818-3.998-.47 0-.92.084-1.336.25C14.818 2.415 13.51 1.5 12 1.5s-2.816.917-3.437 2.25c-.415-.165-.866-.25-1.336-.25-2.11 0-3.818 1.79-3.818 4 0 .495.083.965.238 1.4-1.272.65-2.147 2.018-2.147 3.6 0 1.495.782 2.798 1.942 3.486-.02.17-.032.34-.032.514 0 2.21 1.708 4 3.818 4 .47 0 .92-.086 1.335-.25.62 1.334 1.926 2.25 3.437 2.25 1.512 0 2.818-.916 3.437-2.25.415.163.865.248 1.336.248 2.11 0 3.818-1.79 3.818-4 0-.174-.012-.344-.033-.513 1.158-.687 1.943-1.99 1.943-3.484zm-6.616-3.334l-4.334 6.5c-.145.217-.382.334-.625.334-.143 0-.288-.04-.416-.126l-.115-.094-2.415-2.415c-.293-.293-.293-.768 0-1.06s.768-.294 1.06 0l1.77 1.767 3.825-5.74c.23-.345.696-.436 1.04-.207.346.23.44.696.21 1.04z`
	xLogoPath         = `M18.244 2.25h3.308l-7.227 8.26 8.502 11.24H16.17l-5.214-6.817L4.99 21.75H1.68l7.73-8.835L1.254 2.25H8.08l4.713 6.231zm-1.161 17.52h1.833L7.084 4.126H5.117z`
	heartPath         = `M12 21.35l-1.45-1.32C5.4 15.36 2 12.28 2 8.5 2 5.42 4.42 3 7.5 3c1.74 0 3.41.81 4.5 2.09C13.09 3.81 14.76 3 16.5 3 19.58 3 22 5.42 22 8.5c0 3.78-3.4 6.86-8.55 11.54L12 21.35z`
	sharePath         = `M8.684 13.342C8.886 12.938 9 12.482 9 12c0-.482-.114-.938-.316-1.342m0 2.684a3 3 0 110-2.684m0 2.684l6.632 3.316a3 3 0 105.367-2.684l-6.632-3.316m0 0a3 3 0 105.368 2.684l-6.632-3.316m0 0v-2.684`
)

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeSVG escapes the five XML metacharacters. Distinct from
// EscapeHTML: XML wants &apos; for the apostrophe.
func EscapeSVG(s string) string {
	return svgEscaper.Replace(s)
}

// textWidth approximates the rendered pixel width of a string.
func textWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * charWidthRatio
}

// wrapText greedily packs space-separated words into lines whose
// approximate width stays under maxWidth, capped at svgMaxTextLines. A
// single word wider than the limit gets a line of its own.
func wrapText(text string, maxWidth float64, fontSize float64) []string {
	words := strings.Split(text, " ")
	var lines []string
	var current string

	for _, word := range words {
		test := word
		if current != "" {
			test = current + " " + word
		}
		if textWidth(test, fontSize) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = test
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > svgMaxTextLines {
		lines = lines[:svgMaxTextLines]
	}
	return lines
}

// RenderSVG renders a normalized tweet as a self-contained SVG card.
func RenderSVG(tweet *twitter.Tweet) string {
	contentX := svgPadding*2 + svgAvatarSize
	contentWidth := float64(svgWidth) - contentX - svgPadding
	maxTextWidth := contentWidth - 20

	y := svgPadding + 20
	textLines := wrapText(tweet.Text, maxTextWidth, svgFontSize)
	textHeight := float64(len(textLines)) * svgLineHeight

	mediaURL := firstMediaURL(tweet.Media)
	mediaHeight := 0.0
	if mediaURL != "" {
		mediaHeight = svgMediaHeight
	}

	totalHeight := svgPadding*2 + svgAvatarSize + textHeight + svgActionsHeight + svgPadding
	if mediaHeight > 0 {
		totalHeight += mediaHeight + 10
	}
	if totalHeight < svgMinHeight {
		totalHeight = svgMinHeight
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%d" height="%.0f" viewBox="0 0 %d %.0f" xmlns="http://www.w3.org/2000/svg">`+"\n",
		svgWidth, totalHeight, svgWidth, totalHeight)

	fmt.Fprintf(&buf, `  <rect width="%d" height="%.0f" fill="#ffffff" rx="12"/>`+"\n", svgWidth, totalHeight)

	// Avatar, clipped to a circle
	avatarCX := svgPadding + svgAvatarSize/2
	fmt.Fprintf(&buf, `  <defs><clipPath id="avatar-clip"><circle cx="%.0f" cy="%.0f" r="%.0f"/></clipPath></defs>`+"\n",
		avatarCX, avatarCX, svgAvatarSize/2)
	fmt.Fprintf(&buf, `  <image href="%s" x="%.0f" y="%.0f" width="%.0f" height="%.0f" clip-path="url(#avatar-clip)"/>`+"\n",
		EscapeSVG(tweet.Author.Avatar), svgPadding, svgPadding, svgAvatarSize, svgAvatarSize)

	// Author name, badge, handle. The handle offset is additive: name
	// width by the char heuristic plus a fixed badge allowance.
	nameWidth := textWidth(tweet.Author.Name, svgFontSize)
	fmt.Fprintf(&buf, `  <text x="%.0f" y="%.0f" font-family="%s" font-size="15" font-weight="600" fill="#0f1419">%s</text>`+"\n",
		contentX, y, svgFontFamily, EscapeSVG(tweet.Author.Name))

	handleX := contentX + nameWidth + 4
	if tweet.Author.Verified {
		fmt.Fprintf(&buf, `  <g transform="translate(%.1f, %.1f)"><path fill="#1d9bf0" d="%s"/></g>`+"\n",
			contentX+nameWidth+4, y-2, verifiedBadgePath)
		handleX += 22
	}
	fmt.Fprintf(&buf, `  <text x="%.1f" y="%.0f" font-family="%s" font-size="15" fill="#536471">@%s · %s</text>`+"\n",
		handleX, y, svgFontFamily, EscapeSVG(tweet.Author.Username), EscapeSVG(FormatRelativeTime(tweet.CreatedAt)))

	fmt.Fprintf(&buf, `  <g transform="translate(%.0f, %.0f)"><path fill="#536471" opacity="0.4" d="%s" transform="scale(0.8)"/></g>`+"\n",
		float64(svgWidth)-svgPadding-20, svgPadding+4, xLogoPath)

	// Body text
	fmt.Fprintf(&buf, `  <g transform="translate(%.0f, %.0f)">`+"\n", contentX, y+svgLineHeight+8)
	for i, line := range textLines {
		fmt.Fprintf(&buf, `    <text x="0" y="%.0f" font-family="%s" font-size="15" fill="#0f1419">%s</text>`+"\n",
			float64(i)*svgLineHeight, svgFontFamily, EscapeSVG(line))
	}
	buf.WriteString("  </g>\n")

	y += textHeight + svgLineHeight + 16

	if mediaURL != "" {
		fmt.Fprintf(&buf, `  <defs><clipPath id="media-clip"><rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" rx="12"/></clipPath></defs>`+"\n",
			contentX, y, maxTextWidth, mediaHeight)
		fmt.Fprintf(&buf, `  <image href="%s" x="%.0f" y="%.0f" width="%.0f" height="%.0f" preserveAspectRatio="xMidYMid slice" clip-path="url(#media-clip)"/>`+"\n",
			EscapeSVG(mediaURL), contentX, y, maxTextWidth, mediaHeight)
		y += mediaHeight + 10
	}

	// Action row
	y += 5
	fmt.Fprintf(&buf, `  <line x1="%.0f" y1="%.0f" x2="%.0f" y2="%.0f" stroke="#eff3f4" stroke-width="1"/>`+"\n",
		contentX, y, float64(svgWidth)-svgPadding, y)
	y += 15

	fmt.Fprintf(&buf, `  <g transform="translate(%.0f, %.0f)">`+"\n", contentX, y)
	fmt.Fprintf(&buf, `    <g transform="translate(9, 10)"><path d="%s" fill="none" stroke="#536471" stroke-width="1.5" transform="scale(0.65) translate(-12, -12)"/></g>`+"\n", heartPath)
	fmt.Fprintf(&buf, `    <text x="24" y="15" font-family="%s" font-size="14" fill="#536471">%s</text>`+"\n",
		svgFontFamily, FormatCount(tweet.Metrics.Likes))
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, `  <g transform="translate(%.0f, %.0f)">`+"\n", contentX+100, y)
	fmt.Fprintf(&buf, `    <g transform="translate(9, 10)"><path d="%s" fill="none" stroke="#536471" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round" transform="scale(0.65) translate(-12, -12)"/></g>`+"\n", sharePath)
	fmt.Fprintf(&buf, `    <text x="24" y="15" font-family="%s" font-size="14" fill="#536471">Share</text>`+"\n", svgFontFamily)
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>")
	return buf.String()
}

// RenderErrorSVG renders the fixed-size error card shown in place of a
// tweet. The request ID gives users something to quote when reporting.
func RenderErrorSVG(message, requestID string) string {
	if requestID == "" {
		requestID = "unknown"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", svgErrorWidth, svgErrorHeight)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#ffffff" rx="12"/>`+"\n", svgErrorWidth, svgErrorHeight)
	fmt.Fprintf(&buf, `  <text x="300" y="80" text-anchor="middle" font-family="system-ui" font-size="16" fill="#ef4444">%s</text>`+"\n", EscapeSVG(message))
	fmt.Fprintf(&buf, `  <text x="300" y="110" text-anchor="middle" font-family="system-ui" font-size="12" fill="#666666">ID: %s</text>`+"\n", EscapeSVG(requestID))
	buf.WriteString("</svg>")
	return buf.String()
}

// firstMediaURL picks the image shown in the media block: the first
// item's direct URL, falling back to its thumbnail for videos.
func firstMediaURL(items []twitter.MediaItem) string {
	if len(items) == 0 {
		return ""
	}
	if items[0].URL != "" {
		return items[0].URL
	}
	return items[0].Thumbnail
}
