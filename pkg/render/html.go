package render

import (
	"bytes"
	"fmt"

	"github.com/embedkit/tweetcard/pkg/twitter"
)

const verifiedBadgeHTML = `<svg viewBox="0 0 24 24" class="verified-badge" role="img" aria-label="Verified account">
            <path fill="currentColor" d="M22.5 12.5c0-1.58-.875-2.95-2.148-3.6.154-.435.238-.905.238-1.4 0-2.21-1.71-3.998-3.818-3.998-.47 0-.92.084-1.336.25C14.818 2.415 13.51 1.5 12 1.5s-2.816.917-3.437 2.25c-.415-.165-.866-.25-1.336-.25-2.11 0-3.818 1.79-3.818 4 0 .495.083.965.238 1.4-1.272.65-2.147 2.018-2.147 3.6 0 1.495.782 2.798 1.942 3.486-.02.17-.032.34-.032.514 0 2.21 1.708 4 3.818 4 .47 0 .92-.086 1.335-.25.62 1.334 1.926 2.25 3.437 2.25 1.512 0 2.818-.916 3.437-2.25.415.163.865.248 1.336.248 2.11 0 3.818-1.79 3.818-4 0-.174-.012-.344-.033-.513 1.158-.687 1.943-1.99 1.943-3.484zm-6.616-3.334l-4.334 6.5c-.145.217-.382.334-.625.334-.143 0-.288-.04-.416-.126l-.115-.094-2.415-2.415c-.293-.293-.293-.768 0-1.06s.768-.294 1.06 0l1.77 1.767 3.825-5.74c.23-.345.696-.436 1.04-.207.346.23.44.696.21 1.04z"/>
          </svg>`

const xLogoHTML = `<svg viewBox="0 0 300 271" class="x-logo" role="img" aria-label="X logo">
          <path fill="currentColor" d="m236 0h46l-101 115 118 156h-92.6l-72.5-94.8-83 94.8h-46l107-123-113-148h94.9l65.5 86.6zm-16.1 244h25.5l-165-218h-27.4z"/>
        </svg>`

const likeIconHTML = `<svg class="like-icon" fill="currentColor" viewBox="0 0 24 24">
              <path d="M20.884 13.19c-1.351 2.48-4.001 5.12-8.381 7.67-.19.11-.41.11-.6 0-4.38-2.55-7.03-5.19-8.381-7.67-1.15-2.11-1.1-4.65.14-6.52A6.155 6.155 0 018.783 4.5c1.11 0 2.25.3 3.217 1 0-.01 0-.02.001-.03.97-.7 2.11-1 3.22-1a6.16 6.16 0 015.11 2.17c1.24 1.87 1.253 4.41.153 6.55z"/>
            </svg>`

const htmlStaticCSS = `    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }

    body {
      font-family: var(--font-family);
      background: var(--bg-color);
      color: var(--text-main);
      display: flex;
      justify-content: center;
      align-items: center;
      min-height: 100vh;
      padding: 20px;
      line-height: 1.4;
    }

    .tweet-container {
      max-width: var(--tweet-width);
      width: 100%;
    }

    .tweet-header {
      display: flex;
      gap: 12px;
      margin-bottom: 12px;
    }

    .avatar {
      width: 48px;
      height: 48px;
      border-radius: 50%;
      object-fit: cover;
    }

    .author-meta {
      display: flex;
      flex-direction: column;
      flex: 1;
      min-width: 0;
    }

    .author-name-row {
      display: flex;
      align-items: center;
      gap: 4px;
    }

    .author-name {
      font-weight: 700;
      font-size: var(--font-size);
      white-space: nowrap;
      overflow: hidden;
      text-overflow: ellipsis;
    }

    .author-handle {
      color: var(--text-sub);
      font-size: var(--font-size);
      white-space: nowrap;
      overflow: hidden;
      text-overflow: ellipsis;
    }

    .verified-badge {
      width: 18px;
      height: 18px;
      color: var(--accent-color);
      flex-shrink: 0;
    }

    .x-logo {
      width: 18px;
      height: 18px;
      color: var(--text-main);
      margin-left: auto;
    }

    .tweet-text {
      font-size: var(--font-size);
      white-space: pre-wrap;
      word-wrap: break-word;
      margin-bottom: 12px;
    }

    .tweet-link, .tweet-mention, .tweet-hashtag {
      color: var(--link-color);
      text-decoration: none;
    }

    .tweet-link:hover {
      text-decoration: underline;
    }

    .tweet-blockquote {
      border-left: 3px solid var(--border-color);
      padding-left: 12px;
      margin: 8px 0;
      color: var(--text-sub);
    }

    .tweet-media-container {
      margin-top: 12px;
      border-radius: 12px;
      overflow: hidden;
      border: 1px solid var(--border-color);
      display: grid;
      gap: 2px;
    }

    .tweet-media {
      width: 100%;
      height: auto;
      max-height: 512px;
      object-fit: cover;
      display: block;
    }

    .video-container {
      position: relative;
      background: black;
    }

    .video-play-button {
      position: absolute;
      top: 50%;
      left: 50%;
      transform: translate(-50%, -50%);
      width: 60px;
      height: 60px;
      border-radius: 50%;
      background: rgba(0, 0, 0, 0.7);
      display: flex;
      align-items: center;
      justify-content: center;
    }

    .play-icon {
      width: 28px;
      height: 28px;
      color: #ffffff;
    }

    .tweet-footer {
      margin-top: 12px;
      padding-top: 12px;
      border-top: 1px solid var(--border-color);
      display: flex;
      justify-content: space-between;
      align-items: center;
    }

    .like-count {
      display: flex;
      align-items: center;
      gap: 6px;
      color: var(--text-sub);
      font-size: 14px;
      font-weight: 500;
    }

    .like-icon {
      width: 20px;
      height: 20px;
      color: var(--like-color);
    }

    .share-link {
      color: var(--link-color);
      text-decoration: none;
      font-size: 14px;
      font-weight: 600;
    }

    .timestamp {
      color: var(--text-sub);
      font-size: 14px;
      margin-top: 12px;
    }

    @media (max-width: 500px) {
      body { padding: 10px; }
      .tweet-card { border-radius: 0; border-left: none; border-right: none; }
    }`

// RenderHTML renders a normalized tweet as a full standalone HTML
// document. Author name, handle, and body text are escaped before
// embedding; the body additionally goes through ProcessText.
func RenderHTML(tweet *twitter.Tweet, opts Options) string {
	opts = opts.withDefaults()

	name := EscapeHTML(tweet.Author.Name)
	handle := EscapeHTML(tweet.Author.Username)
	avatar := EscapeHTML(tweet.Author.Avatar)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<!DOCTYPE html>
<html lang="en" data-theme="%s">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Tweet by %s (@%s)</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap" rel="stylesheet">
  <style>
`, opts.Theme, name, handle)

	writeThemeCSS(&buf, opts)
	buf.WriteString(htmlStaticCSS)
	buf.WriteString("\n  </style>\n</head>\n<body>\n")

	buf.WriteString("  <div class=\"tweet-container\">\n    <article class=\"tweet-card\">\n")

	// Header
	buf.WriteString("      <div class=\"tweet-header\">\n")
	fmt.Fprintf(&buf, "        <img src=\"%s\" alt=\"%s\" class=\"avatar\" />\n", avatar, name)
	buf.WriteString("        <div class=\"author-meta\">\n          <div class=\"author-name-row\">\n")
	fmt.Fprintf(&buf, "            <span class=\"author-name\">%s</span>\n", name)
	if tweet.Author.Verified {
		buf.WriteString("            " + verifiedBadgeHTML + "\n")
	}
	buf.WriteString("          </div>\n")
	fmt.Fprintf(&buf, "          <span class=\"author-handle\">@%s</span>\n", handle)
	buf.WriteString("        </div>\n        " + xLogoHTML + "\n      </div>\n")

	// Body
	buf.WriteString("      <div class=\"tweet-body\">\n")
	fmt.Fprintf(&buf, "        <div class=\"tweet-text\">%s</div>\n", ProcessText(tweet.Text))

	if !opts.HideMedia {
		if media := mediaHTML(tweet.Media); media != "" {
			fmt.Fprintf(&buf, "        <div class=\"tweet-media-container\">%s</div>\n", media)
		}
	}

	if !opts.HideTimestamp {
		fmt.Fprintf(&buf, "        <div class=\"timestamp\">%s</div>\n", EscapeHTML(formatTimestamp(tweet.CreatedAt)))
	}

	if !opts.HideFooter {
		buf.WriteString("        <footer class=\"tweet-footer\">\n")
		if !opts.HideMetrics {
			buf.WriteString("          <div class=\"like-count\">\n            " + likeIconHTML + "\n")
			fmt.Fprintf(&buf, "            <span>%s</span>\n          </div>\n", FormatCount(tweet.Metrics.Likes))
		} else {
			buf.WriteString("          <div></div>\n")
		}
		fmt.Fprintf(&buf, "          <a href=\"%s\" target=\"_blank\" rel=\"noopener noreferrer\" class=\"share-link\">View on X</a>\n", EscapeHTML(tweet.URL))
		buf.WriteString("        </footer>\n")
	}

	buf.WriteString("      </div>\n    </article>\n  </div>\n</body>\n</html>")
	return buf.String()
}

func writeThemeCSS(buf *bytes.Buffer, opts Options) {
	bg := func(color string) string {
		if opts.BgTransparent {
			return "transparent"
		}
		return color
	}
	shadow := func(s string) string {
		if opts.HideBorder {
			return "none"
		}
		return s
	}
	border := "1px solid var(--border-color)"
	if opts.HideBorder {
		border = "none"
	}

	fmt.Fprintf(buf, `    :root {
      --bg-color: %s;
      --card-bg: %s;
      --text-main: #0f1419;
      --text-sub: #536471;
      --border-color: #eff3f4;
      --accent-color: %s;
      --link-color: %s;
      --like-color: #f91880;
      --hover-bg: rgba(15, 20, 25, 0.1);
      --font-size: %s;
      --tweet-width: %s;
      --shadow: %s;
      --border-radius: 12px;
      --font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif;
    }

    [data-theme="dim"] {
      --bg-color: %s;
      --card-bg: %s;
      --text-main: #ffffff;
      --text-sub: #8b98a5;
      --border-color: #38444d;
      --hover-bg: rgba(255, 255, 255, 0.1);
      --shadow: %s;
    }

    [data-theme="dark"], [data-theme="black"] {
      --bg-color: %s;
      --card-bg: %s;
      --text-main: #e7e9ea;
      --text-sub: #71767b;
      --border-color: #2f3336;
      --hover-bg: rgba(255, 255, 255, 0.1);
      --shadow: none;
    }

    .tweet-card {
      background: var(--card-bg);
      border-radius: var(--border-radius);
      border: %s;
      padding: 16px;
      box-shadow: var(--shadow);
    }

`,
		bg("#ffffff"), bg("#ffffff"),
		opts.AccentColor, opts.AccentColor,
		opts.fontSizePx(), opts.Width,
		shadow("0 2px 12px rgba(0, 0, 0, 0.08)"),
		bg("#15202b"), bg("#15202b"),
		shadow("0 2px 12px rgba(0, 0, 0, 0.2)"),
		bg("#000000"), bg("#000000"),
		border,
	)
}

// mediaHTML renders the media block: photos as plain images, videos as a
// native player when an mp4 variant exists, otherwise a poster with a
// play overlay.
func mediaHTML(items []twitter.MediaItem) string {
	var buf bytes.Buffer
	for _, item := range items {
		switch {
		case item.Type == twitter.MediaPhoto && item.URL != "":
			fmt.Fprintf(&buf, `<img src="%s" alt="Tweet media" class="tweet-media" loading="lazy" />`, EscapeHTML(item.URL))
		case item.Type == twitter.MediaVideo:
			if videoURL := mp4VariantURL(item.Variants); videoURL != "" {
				fmt.Fprintf(&buf, `<div class="video-container"><video src="%s" poster="%s" class="tweet-media" controls playsinline preload="metadata"></video></div>`,
					EscapeHTML(videoURL), EscapeHTML(item.Thumbnail))
			} else {
				fmt.Fprintf(&buf, `<div class="video-container"><img src="%s" alt="Tweet video" class="tweet-media" loading="lazy" /><div class="video-play-button"><svg viewBox="0 0 24 24" class="play-icon"><path fill="currentColor" d="M8 5v14l11-7z"/></svg></div></div>`,
					EscapeHTML(item.Thumbnail))
			}
		}
	}
	return buf.String()
}

// mp4VariantURL digs the first mp4 URL out of the raw variant list. The
// provider labels the content type as either "type" or "content_type"
// depending on the record's age.
func mp4VariantURL(variants []any) string {
	for _, v := range variants {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		ct, _ := m["type"].(string)
		if ct == "" {
			ct, _ = m["content_type"].(string)
		}
		if ct != "video/mp4" {
			continue
		}
		if u, ok := m["url"].(string); ok {
			return u
		}
	}
	return ""
}
