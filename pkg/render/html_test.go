package render

import (
	"strings"
	"testing"

	"github.com/embedkit/tweetcard/pkg/twitter"
)

func sampleTweet() *twitter.Tweet {
	return &twitter.Tweet{
		ID:        "42",
		URL:       "https://twitter.com/alice/status/42",
		Text:      "hello #world from @bob",
		CreatedAt: "2024-01-15T12:00:00.000Z",
		Author: twitter.Author{
			ID:       "7",
			Name:     "Alice",
			Username: "alice",
			Avatar:   "https://pbs.example/alice.jpg",
			Verified: true,
		},
		Metrics: twitter.Metrics{Likes: 1500},
	}
}

func TestRenderHTMLBasics(t *testing.T) {
	out := RenderHTML(sampleTweet(), Options{})

	for _, want := range []string{
		"<!DOCTYPE html>",
		`data-theme="light"`,
		`<span class="author-name">Alice</span>`,
		`<span class="author-handle">@alice</span>`,
		"verified-badge",
		`<span class="tweet-hashtag">#world</span>`,
		`<span class="tweet-mention">@bob</span>`,
		">1.5K</span>",
		`href="https://twitter.com/alice/status/42"`,
		"--tweet-width: 550px;",
		"--font-size: 15px;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderHTMLEscapesAuthor(t *testing.T) {
	tweet := sampleTweet()
	tweet.Author.Name = `<img onerror="x">`
	out := RenderHTML(tweet, Options{})
	if strings.Contains(out, `<img onerror`) {
		t.Fatal("author name embedded unescaped")
	}
	if !strings.Contains(out, "&lt;img onerror") {
		t.Error("escaped author name missing")
	}
}

func TestRenderHTMLOptions(t *testing.T) {
	tweet := sampleTweet()
	tweet.Media = []twitter.MediaItem{{Type: twitter.MediaPhoto, URL: "https://pbs.example/p.jpg"}}

	// Assertions use the rendered elements, not the class names alone;
	// the embedded stylesheet mentions every class regardless of options.
	t.Run("defaults show everything", func(t *testing.T) {
		out := RenderHTML(tweet, Options{})
		for _, want := range []string{
			`<div class="tweet-media-container">`,
			`<footer class="tweet-footer">`,
			`<div class="like-count">`,
			`<div class="timestamp">`,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("hide media", func(t *testing.T) {
		if strings.Contains(RenderHTML(tweet, Options{HideMedia: true}), `<div class="tweet-media-container">`) {
			t.Error("media rendered despite HideMedia")
		}
	})

	t.Run("hide footer omits metrics too", func(t *testing.T) {
		out := RenderHTML(tweet, Options{HideFooter: true})
		if strings.Contains(out, `<footer class="tweet-footer">`) || strings.Contains(out, `<div class="like-count">`) {
			t.Error("footer rendered despite HideFooter")
		}
	})

	t.Run("hide metrics keeps share link", func(t *testing.T) {
		out := RenderHTML(tweet, Options{HideMetrics: true})
		if strings.Contains(out, `<div class="like-count">`) {
			t.Error("metrics rendered despite HideMetrics")
		}
		if !strings.Contains(out, `class="share-link">View on X</a>`) {
			t.Error("share link missing")
		}
	})

	t.Run("hide timestamp", func(t *testing.T) {
		if strings.Contains(RenderHTML(tweet, Options{HideTimestamp: true}), `class="timestamp"`) {
			t.Error("timestamp rendered despite HideTimestamp")
		}
	})

	t.Run("theme and sizing", func(t *testing.T) {
		out := RenderHTML(tweet, Options{Theme: ThemeDim, Width: "400px", FontSize: FontLarge, AccentColor: "#ff0000"})
		for _, want := range []string{`data-theme="dim"`, "--tweet-width: 400px;", "--font-size: 18px;", "--accent-color: #ff0000;"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	})

	t.Run("transparent background", func(t *testing.T) {
		if !strings.Contains(RenderHTML(tweet, Options{BgTransparent: true}), "--bg-color: transparent;") {
			t.Error("background not transparent")
		}
	})
}

func TestRenderHTMLVideo(t *testing.T) {
	tweet := sampleTweet()
	tweet.Media = []twitter.MediaItem{{
		Type:      twitter.MediaVideo,
		Thumbnail: "https://pbs.example/poster.jpg",
		Variants: []any{
			map[string]any{"type": "application/x-mpegURL", "url": "https://v.example/pl.m3u8"},
			map[string]any{"type": "video/mp4", "url": "https://v.example/v.mp4"},
		},
	}}

	out := RenderHTML(tweet, Options{})
	if !strings.Contains(out, `<video src="https://v.example/v.mp4"`) {
		t.Errorf("mp4 variant not used: %q", out)
	}

	tweet.Media[0].Variants = []any{}
	out = RenderHTML(tweet, Options{})
	if !strings.Contains(out, "video-play-button") {
		t.Error("poster fallback missing play overlay")
	}
}
