package render

import (
	"strings"
	"testing"
)

func TestProcessTextEscapes(t *testing.T) {
	out := ProcessText(`<script>alert("x")</script>`)
	if strings.Contains(out, "<script>") {
		t.Fatalf("unescaped script tag in output: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped script tag, got %q", out)
	}
}

func TestProcessTextLinkSingleAnchor(t *testing.T) {
	out := ProcessText("check https://a.b/c out")
	if got := strings.Count(out, "<a "); got != 1 {
		t.Fatalf("anchor count = %d, want 1: %q", got, out)
	}
	if !strings.Contains(out, `href="https://a.b/c"`) {
		t.Errorf("missing href: %q", out)
	}
}

func TestProcessTextMentionsAndHashtags(t *testing.T) {
	out := ProcessText("hi @alice check #golang")
	if !strings.Contains(out, `<span class="tweet-mention">@alice</span>`) {
		t.Errorf("mention not wrapped: %q", out)
	}
	if !strings.Contains(out, `<span class="tweet-hashtag">#golang</span>`) {
		t.Errorf("hashtag not wrapped: %q", out)
	}
}

func TestProcessTextApostropheEntitySurvives(t *testing.T) {
	out := ProcessText("it's fine")
	if !strings.Contains(out, "&#039;") {
		t.Fatalf("apostrophe entity missing: %q", out)
	}
	if strings.Contains(out, "tweet-hashtag") {
		t.Errorf("entity digits matched as hashtag: %q", out)
	}
}

func TestProcessTextCollapsesNewlines(t *testing.T) {
	out := ProcessText("a\n\n\n\n\nb")
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("newlines not collapsed: %q", out)
	}
	if !strings.Contains(out, "a\n\nb") {
		t.Errorf("expected two newlines, got %q", out)
	}
}

func TestProcessTextBlockquote(t *testing.T) {
	out := ProcessText("> quoted line\nplain line")
	if !strings.Contains(out, `<div class="tweet-blockquote"> quoted line</div>`) {
		t.Errorf("blockquote not rendered: %q", out)
	}
	if !strings.Contains(out, "plain line") {
		t.Errorf("plain line missing: %q", out)
	}
}

func TestProcessTextEmpty(t *testing.T) {
	if out := ProcessText(""); out != "" {
		t.Errorf("ProcessText(\"\") = %q, want \"\"", out)
	}
}
