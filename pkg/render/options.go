package render

import "net/url"

// Theme selects the embed color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeDim   Theme = "dim"
	ThemeBlack Theme = "black"
)

// FontSize selects the embed text size tier.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Options controls the HTML embed output. Every field is optional and
// defaults independently; an unset field never fails, it falls back.
type Options struct {
	Theme         Theme
	HideMedia     bool
	HideMetrics   bool
	HideBorder    bool
	HideTimestamp bool
	BgTransparent bool
	Width         string
	AccentColor   string
	FontSize      FontSize
	HideFooter    bool
}

func (o Options) withDefaults() Options {
	if o.Theme == "" {
		o.Theme = ThemeLight
	}
	if o.Width == "" {
		o.Width = "550px"
	}
	if o.AccentColor == "" {
		o.AccentColor = "#1d9bf0"
	}
	if o.FontSize == "" {
		o.FontSize = FontMedium
	}
	return o
}

func (o Options) fontSizePx() string {
	switch o.FontSize {
	case FontSmall:
		return "14px"
	case FontLarge:
		return "18px"
	default:
		return "15px"
	}
}

// OptionsFromQuery parses embed options from request query parameters.
// Unknown or absent values map to the zero Options fields.
func OptionsFromQuery(q url.Values) Options {
	return Options{
		Theme:         Theme(q.Get("theme")),
		HideMedia:     q.Get("hide_media") == "true",
		HideMetrics:   q.Get("hide_metrics") == "true",
		HideBorder:    q.Get("hide_border") == "true",
		HideTimestamp: q.Get("hide_timestamp") == "true",
		BgTransparent: q.Get("bg_transparent") == "true",
		Width:         q.Get("width"),
		AccentColor:   q.Get("accent_color"),
		FontSize:      FontSize(q.Get("font_size")),
		HideFooter:    q.Get("hide_footer") == "true",
	}
}
