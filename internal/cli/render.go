package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/embedkit/tweetcard/pkg/render"
	"github.com/embedkit/tweetcard/pkg/twitter"
)

// Output formats for the render command.
const (
	formatHTML = "html"
	formatSVG  = "svg"
	formatJSON = "json"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format        string // output format: html, svg, or json
	output        string // output file path, "-" for stdout
	theme         string // embed theme: light, dark, dim, black
	interactive   bool   // pick the theme interactively
	hideMedia     bool
	hideMetrics   bool
	hideBorder    bool
	hideTimestamp bool
	hideFooter    bool
	bgTransparent bool
	width         string
	accentColor   string
	fontSize      string
	timeoutMS     int
	lang          string
}

// newRenderCmd creates the render command that writes a tweet embed to
// a file or stdout.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <tweet-url>",
		Short: "Render a tweet to HTML, SVG, or JSON",
		Long: `Render fetches a tweet and writes it in the requested format.

The HTML output is a full standalone document; SVG is a fixed-width
card image; JSON is the normalized metadata. With --interactive the
theme is chosen from a list instead of the --theme flag.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatHTML, "output format: html, svg, or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (default tweet-<id>.<ext>, \"-\" for stdout)")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "light", "embed theme: light, dark, dim, or black")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the theme interactively")
	cmd.Flags().BoolVar(&opts.hideMedia, "hide-media", false, "omit photos and videos")
	cmd.Flags().BoolVar(&opts.hideMetrics, "hide-metrics", false, "omit like counts")
	cmd.Flags().BoolVar(&opts.hideBorder, "hide-border", false, "omit the card border and shadow")
	cmd.Flags().BoolVar(&opts.hideTimestamp, "hide-timestamp", false, "omit the timestamp line")
	cmd.Flags().BoolVar(&opts.hideFooter, "hide-footer", false, "omit the footer entirely")
	cmd.Flags().BoolVar(&opts.bgTransparent, "bg-transparent", false, "transparent background")
	cmd.Flags().StringVar(&opts.width, "width", "", "embed width (e.g. 550px)")
	cmd.Flags().StringVar(&opts.accentColor, "accent-color", "", "accent color (e.g. #1d9bf0)")
	cmd.Flags().StringVar(&opts.fontSize, "font-size", "", "text size tier: small, medium, or large")
	cmd.Flags().IntVar(&opts.timeoutMS, "timeout", 10000, "request timeout in milliseconds")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "response language tag")
	return cmd
}

func runRender(cmd *cobra.Command, url string, opts renderOpts) error {
	ctx := cmd.Context()

	switch opts.format {
	case formatHTML, formatSVG, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want html, svg, or json)", opts.format)
	}

	if opts.interactive {
		theme, err := pickTheme(opts.theme)
		if err != nil {
			return err
		}
		if theme == "" {
			printWarning("selection cancelled")
			return nil
		}
		opts.theme = theme
	}

	svc := twitter.NewService(twitter.Config{
		Language: opts.lang,
		Timeout:  time.Duration(opts.timeoutMS) * time.Millisecond,
	})

	sp := newSpinner(ctx, "Fetching tweet")
	sp.Start()
	tweet, err := svc.GetTweet(ctx, url)
	if err != nil {
		sp.StopWithError("Fetch failed")
		return err
	}
	sp.Stop()

	data, err := renderOutput(tweet, opts)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := opts.output
	if path == "" {
		path = "tweet-" + tweet.ID + "." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Rendered %s tweet by @%s", opts.format, tweet.Author.Username)
	printFile(path)
	return nil
}

func renderOutput(tweet *twitter.Tweet, opts renderOpts) ([]byte, error) {
	switch opts.format {
	case formatJSON:
		return json.MarshalIndent(tweet, "", "  ")
	case formatSVG:
		return []byte(render.RenderSVG(tweet)), nil
	default:
		htmlOpts := render.Options{
			Theme:         render.Theme(opts.theme),
			HideMedia:     opts.hideMedia,
			HideMetrics:   opts.hideMetrics,
			HideBorder:    opts.hideBorder,
			HideTimestamp: opts.hideTimestamp,
			HideFooter:    opts.hideFooter,
			BgTransparent: opts.bgTransparent,
			Width:         opts.width,
			AccentColor:   opts.accentColor,
			FontSize:      render.FontSize(opts.fontSize),
		}
		return []byte(render.RenderHTML(tweet, htmlOpts)), nil
	}
}
