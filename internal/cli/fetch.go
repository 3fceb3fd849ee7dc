package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/embedkit/tweetcard/pkg/render"
	"github.com/embedkit/tweetcard/pkg/twitter"
)

// newFetchCmd creates the fetch command that prints a tweet summary to
// the terminal.
func newFetchCmd() *cobra.Command {
	var (
		timeoutMS int
		lang      string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <tweet-url>",
		Short: "Fetch a tweet and print a summary card",
		Long: `Fetch retrieves tweet metadata from the syndication endpoint and
prints it as a terminal card, or as indented JSON with --json.

Accepted URL shapes:
  https://twitter.com/username/status/1234567890
  https://x.com/username/status/1234567890
  https://t.co/abc123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			svc := twitter.NewService(twitter.Config{
				Language: lang,
				Timeout:  time.Duration(timeoutMS) * time.Millisecond,
			})

			logger.Debug("fetching tweet", "url", args[0])
			sp := newSpinner(ctx, "Fetching tweet")
			sp.Start()
			tweet, err := svc.GetTweet(ctx, args[0])
			if err != nil {
				sp.StopWithError("Fetch failed")
				return err
			}
			sp.Stop()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tweet)
			}

			printTweetCard(tweet)
			return nil
		},
	}

	cmd.Flags().IntVar(&timeoutMS, "timeout", 10000, "request timeout in milliseconds")
	cmd.Flags().StringVar(&lang, "lang", "en", "response language tag")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a card")
	return cmd
}

func printTweetCard(t *twitter.Tweet) {
	name := StyleTitle.Render(t.Author.Name)
	if t.Author.Verified {
		name += " " + styleVerified.Render(iconVerified)
	}
	meta := styleHandle.Render("@" + t.Author.Username)
	if rel := render.FormatRelativeTime(t.CreatedAt); rel != "" {
		meta += StyleDim.Render(" · " + rel)
	}

	metrics := strings.Join([]string{
		StyleNumber.Render(render.FormatCount(t.Metrics.Likes)) + StyleDim.Render(" likes"),
		StyleNumber.Render(render.FormatCount(t.Metrics.Retweets)) + StyleDim.Render(" retweets"),
		StyleNumber.Render(render.FormatCount(t.Metrics.Replies)) + StyleDim.Render(" replies"),
	}, StyleDim.Render("  ·  "))

	card := name + " " + meta + "\n\n" + t.Text + "\n\n" + metrics

	fmt.Println(styleCard.Render(card))
	printKeyValue("Link", t.URL)
	printKeyValue("Posted", formatTimestampLine(t.CreatedAt))
	if n := len(t.Media); n > 0 {
		printKeyValue("Media", fmt.Sprintf("%d attachment(s), first: %s", n, t.Media[0].Type))
	}
}

func formatTimestampLine(createdAt string) string {
	if rel := render.FormatRelativeTime(createdAt); rel != "" {
		return rel + " ago"
	}
	return createdAt
}
