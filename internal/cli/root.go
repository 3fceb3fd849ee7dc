package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/embedkit/tweetcard/pkg/buildinfo"
)

// Execute runs the tweetcard CLI with the given base context and
// returns an error if any command fails.
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext. --verbose (-v) switches it to debug level.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tweetcard",
		Short:        "Tweetcard renders tweets as embeddable JSON, HTML, and SVG cards",
		Long:         `Tweetcard fetches tweet metadata from the public syndication endpoint and renders it as JSON, standalone HTML documents, or SVG cards, either ad hoc from the command line or as an HTTP service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newServeCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
