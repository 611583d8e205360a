package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hashtrack/internal/cli/render"
	"github.com/MKhiriev/hashtrack/internal/client"
	"github.com/spf13/cobra"
)

func filterArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func newListCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter]",
		Short: "List the latest tweets",
		Long:  "List the latest tweets matching filter, or of every tracked hashtag when no filter is given.",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				tweets, err := app.Services.TweetService.Latest(cmd.Context(), filterArg(args))
				if err != nil {
					return err
				}
				return printer.Tweets(tweets)
			})
		},
	}
}

func newWatchCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [filter]",
		Short: "Watch for tweets via a subscription",
		Long:  "Print tweets as they arrive until the feed ends or the command is interrupted.",
		Args:  maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				feed := app.Services.FeedService.Subscribe(ctx, filterArg(args))
				defer feed.Close()

				for tweet := range feed.Posts() {
					if err := printer.Tweet(tweet); err != nil {
						return err
					}
				}

				return feed.Err()
			})
		},
	}
}
