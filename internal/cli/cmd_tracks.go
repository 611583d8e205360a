package cli

import (
	"github.com/MKhiriev/hashtrack/internal/cli/render"
	"github.com/MKhiriev/hashtrack/internal/client"
	"github.com/spf13/cobra"
)

func newTracksCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List current tracks",
		Args:  exactArgs(0, "tracks takes no arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				tracks, err := app.Services.TrackService.List(cmd.Context())
				if err != nil {
					return err
				}
				return printer.Tracks(tracks)
			})
		},
	}
}

func newTrackCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "track <hashtag>",
		Short: "Track a new hashtag",
		Args:  hashtagArg("Expected hashtag name to start tracking"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				track, err := app.Services.TrackService.Create(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printer.Tracked(track)
			})
		},
	}
}

func newUntrackCommand(s *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "untrack <hashtag>",
		Short: "Untrack a hashtag",
		Args:  hashtagArg("Expected hashtag name to untrack"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(cmd, func(app *client.App, printer render.Printer) error {
				track, err := app.Services.TrackService.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printer.Untracked(track)
			})
		},
	}
}
