// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the hashtrack command line on top of cobra.
//
// Every command builds the client runtime from the merged configuration,
// calls exactly one service operation and prints the result with the
// printer selected by --output.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/hashtrack/internal/cli/render"
	"github.com/MKhiriev/hashtrack/internal/client"
	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/utils"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/spf13/cobra"
)

// Streams are the standard streams a command reads and writes.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process standard streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// rootState is shared by every subcommand of one root command.
type rootState struct {
	streams Streams
	flags   config.Flags
	output  string
}

// NewRootCommand creates the hashtrack root command with its closed set of
// subcommands.
func NewRootCommand(buildInfo models.AppBuildInfo, streams Streams) *cobra.Command {
	s := &rootState{streams: streams}

	rootCmd := &cobra.Command{
		Use:   "hashtrack COMMAND [OPTIONS, ...]",
		Short: "Track hashtags and read matching posts",
		Long: `hashtrack is a command line client for the hashtrack service.

Log in once, register the hashtags to track and read the matching posts
either as a batch (list) or as a live feed (watch).`,
		Version:       buildInfo.String(),
		Args:          rootArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newUsageError(cmd, "Missing argument")
		},
	}

	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)
	rootCmd.SetVersionTemplate("hashtrack {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd, "%v", err)
	})
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	s.flags.Bind(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&s.output, "output", "o", render.FormatText,
		fmt.Sprintf("Output format (%s, %s, %s)", render.FormatText, render.FormatJSON, render.FormatYAML))

	rootCmd.AddCommand(
		newStatusCommand(s),
		newLoginCommand(s),
		newLogoutCommand(s),
		newListCommand(s),
		newWatchCommand(s),
		newTracksCommand(s),
		newTrackCommand(s),
		newUntrackCommand(s),
	)

	return rootCmd
}

// run builds the client runtime for one command and hands it to fn together
// with the output printer.
func (s *rootState) run(cmd *cobra.Command, fn func(app *client.App, printer render.Printer) error) error {
	printer, err := render.New(s.output, s.streams.Out)
	if err != nil {
		return newUsageError(cmd, "%v", err)
	}

	app, err := client.NewApp(&s.flags)
	if err != nil {
		return err
	}
	defer app.Close()

	// requests of one command share a correlation id
	requestID := utils.NewRequestID()
	log := &logger.Logger{Logger: app.Logger().With().Str("request_id", requestID).Logger()}
	cmd.SetContext(log.WithContext(utils.WithRequestID(cmd.Context(), requestID)))
	log.Debug().Str("command", cmd.Name()).Msg("command started")

	if err = fn(app, printer); err != nil {
		log.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
		return err
	}
	return nil
}
