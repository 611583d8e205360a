package main

import (
	"context"
	"os"

	"github.com/MKhiriev/hashtrack/internal/cli"
	"github.com/MKhiriev/hashtrack/models"
)

// Set with -ldflags "-X main.buildVersion=... -X main.buildDate=... -X main.buildCommit=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	streams := cli.StdStreams()

	rootCmd := cli.NewRootCommand(buildInfo, streams)
	os.Exit(cli.Execute(context.Background(), rootCmd, streams.Err))
}
