package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/hashtrack/internal/app"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Execute runs rootCmd and reports a failure on stderr. Usage errors are
// followed by the usage text; other errors are rendered as one line.
func Execute(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, usageErr.Message)
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, usageErr.Usage)
		return ExitUsage
	}

	fmt.Fprintln(stderr, app.UserMessage(err))
	return ExitFailure
}
