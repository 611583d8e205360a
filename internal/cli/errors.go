package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// UsageError reports a command line that does not name a valid command or
// carries the wrong arguments. It is printed with the usage text.
type UsageError struct {
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	return e.Message
}

func newUsageError(cmd *cobra.Command, format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...), Usage: cmd.UsageString()}
}

// exactArgs requires n positional arguments and fails with msg otherwise.
func exactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return newUsageError(cmd, "%s", msg)
		}
		return nil
	}
}

// hashtagArg requires the single hashtag argument of track and untrack. A
// missing hashtag is an ordinary failure reported by msg alone, without
// the usage text.
func hashtagArg(msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New(msg)
		}
		return maxArgs(1)(cmd, args)
	}
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return newUsageError(cmd, "%s accepts at most %d argument(s), received %d", cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// rootArgs rejects anything that did not resolve to a subcommand.
func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	msg := fmt.Sprintf("Unknown command %s", args[0])
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestions[0])
	}
	return &UsageError{Message: msg, Usage: cmd.UsageString()}
}
