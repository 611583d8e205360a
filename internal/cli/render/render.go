// Package render prints command results in the output format chosen with
// --output.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/hashtrack/models"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by [New] for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Printer writes command results. Text output is for people; json and yaml
// emit one record per value so that a live feed can be piped.
type Printer interface {
	User(user models.User) error
	Tweet(tweet models.Tweet) error
	Tweets(tweets []models.Tweet) error
	Tracks(tracks []models.Track) error
	Tracked(track models.Track) error
	Untracked(track models.Track) error
	Message(msg string) error
}

// New returns the printer for format writing to w.
func New(format string, w io.Writer) (Printer, error) {
	switch format {
	case FormatText, "":
		return newTextPrinter(w), nil
	case FormatJSON:
		return newJSONPrinter(w), nil
	case FormatYAML:
		return &yamlPrinter{w: w}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s, %s or %s)", ErrUnknownFormat, format, FormatText, FormatJSON, FormatYAML)
	}
}
