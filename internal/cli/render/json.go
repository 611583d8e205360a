package render

import (
	"encoding/json"
	"io"

	"github.com/MKhiriev/hashtrack/models"
)

// jsonPrinter writes one compact JSON value per line.
type jsonPrinter struct {
	enc *json.Encoder
}

func newJSONPrinter(w io.Writer) *jsonPrinter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonPrinter{enc: enc}
}

func (p *jsonPrinter) User(user models.User) error    { return p.enc.Encode(user) }
func (p *jsonPrinter) Tweet(tweet models.Tweet) error { return p.enc.Encode(tweet) }

func (p *jsonPrinter) Tweets(tweets []models.Tweet) error {
	if tweets == nil {
		tweets = []models.Tweet{}
	}
	return p.enc.Encode(tweets)
}

func (p *jsonPrinter) Tracks(tracks []models.Track) error {
	if tracks == nil {
		tracks = []models.Track{}
	}
	return p.enc.Encode(tracks)
}

func (p *jsonPrinter) Tracked(track models.Track) error   { return p.enc.Encode(track) }
func (p *jsonPrinter) Untracked(track models.Track) error { return p.enc.Encode(track) }

func (p *jsonPrinter) Message(msg string) error {
	return p.enc.Encode(map[string]string{"message": msg})
}
