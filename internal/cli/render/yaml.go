package render

import (
	"fmt"
	"io"

	"github.com/MKhiriev/hashtrack/models"
	"gopkg.in/yaml.v3"
)

// yamlPrinter writes every value as its own document.
type yamlPrinter struct {
	w    io.Writer
	docs int
}

func (p *yamlPrinter) write(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}

	if p.docs > 0 {
		if _, err = io.WriteString(p.w, "---\n"); err != nil {
			return err
		}
	}
	p.docs++

	_, err = p.w.Write(out)
	return err
}

func (p *yamlPrinter) User(user models.User) error    { return p.write(user) }
func (p *yamlPrinter) Tweet(tweet models.Tweet) error { return p.write(tweet) }

func (p *yamlPrinter) Tweets(tweets []models.Tweet) error {
	if tweets == nil {
		tweets = []models.Tweet{}
	}
	return p.write(tweets)
}

func (p *yamlPrinter) Tracks(tracks []models.Track) error {
	if tracks == nil {
		tracks = []models.Track{}
	}
	return p.write(tracks)
}

func (p *yamlPrinter) Tracked(track models.Track) error   { return p.write(track) }
func (p *yamlPrinter) Untracked(track models.Track) error { return p.write(track) }

func (p *yamlPrinter) Message(msg string) error {
	return p.write(map[string]string{"message": msg})
}
