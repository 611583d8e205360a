package render

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/hashtrack/models"
	"github.com/charmbracelet/lipgloss"
)

type textPrinter struct {
	w io.Writer

	author    lipgloss.Style
	timestamp lipgloss.Style
	hashtag   lipgloss.Style
	faint     lipgloss.Style
}

// newTextPrinter styles for the color profile of w, so plain files and
// pipes get no escape sequences.
func newTextPrinter(w io.Writer) *textPrinter {
	r := lipgloss.NewRenderer(w)
	return &textPrinter{
		w:         w,
		author:    r.NewStyle().Bold(true),
		timestamp: r.NewStyle().Faint(true),
		hashtag:   r.NewStyle().Foreground(lipgloss.Color("6")),
		faint:     r.NewStyle().Faint(true),
	}
}

func (p *textPrinter) User(user models.User) error {
	_, err := fmt.Fprintf(p.w, "Logged in as %s\n", p.author.Render(user.String()))
	return err
}

func (p *textPrinter) Tweet(tweet models.Tweet) error {
	_, err := fmt.Fprintf(p.w, "%s %s: %s\n",
		p.timestamp.Render("["+tweet.PublishedAt.Format(time.RFC3339)+"]"),
		p.author.Render("@"+tweet.Author),
		tweet.Text,
	)
	return err
}

func (p *textPrinter) Tweets(tweets []models.Tweet) error {
	if len(tweets) == 0 {
		return p.Message(p.faint.Render("No posts."))
	}
	for _, tweet := range tweets {
		if err := p.Tweet(tweet); err != nil {
			return err
		}
	}
	return nil
}

func (p *textPrinter) Tracks(tracks []models.Track) error {
	if len(tracks) == 0 {
		return p.Message(p.faint.Render("No tracked hashtags."))
	}
	for _, track := range tracks {
		if _, err := fmt.Fprintln(p.w, p.hashtag.Render(track.String())); err != nil {
			return err
		}
	}
	return nil
}

func (p *textPrinter) Tracked(track models.Track) error {
	_, err := fmt.Fprintf(p.w, "Now tracking %s...\n", p.hashtag.Render(track.String()))
	return err
}

func (p *textPrinter) Untracked(track models.Track) error {
	_, err := fmt.Fprintf(p.w, "Stopped tracking %s\n", p.hashtag.Render(track.String()))
	return err
}

func (p *textPrinter) Message(msg string) error {
	_, err := fmt.Fprintln(p.w, msg)
	return err
}
