package models

import (
	"fmt"
	"time"
)

// Tweet is one post matching a tracked hashtag. Records are immutable once
// received.
type Tweet struct {
	ID          string    `json:"id" yaml:"id"`
	Author      string    `json:"author" yaml:"author"`
	Text        string    `json:"text" yaml:"text"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

// Valid reports whether the record carries the fields every consumer relies on.
func (t Tweet) Valid() bool {
	return t.ID != ""
}

func (t Tweet) String() string {
	return fmt.Sprintf("[%s] @%s: %s", t.PublishedAt.Format(time.RFC3339), t.Author, t.Text)
}
