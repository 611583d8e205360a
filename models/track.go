package models

import "strings"

// Track is a hashtag registered with the service. The service is the single
// source of truth; tracks are never cached locally.
type Track struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	PrettyName string `json:"pretty_name" yaml:"pretty_name"`
}

func (t Track) String() string {
	if t.PrettyName != "" {
		return t.PrettyName
	}
	return "#" + t.Name
}

// TrackCreation is the payload for registering a hashtag.
type TrackCreation struct {
	Hashtag string `json:"hashtag"`
}

// TrackRemoval identifies the hashtag to stop tracking.
type TrackRemoval struct {
	Hashtag string `json:"hashtag"`
}

// NormalizeHashtag trims surrounding whitespace and a single leading '#'.
func NormalizeHashtag(raw string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
}
