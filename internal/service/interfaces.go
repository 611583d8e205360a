// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the hashtrack core: the session lifecycle, the
// request/response operations on tracks and tweets and the live feed
// subscription pipeline.
//
// Services depend on the [adapter] and [store] interfaces only and propagate
// their errors unchanged, wrapped with the operation name.
package service

import (
	"context"

	"github.com/MKhiriev/hashtrack/models"
)

// SessionService manages the user session.
type SessionService interface {
	// Login exchanges credentials for a session. It never writes the token
	// store; the caller persists the returned token.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Logout removes the stored token. The service is not contacted.
	Logout() error

	// Status returns the user the stored token belongs to.
	Status(ctx context.Context) (models.User, error)

	// LoggedIn reports whether a token is stored. It does not check that
	// the service still accepts it.
	LoggedIn() bool
}

// TrackService manages the tracked hashtags.
type TrackService interface {
	List(ctx context.Context) ([]models.Track, error)
	Create(ctx context.Context, hashtag string) (models.Track, error)
	Remove(ctx context.Context, hashtag string) (models.Track, error)
}

// TweetService fetches finite batches of posts.
type TweetService interface {
	Latest(ctx context.Context, filter string) ([]models.Tweet, error)
}

// FeedService subscribes to the live feed.
type FeedService interface {
	// Subscribe returns immediately and starts exactly one producer for the
	// feed matching filter. The producer stops when ctx ends or the handle
	// is closed.
	Subscribe(ctx context.Context, filter string) *FeedHandle
}
