// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the hashtrack service.
//
// [ServerAdapter] covers the request/response operations and [FeedStreamer]
// opens the live feed. Both read the session token from a
// [store.TokenStore] before every authenticated call and never write it.
//
// Every failure crossing this package boundary is an [*APIError] whose Kind
// is one of the sentinel values in errors.go, so callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/hashtrack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the hashtrack
// service. Implementations are responsible for serialisation, attaching the
// bearer credential and mapping failures onto the error taxonomy.
type ServerAdapter interface {
	// CreateSession exchanges credentials for a session. It is the only
	// unauthenticated call and does not touch the token store.
	CreateSession(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// CurrentUser returns the account the stored token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	// LatestTweets returns a finite batch of recent posts matching filter.
	// An empty filter matches every tracked hashtag.
	LatestTweets(ctx context.Context, filter string) ([]models.Tweet, error)

	// Tracks lists the hashtags currently tracked by the user.
	Tracks(ctx context.Context) ([]models.Track, error)

	// CreateTrack registers a hashtag and returns the stored track.
	CreateTrack(ctx context.Context, track models.TrackCreation) (models.Track, error)

	// RemoveTrack stops tracking a hashtag and returns the removed track.
	RemoveTrack(ctx context.Context, track models.TrackRemoval) (models.Track, error)
}

// FeedStreamer opens the authenticated live feed.
type FeedStreamer interface {
	// OpenFeed connects to the feed for filter. The returned stream is owned
	// by the caller and must be closed.
	OpenFeed(ctx context.Context, filter string) (FeedStream, error)
}

// FeedStream yields raw feed records one at a time in arrival order.
type FeedStream interface {
	// Next blocks until the next record arrives. It returns io.EOF when the
	// service closes the feed cleanly and an [*APIError] otherwise.
	Next() ([]byte, error)

	// Close releases the underlying connection. It is safe to call more than
	// once and from another goroutine while Next is blocked.
	Close() error
}
