package service

import (
	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
)

// ClientServices groups the services the command layer calls.
type ClientServices struct {
	SessionService SessionService
	TrackService   TrackService
	TweetService   TweetService
	FeedService    FeedService
}

func NewClientServices(
	tokens store.TokenStore,
	serverAdapter adapter.ServerAdapter,
	streamer adapter.FeedStreamer,
	workersCfg config.ClientWorkers,
	logger *logger.Logger,
) *ClientServices {
	return &ClientServices{
		SessionService: NewSessionService(serverAdapter, tokens, logger),
		TrackService:   NewTrackService(serverAdapter),
		TweetService:   NewTweetService(serverAdapter),
		FeedService:    NewFeedService(streamer, workersCfg, logger),
	}
}
