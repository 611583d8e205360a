// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/workers"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/sethvargo/go-retry"
)

type feedService struct {
	streamer adapter.FeedStreamer
	cfg      config.ClientWorkers
	logger   *logger.Logger
}

// NewFeedService returns a [FeedService] reading from streamer. cfg sets the
// channel capacity and the reconnect budget.
func NewFeedService(streamer adapter.FeedStreamer, cfg config.ClientWorkers, logger *logger.Logger) FeedService {
	return &feedService{streamer: streamer, cfg: cfg, logger: logger.GetChildLogger("feed")}
}

func (f *feedService) Subscribe(ctx context.Context, filter string) *FeedHandle {
	posts := make(chan models.Tweet, max(f.cfg.FeedBuffer, 1))
	h := &FeedHandle{posts: posts}

	h.worker = workers.Start(ctx, func(ctx context.Context) {
		defer close(posts)
		h.setErr(f.produce(ctx, filter, posts))
	})

	return h
}

// produce runs the feed until it ends. It returns nil on a clean end or on
// cancellation and the terminal error otherwise.
func (f *feedService) produce(ctx context.Context, filter string, out chan<- models.Tweet) error {
	log := f.logger.With().Str("filter", filter).Logger()

	var budget retry.Backoff
	resetBudget := func() {
		budget = retry.WithMaxRetries(uint64(max(f.cfg.FeedMaxReconnects, 0)),
			retry.NewConstant(max(f.cfg.FeedReconnectDelay, time.Millisecond)))
	}
	resetBudget()
	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		return budget.Next()
	})

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		delivered, err := f.stream(ctx, filter, out)
		if delivered > 0 {
			resetBudget()
		}

		switch {
		case err == nil:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, adapter.ErrNetwork):
			log.Warn().Err(err).Int("delivered", delivered).Msg("feed connection lost, reconnecting")
			return retry.RetryableError(err)
		default:
			return err
		}
	})

	if ctx.Err() != nil {
		log.Debug().Msg("feed cancelled")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("feed stopped")
		return err
	}

	log.Debug().Msg("feed ended")
	return nil
}

// stream runs one connection. It returns nil when the service closes the
// feed cleanly and the number of posts handed to the consumer.
func (f *feedService) stream(ctx context.Context, filter string, out chan<- models.Tweet) (int, error) {
	stream, err := f.streamer.OpenFeed(ctx, filter)
	if err != nil {
		return 0, err
	}

	// A blocked Next only returns once the stream is closed.
	stop := context.AfterFunc(ctx, func() { _ = stream.Close() })
	defer func() {
		stop()
		_ = stream.Close()
	}()

	delivered := 0
	for {
		raw, err := stream.Next()
		switch {
		case errors.Is(err, io.EOF):
			return delivered, nil
		case errors.Is(err, adapter.ErrMalformed):
			// One unreadable record, such as an oversized line. The
			// connection itself is still good.
			f.logger.Warn().Err(err).Str("filter", filter).Msg("skipping feed record")
			continue
		case err != nil:
			return delivered, err
		}

		tweet, err := decodeTweet(raw)
		if err != nil {
			if errors.Is(err, adapter.ErrRejected) || errors.Is(err, adapter.ErrUnauthenticated) {
				return delivered, err
			}
			f.logger.Warn().Err(err).Str("filter", filter).Msg("skipping feed record")
			continue
		}

		// Checked on its own first: once ctx is done nothing more is sent,
		// even when the buffer has room.
		select {
		case <-ctx.Done():
			return delivered, ctx.Err()
		default:
		}
		select {
		case out <- tweet:
			delivered++
		case <-ctx.Done():
			return delivered, ctx.Err()
		}
	}
}

// decodeTweet turns a raw record into a post. In-band error envelopes are
// classified like HTTP responses; undecodable records and records without
// an id are [adapter.ErrMalformed].
func decodeTweet(raw []byte) (models.Tweet, error) {
	if err := adapter.RecordError(raw); err != nil {
		return models.Tweet{}, err
	}

	var tweet models.Tweet
	if err := json.Unmarshal(raw, &tweet); err != nil {
		return models.Tweet{}, &adapter.APIError{Kind: adapter.ErrMalformed, Message: err.Error(), Cause: err}
	}
	if !tweet.Valid() {
		return models.Tweet{}, &adapter.APIError{Kind: adapter.ErrMalformed, Message: "record has no id"}
	}

	return tweet, nil
}
