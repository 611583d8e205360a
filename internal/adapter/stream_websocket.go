// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

type webSocketFeedStreamer struct {
	feedURL *url.URL
	dialer  *websocket.Dialer

	tokens store.TokenStore
	logger *logger.Logger
}

func newWebSocketFeedStreamer(adapterCfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (*webSocketFeedStreamer, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	feedURL, err := url.Parse(baseURL + feedPath)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}
	switch feedURL.Scheme {
	case "https":
		feedURL.Scheme = "wss"
	default:
		feedURL.Scheme = "ws"
	}

	return &webSocketFeedStreamer{
		feedURL: feedURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: adapterCfg.RequestTimeout,
		},
		tokens: tokens,
		logger: logger.GetChildLogger("adapter"),
	}, nil
}

// OpenFeed implements [FeedStreamer] over a WebSocket. The bearer token is
// sent with the handshake; a handshake refused with 401/403 is [ErrRejected].
func (w *webSocketFeedStreamer) OpenFeed(ctx context.Context, filter string) (FeedStream, error) {
	token, ok := w.tokens.Load()
	if !ok {
		return nil, fmt.Errorf("open feed: %w", newAPIError(ErrUnauthenticated, 0, "no stored session token"))
	}

	target := *w.feedURL
	if filter != "" {
		target.RawQuery = url.Values{"filter": {filter}}.Encode()
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set(requestIDHeader, requestID(ctx))

	conn, resp, err := w.dialer.DialContext(ctx, target.String(), header)
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			_ = resp.Body.Close()
			return nil, fmt.Errorf("open feed: %w", mapStatus(resp.StatusCode, payload))
		}
		return nil, fmt.Errorf("open feed: %w", mapTransportError(err))
	}

	w.logger.Debug().Str("filter", filter).Msg("websocket feed opened")
	return &webSocketStream{conn: conn}, nil
}

type webSocketStream struct {
	conn *websocket.Conn

	closeOnce sync.Once
	closeErr  error
}

// Next returns the payload of the next data message. A normal closure from
// the service is io.EOF. A message over maxRecordSize is drained and
// reported as [ErrMalformed]; the connection stays open.
func (s *webSocketStream) Next() ([]byte, error) {
	for {
		_, r, err := s.conn.NextReader()
		if err != nil {
			return nil, mapWebSocketReadError(err)
		}

		data, err := io.ReadAll(io.LimitReader(r, maxRecordSize+1))
		if err != nil {
			return nil, mapWebSocketReadError(err)
		}
		if len(data) > maxRecordSize {
			if _, err := io.Copy(io.Discard, r); err != nil {
				return nil, mapWebSocketReadError(err)
			}
			return nil, errRecordTooLarge()
		}

		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			continue
		}
		return data, nil
	}
}

func (s *webSocketStream) Close() error {
	s.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func mapWebSocketReadError(err error) error {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return io.EOF
	}
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		return mapCloseError(ce)
	}
	return mapTransportError(err)
}
