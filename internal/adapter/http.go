package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
	"github.com/MKhiriev/hashtrack/internal/utils"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/go-resty/resty/v2"
)

const (
	requestIDHeader = "X-Request-ID"

	sessionsPath    = "/api/sessions"
	currentUserPath = "/api/users/me"
	tweetsPath      = "/api/tweets"
	feedPath        = "/api/tweets/stream"
	tracksPath      = "/api/tracks"
)

type httpServerAdapter struct {
	// client serves request/response calls and carries the request timeout.
	client *utils.HTTPClient
	// streamClient has no timeout; the feed stays open until closed.
	streamClient *utils.HTTPClient

	tokens store.TokenStore
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP clients with the resolved base URL and
// request timeout. tokens is consulted before every authenticated call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (ServerAdapter, error) {
	adapter, err := newHTTPServerAdapter(adapterCfg, tokens, logger)
	if err != nil {
		return nil, err
	}
	return adapter, nil
}

func newHTTPServerAdapter(adapterCfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (*httpServerAdapter, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:       utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		streamClient: utils.NewHTTPClient(baseURL, 0),
		tokens:       tokens,
		logger:       logger.GetChildLogger("adapter"),
	}, nil
}

// CreateSession implements [ServerAdapter]. It POSTs the credentials to
// POST /api/sessions and returns the issued session. A success response
// without a token or with an unparsable expiry is [ErrMalformed].
func (h *httpServerAdapter) CreateSession(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var sr models.SessionResponse
	if err := h.do(ctx, http.MethodPost, sessionsPath, credentials, &sr, false); err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}

	if sr.Token == "" {
		return models.Session{}, fmt.Errorf("create session: %w", newAPIError(ErrMalformed, http.StatusOK, "response has no token"))
	}

	session := models.Session{Token: sr.Token}
	if sr.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, sr.ExpiresAt)
		if err != nil {
			return models.Session{}, fmt.Errorf("create session: %w", malformed(http.StatusOK, err))
		}
		session.ExpiresAt = &expiresAt
	}

	return session, nil
}

// CurrentUser implements [ServerAdapter] via GET /api/users/me.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.do(ctx, http.MethodGet, currentUserPath, nil, &user, true); err != nil {
		return models.User{}, fmt.Errorf("current user: %w", err)
	}
	if user.ID == "" {
		return models.User{}, fmt.Errorf("current user: %w", newAPIError(ErrMalformed, http.StatusOK, "user has no id"))
	}

	return user, nil
}

// LatestTweets implements [ServerAdapter] via GET /api/tweets?filter=.
func (h *httpServerAdapter) LatestTweets(ctx context.Context, filter string) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := h.do(ctx, http.MethodGet, withFilter(tweetsPath, filter), nil, &tweets, true); err != nil {
		return nil, fmt.Errorf("latest tweets: %w", err)
	}

	for _, tweet := range tweets {
		if !tweet.Valid() {
			return nil, fmt.Errorf("latest tweets: %w", newAPIError(ErrMalformed, http.StatusOK, "tweet has no id"))
		}
	}

	return tweets, nil
}

// Tracks implements [ServerAdapter] via GET /api/tracks.
func (h *httpServerAdapter) Tracks(ctx context.Context) ([]models.Track, error) {
	var tracks []models.Track
	if err := h.do(ctx, http.MethodGet, tracksPath, nil, &tracks, true); err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}

	for _, track := range tracks {
		if track.Name == "" {
			return nil, fmt.Errorf("list tracks: %w", newAPIError(ErrMalformed, http.StatusOK, "track has no name"))
		}
	}

	return tracks, nil
}

// CreateTrack implements [ServerAdapter] via POST /api/tracks.
func (h *httpServerAdapter) CreateTrack(ctx context.Context, track models.TrackCreation) (models.Track, error) {
	var created models.Track
	if err := h.do(ctx, http.MethodPost, tracksPath, track, &created, true); err != nil {
		return models.Track{}, fmt.Errorf("create track: %w", err)
	}
	if created.Name == "" {
		return models.Track{}, fmt.Errorf("create track: %w", newAPIError(ErrMalformed, http.StatusOK, "track has no name"))
	}

	return created, nil
}

// RemoveTrack implements [ServerAdapter] via DELETE /api/tracks/{hashtag}.
func (h *httpServerAdapter) RemoveTrack(ctx context.Context, track models.TrackRemoval) (models.Track, error) {
	var removed models.Track
	path := tracksPath + "/" + url.PathEscape(track.Hashtag)
	if err := h.do(ctx, http.MethodDelete, path, nil, &removed, true); err != nil {
		return models.Track{}, fmt.Errorf("remove track: %w", err)
	}
	if removed.Name == "" {
		return models.Track{}, fmt.Errorf("remove track: %w", newAPIError(ErrMalformed, http.StatusOK, "track has no name"))
	}

	return removed, nil
}

// do sends one request/response call. body is encoded as JSON when non-nil
// and a success response is decoded into result when non-nil.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any, authenticated bool) error {
	req, err := h.newRequest(ctx, h.client, authenticated)
	if err != nil {
		return err
	}
	req.SetHeader("Accept", "application/json")
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return mapTransportError(err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Dur("elapsed", time.Since(started)).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return malformed(resp.StatusCode(), err)
	}

	return nil
}

// newRequest prepares a request carrying a request id and, when
// authenticated, the stored bearer token. A missing token fails with
// [ErrUnauthenticated] before anything is sent.
func (h *httpServerAdapter) newRequest(ctx context.Context, client *utils.HTTPClient, authenticated bool) (*resty.Request, error) {
	req := client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID(ctx))

	if authenticated {
		token, ok := h.tokens.Load()
		if !ok {
			return nil, newAPIError(ErrUnauthenticated, 0, "no stored session token")
		}
		req.SetAuthToken(token)
	}

	return req, nil
}

func requestID(ctx context.Context) string {
	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		return id
	}
	return utils.NewRequestID()
}

func withFilter(path, filter string) string {
	if filter == "" {
		return path
	}
	return path + "?" + url.Values{"filter": {filter}}.Encode()
}
