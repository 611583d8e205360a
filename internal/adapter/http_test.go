// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
	"github.com/MKhiriev/hashtrack/internal/utils"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, tokens store.TokenStore) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, store.NewMemoryTokenStore(""), logger.Nop())
	require.Error(t, err)
}

// ── CreateSession ───────────────────────────────────────────────────────────

func TestCreateSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sessions", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Email: "a@b.com", Password: "secret"}, creds)

		writeJSON(t, w, http.StatusCreated, models.SessionResponse{Token: "T1", ExpiresAt: "2030-01-02T03:04:05Z"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore(""))
	session, err := a.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "T1", session.Token)
	require.NotNil(t, session.ExpiresAt)
	assert.Equal(t, time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC), session.ExpiresAt.UTC())
}

// TestCreateSession_DoesNotTouchStore verifies that login never writes the
// token store; persisting is the caller's job.
func TestCreateSession_DoesNotTouchStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SessionResponse{Token: "T1"})
	}))
	defer srv.Close()

	tokens := store.NewMemoryTokenStore("")
	a := newTestAdapter(t, srv.URL, tokens)
	_, err := a.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	_, ok := tokens.Load()
	assert.False(t, ok)
}

func TestCreateSession_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: &models.ErrorDetail{Status: 401, Message: "bad credentials"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore(""))
	_, err := a.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "bad credentials", apiErr.Message)
}

func TestCreateSession_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{"foo": "bar"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore(""))
	_, err := a.CreateSession(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCreateSession_BadExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SessionResponse{Token: "T1", ExpiresAt: "tomorrow"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore(""))
	_, err := a.CreateSession(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrMalformed)
}

// ── Authentication ──────────────────────────────────────────────────────────

// TestAuthenticatedCalls_NoToken verifies that every authenticated call
// fails with ErrUnauthenticated and issues zero network requests.
func TestAuthenticatedCalls_NoToken(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore(""))
	ctx := context.Background()

	ops := map[string]func() error{
		"current user": func() error { _, err := a.CurrentUser(ctx); return err },
		"latest":       func() error { _, err := a.LatestTweets(ctx, "golang"); return err },
		"tracks":       func() error { _, err := a.Tracks(ctx); return err },
		"create track": func() error { _, err := a.CreateTrack(ctx, models.TrackCreation{Hashtag: "go"}); return err },
		"remove track": func() error { _, err := a.RemoveTrack(ctx, models.TrackRemoval{Hashtag: "go"}); return err },
		"open feed":    func() error { _, err := a.OpenFeed(ctx, "go"); return err },
	}

	for name, call := range ops {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}

	assert.Zero(t, calls.Load(), "no request may be sent without a token")
}

func TestAuthenticatedCalls_SendBearerAndRequestID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		assert.Equal(t, "req-7", r.Header.Get("X-Request-ID"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(t, w, http.StatusOK, models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
	ctx := utils.WithRequestID(context.Background(), "req-7")

	user, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}, user)
}

// ── Taxonomy ────────────────────────────────────────────────────────────────

func TestTracks_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, "", ErrRejected},
		{"forbidden", http.StatusForbidden, "", ErrRejected},
		{"not found", http.StatusNotFound, "", ErrNotFound},
		{"internal", http.StatusInternalServerError, "boom", ErrServerError},
		{"bad gateway", http.StatusBadGateway, "", ErrServerError},
		{"bad request", http.StatusBadRequest, "nope", ErrMalformed},
		{"conflict", http.StatusConflict, "", ErrMalformed},
		{"invalid body", http.StatusOK, "{not json", ErrMalformed},
		{"missing name", http.StatusOK, `[{"id":"1"}]`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
			_, err := a.Tracks(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTracks_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, store.NewMemoryTokenStore("T1"))
	_, err := a.Tracks(context.Background())

	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Tweets and tracks ───────────────────────────────────────────────────────

func TestLatestTweets_Success(t *testing.T) {
	published := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tweets", r.URL.Path)
		assert.Equal(t, "#golang", r.URL.Query().Get("filter"))
		writeJSON(t, w, http.StatusOK, []models.Tweet{
			{ID: "1", Author: "ada", Text: "hello #golang", PublishedAt: published},
			{ID: "2", Author: "bob", Text: "bye #golang", PublishedAt: published},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
	tweets, err := a.LatestTweets(context.Background(), "#golang")

	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "1", tweets[0].ID)
	assert.Equal(t, published, tweets[1].PublishedAt.UTC())
}

func TestLatestTweets_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, http.StatusOK, []models.Tweet{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
	tweets, err := a.LatestTweets(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, tweets)
}

func TestCreateTrack_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tracks", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body models.TrackCreation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "golang", body.Hashtag)

		writeJSON(t, w, http.StatusCreated, models.Track{ID: "t1", Name: "golang", PrettyName: "#GoLang"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
	track, err := a.CreateTrack(context.Background(), models.TrackCreation{Hashtag: "golang"})

	require.NoError(t, err)
	assert.Equal(t, models.Track{ID: "t1", Name: "golang", PrettyName: "#GoLang"}, track)
}

func TestRemoveTrack_EscapesHashtag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tracks/go%2Flang", r.URL.EscapedPath())
		writeJSON(t, w, http.StatusOK, models.Track{ID: "t1", Name: "go/lang"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
	track, err := a.RemoveTrack(context.Background(), models.TrackRemoval{Hashtag: "go/lang"})

	require.NoError(t, err)
	assert.Equal(t, "go/lang", track.Name)
}

func TestRemoveTrack_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: &models.ErrorDetail{Status: 404, Message: "not tracked"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, store.NewMemoryTokenStore("T1"))
	_, err := a.RemoveTrack(context.Background(), models.TrackRemoval{Hashtag: "rust"})

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not tracked")
}
