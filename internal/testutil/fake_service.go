// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testutil provides an in-process fake of the hashtrack service for
// end-to-end tests of the client.
//
// The fake issues real HS256 session tokens on login, checks them on every
// authenticated route and serves the live feed over both NDJSON and
// WebSocket from the same path.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/hashtrack/internal/utils"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

const (
	tokenIssuer  = "hashtrack-fake"
	tokenSignKey = "hashtrack-fake-secret"
	tokenTTL     = time.Hour
)

type userCtxKey struct{}

type account struct {
	user     models.User
	password string
}

// FakeService is a hashtrack service backed by memory.
type FakeService struct {
	server   *httptest.Server
	upgrader websocket.Upgrader

	requests atomic.Int64

	mu       sync.Mutex
	accounts map[string]account
	tracks   []models.Track
	tweets   []models.Tweet
	feed     []string
}

// NewFakeService starts a fake service that is shut down when the test ends.
func NewFakeService(t testing.TB) *FakeService {
	t.Helper()

	f := &FakeService{accounts: make(map[string]account)}
	f.server = httptest.NewServer(f.routes())
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeService) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(f.countRequests)

	// routes without authorization
	router.Post("/api/sessions", f.createSession)

	router.Group(func(r chi.Router) {
		r.Use(f.auth)
		r.Get("/api/users/me", f.currentUser)
		r.Get("/api/tweets", f.latestTweets)
		r.Get("/api/tweets/stream", f.streamTweets)
		r.Get("/api/tracks", f.listTracks)
		r.Post("/api/tracks", f.createTrack)
		r.Delete("/api/tracks/{hashtag}", f.removeTrack)
	})

	return router
}

// URL is the base endpoint of the fake.
func (f *FakeService) URL() string {
	return f.server.URL
}

// Requests returns the number of requests received so far.
func (f *FakeService) Requests() int64 {
	return f.requests.Load()
}

// AddUser registers an account that can log in with email and password.
func (f *FakeService) AddUser(name, email, password string) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	user := models.User{ID: utils.NewRequestID(), Name: name, Email: email}
	f.accounts[email] = account{user: user, password: password}
	return user
}

// TokenFor issues a valid session token for a registered email.
func (f *FakeService) TokenFor(email string) string {
	f.mu.Lock()
	acc, ok := f.accounts[email]
	f.mu.Unlock()
	if !ok {
		return ""
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, acc.user.ID, tokenTTL, tokenSignKey)
	if err != nil {
		panic(err)
	}
	return token
}

// AddTweets appends posts returned by the latest-posts endpoint.
func (f *FakeService) AddTweets(tweets ...models.Tweet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tweets = append(f.tweets, tweets...)
}

// AddTracks registers hashtags as already tracked.
func (f *FakeService) AddTracks(names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, name := range names {
		f.tracks = append(f.tracks, newTrack(name))
	}
}

// Tracks returns the tracked hashtags in registration order.
func (f *FakeService) Tracks() []models.Track {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.tracks)
}

// SetFeed sets the raw records every live feed connection replays before the
// service closes it cleanly.
func (f *FakeService) SetFeed(records ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feed = records
}

func (f *FakeService) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (f *FakeService) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}

		userID, err := utils.ValidateAndParseJWTToken(token, tokenSignKey, tokenIssuer)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "token is expired or invalid")
			return
		}

		user, ok := f.userByID(userID)
		if !ok {
			writeError(w, http.StatusForbidden, "account no longer exists")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, user)))
	})
}

func (f *FakeService) userByID(id string) (models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, acc := range f.accounts {
		if acc.user.ID == id {
			return acc.user, true
		}
	}
	return models.User{}, false
}

func (f *FakeService) createSession(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	f.mu.Lock()
	acc, ok := f.accounts[creds.Email]
	f.mu.Unlock()
	if !ok || acc.password != creds.Password {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, acc.user.ID, tokenTTL, tokenSignKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeJSON(w, http.StatusCreated, models.SessionResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(tokenTTL).UTC().Format(time.RFC3339),
	})
}

func (f *FakeService) currentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, r.Context().Value(userCtxKey{}).(models.User))
}

func (f *FakeService) latestTweets(w http.ResponseWriter, r *http.Request) {
	filter := strings.ToLower(models.NormalizeHashtag(r.URL.Query().Get("filter")))

	f.mu.Lock()
	tweets := make([]models.Tweet, 0, len(f.tweets))
	for _, tweet := range f.tweets {
		if filter == "" || strings.Contains(strings.ToLower(tweet.Text), "#"+filter) {
			tweets = append(tweets, tweet)
		}
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, tweets)
}

func (f *FakeService) streamTweets(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	records := slices.Clone(f.feed)
	f.mu.Unlock()

	if websocket.IsWebSocketUpgrade(r) {
		f.streamWebSocket(w, r, records)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	for _, record := range records {
		if _, err := w.Write([]byte(record + "\n")); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (f *FakeService) streamWebSocket(w http.ResponseWriter, r *http.Request, records []string) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for _, record := range records {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(record)); err != nil {
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "feed ended"),
		time.Now().Add(time.Second))
	// wait for the client's close reply
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, _ = conn.ReadMessage()
}

func (f *FakeService) listTracks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, f.Tracks())
}

func (f *FakeService) createTrack(w http.ResponseWriter, r *http.Request) {
	var creation models.TrackCreation
	if err := json.NewDecoder(r.Body).Decode(&creation); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	name := strings.ToLower(models.NormalizeHashtag(creation.Hashtag))
	if name == "" {
		writeError(w, http.StatusBadRequest, "hashtag is required")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, track := range f.tracks {
		if track.Name == name {
			writeJSON(w, http.StatusOK, track)
			return
		}
	}

	track := newTrack(name)
	f.tracks = append(f.tracks, track)
	writeJSON(w, http.StatusCreated, track)
}

func (f *FakeService) removeTrack(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(models.NormalizeHashtag(chi.URLParam(r, "hashtag")))

	f.mu.Lock()
	defer f.mu.Unlock()

	i := slices.IndexFunc(f.tracks, func(t models.Track) bool { return t.Name == name })
	if i < 0 {
		writeError(w, http.StatusNotFound, "hashtag #"+name+" is not tracked")
		return
	}

	track := f.tracks[i]
	f.tracks = slices.Delete(f.tracks, i, i+1)
	writeJSON(w, http.StatusOK, track)
}

func newTrack(name string) models.Track {
	name = strings.ToLower(models.NormalizeHashtag(name))
	return models.Track{ID: utils.NewRequestID(), Name: name, PrettyName: "#" + name}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: &models.ErrorDetail{Status: status, Message: message}})
}
