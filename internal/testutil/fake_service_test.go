package testutil_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
	"github.com/MKhiriev/hashtrack/internal/testutil"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adapterConfig(fake *testutil.FakeService, transport string) config.ClientAdapter {
	return config.ClientAdapter{HTTPAddress: fake.URL(), RequestTimeout: 5 * time.Second, StreamTransport: transport}
}

func TestFakeService_SessionRoundTrip(t *testing.T) {
	fake := testutil.NewFakeService(t)
	want := fake.AddUser("Ada", "ada@example.com", "secret")

	tokens := store.NewMemoryTokenStore("")
	a, err := adapter.NewHTTPServerAdapter(adapterConfig(fake, config.StreamTransportHTTP), tokens, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = a.CreateSession(ctx, models.Credentials{Email: "ada@example.com", Password: "nope"})
	assert.ErrorIs(t, err, adapter.ErrRejected)

	session, err := a.CreateSession(ctx, models.Credentials{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotNil(t, session.ExpiresAt)
	require.NoError(t, tokens.Save(session.Token))

	user, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, user)

	require.NoError(t, tokens.Save("forged"))
	_, err = a.CurrentUser(ctx)
	assert.ErrorIs(t, err, adapter.ErrRejected)
}

func TestFakeService_Tracks(t *testing.T) {
	fake := testutil.NewFakeService(t)
	fake.AddUser("Ada", "ada@example.com", "secret")

	a, err := adapter.NewHTTPServerAdapter(adapterConfig(fake, config.StreamTransportHTTP),
		store.NewMemoryTokenStore(fake.TokenFor("ada@example.com")), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	created, err := a.CreateTrack(ctx, models.TrackCreation{Hashtag: "GoLang"})
	require.NoError(t, err)
	assert.Equal(t, "golang", created.Name)

	tracks, err := a.Tracks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Track{created}, tracks)

	removed, err := a.RemoveTrack(ctx, models.TrackRemoval{Hashtag: "golang"})
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = a.RemoveTrack(ctx, models.TrackRemoval{Hashtag: "golang"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestFakeService_Feed(t *testing.T) {
	for _, transport := range []string{config.StreamTransportHTTP, config.StreamTransportWebSocket} {
		t.Run(transport, func(t *testing.T) {
			fake := testutil.NewFakeService(t)
			fake.AddUser("Ada", "ada@example.com", "secret")
			fake.SetFeed(`{"id":"p1"}`, `{"id":"p2"}`)

			streamer, err := adapter.NewFeedStreamer(adapterConfig(fake, transport),
				store.NewMemoryTokenStore(fake.TokenFor("ada@example.com")), logger.Nop())
			require.NoError(t, err)

			stream, err := streamer.OpenFeed(context.Background(), "golang")
			require.NoError(t, err)
			defer stream.Close()

			for _, want := range []string{`{"id":"p1"}`, `{"id":"p2"}`} {
				rec, err := stream.Next()
				require.NoError(t, err)
				assert.JSONEq(t, want, string(rec))
			}

			_, err = stream.Next()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestFakeService_FeedRequiresToken(t *testing.T) {
	fake := testutil.NewFakeService(t)

	streamer, err := adapter.NewFeedStreamer(adapterConfig(fake, config.StreamTransportWebSocket),
		store.NewMemoryTokenStore("forged"), logger.Nop())
	require.NoError(t, err)

	_, err = streamer.OpenFeed(context.Background(), "")
	assert.ErrorIs(t, err, adapter.ErrRejected)
	assert.Equal(t, int64(1), fake.Requests())
}
