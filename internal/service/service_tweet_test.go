package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/mock"
	"github.com/MKhiriev/hashtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTweetService_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewTweetService(mockAdapter)

	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	want := []models.Tweet{
		{ID: "p1", Author: "ada", Text: "hello #golang", PublishedAt: published},
		{ID: "p2", Author: "bob", Text: "more #golang", PublishedAt: published.Add(time.Minute)},
	}
	mockAdapter.EXPECT().LatestTweets(gomock.Any(), "golang").Return(want, nil)

	got, err := svc.Latest(context.Background(), " golang ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTweetService_Latest_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewTweetService(mockAdapter)

	mockAdapter.EXPECT().LatestTweets(gomock.Any(), "").Return([]models.Tweet{}, nil)

	got, err := svc.Latest(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTweetService_Latest_NoRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewTweetService(mockAdapter)

	mockAdapter.EXPECT().LatestTweets(gomock.Any(), gomock.Any()).
		Return(nil, &adapter.APIError{Kind: adapter.ErrNetwork, Message: "connection refused"}).
		Times(1)

	_, err := svc.Latest(context.Background(), "golang")
	assert.ErrorIs(t, err, adapter.ErrNetwork)
}
