package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/models"
)

type tweetService struct {
	adapter adapter.ServerAdapter
}

func NewTweetService(serverAdapter adapter.ServerAdapter) TweetService {
	return &tweetService{adapter: serverAdapter}
}

// Latest is a one-shot fetch; failures are returned without retrying.
func (t *tweetService) Latest(ctx context.Context, filter string) ([]models.Tweet, error) {
	tweets, err := t.adapter.LatestTweets(ctx, strings.TrimSpace(filter))
	if err != nil {
		return nil, fmt.Errorf("latest tweets: %w", err)
	}
	return tweets, nil
}
