package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/models"
)

type trackService struct {
	adapter adapter.ServerAdapter
}

func NewTrackService(serverAdapter adapter.ServerAdapter) TrackService {
	return &trackService{adapter: serverAdapter}
}

func (t *trackService) List(ctx context.Context) ([]models.Track, error) {
	tracks, err := t.adapter.Tracks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	return tracks, nil
}

func (t *trackService) Create(ctx context.Context, hashtag string) (models.Track, error) {
	name, err := normalizeHashtag(hashtag)
	if err != nil {
		return models.Track{}, err
	}

	track, err := t.adapter.CreateTrack(ctx, models.TrackCreation{Hashtag: name})
	if err != nil {
		return models.Track{}, fmt.Errorf("track #%s: %w", name, err)
	}
	return track, nil
}

func (t *trackService) Remove(ctx context.Context, hashtag string) (models.Track, error) {
	name, err := normalizeHashtag(hashtag)
	if err != nil {
		return models.Track{}, err
	}

	track, err := t.adapter.RemoveTrack(ctx, models.TrackRemoval{Hashtag: name})
	if err != nil {
		return models.Track{}, fmt.Errorf("untrack #%s: %w", name, err)
	}
	return track, nil
}

func normalizeHashtag(raw string) (string, error) {
	name := models.NormalizeHashtag(raw)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidHashtag, raw)
	}
	return name, nil
}
