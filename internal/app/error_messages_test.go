package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/service"
	"github.com/MKhiriev/hashtrack/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "unauthenticated",
			err:  fmt.Errorf("list tracks: %w", &adapter.APIError{Kind: adapter.ErrUnauthenticated, Message: "no stored session token"}),
			want: MsgLoginAgain,
		},
		{
			name: "rejected",
			err:  &adapter.APIError{Kind: adapter.ErrRejected, Status: 401, Message: "token is expired"},
			want: MsgLoginAgain,
		},
		{
			name: "network with detail",
			err:  &adapter.APIError{Kind: adapter.ErrNetwork, Message: "connection refused"},
			want: MsgNetwork + ": connection refused",
		},
		{
			name: "not found",
			err:  fmt.Errorf("untrack #go: %w", &adapter.APIError{Kind: adapter.ErrNotFound, Status: 404, Message: "hashtag #go is not tracked"}),
			want: MsgNotFound + ": hashtag #go is not tracked",
		},
		{
			name: "server error without detail",
			err:  &adapter.APIError{Kind: adapter.ErrServerError, Status: 503},
			want: MsgServerError,
		},
		{
			name: "malformed",
			err:  &adapter.APIError{Kind: adapter.ErrMalformed, Message: "empty token"},
			want: MsgMalformed + ": empty token",
		},
		{
			name: "storage",
			err:  fmt.Errorf("save token: %w", store.ErrStorageIO),
			want: MsgStorageIO,
		},
		{
			name: "invalid hashtag",
			err:  fmt.Errorf("%w: %q", service.ErrInvalidHashtag, " "),
			want: MsgInvalidHashtag,
		},
		{
			name: "invalid credentials",
			err:  service.ErrInvalidCredentials,
			want: MsgInvalidCredentials,
		},
		{
			name: "unknown",
			err:  errors.New("something else"),
			want: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
