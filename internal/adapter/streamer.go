package adapter

import (
	"fmt"

	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/store"
)

// NewFeedStreamer returns the [FeedStreamer] selected by
// adapterCfg.StreamTransport: newline-delimited JSON over HTTP (the default)
// or a WebSocket.
func NewFeedStreamer(adapterCfg config.ClientAdapter, tokens store.TokenStore, logger *logger.Logger) (FeedStreamer, error) {
	switch adapterCfg.StreamTransport {
	case config.StreamTransportWebSocket:
		streamer, err := newWebSocketFeedStreamer(adapterCfg, tokens, logger)
		if err != nil {
			return nil, err
		}
		return streamer, nil
	case config.StreamTransportHTTP, "":
		streamer, err := newHTTPServerAdapter(adapterCfg, tokens, logger)
		if err != nil {
			return nil, err
		}
		return streamer, nil
	default:
		return nil, fmt.Errorf("unknown stream transport %q", adapterCfg.StreamTransport)
	}
}
