package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is where the JSON log is appended.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the hashtrack service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound request/response calls.
	RequestTimeout time.Duration
	// StreamTransport is either [StreamTransportHTTP] or [StreamTransportWebSocket].
	StreamTransport string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// TokenPath is the file the session token is persisted to.
	TokenPath string
}

// ClientWorkers contains live feed producer settings.
type ClientWorkers struct {
	// FeedBuffer is the capacity of the producer/consumer channel.
	FeedBuffer int
	// FeedMaxReconnects bounds reconnects after network failures.
	FeedMaxReconnects int
	// FeedReconnectDelay is the pause between reconnect attempts.
	FeedReconnectDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. It is immutable for the lifetime of a process.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the service endpoint and transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains live feed settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into a
// [ClientConfig], and validates the result.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.toClient()

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) toClient() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			StreamTransport: cfg.Adapter.StreamTransport,
		},
		Storage: ClientStorage{
			TokenPath: cfg.Storage.TokenPath,
		},
		Workers: ClientWorkers{
			FeedBuffer:         cfg.Workers.FeedBuffer,
			FeedMaxReconnects:  derefInt(cfg.Workers.FeedMaxReconnects),
			FeedReconnectDelay: cfg.Workers.FeedReconnectDelay,
		},
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
