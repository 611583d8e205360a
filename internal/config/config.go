// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name read by the
// client (e.g. HASHTRACK_ADAPTER_ADDRESS).
const EnvPrefix = "HASHTRACK_"

// Supported live feed transports.
const (
	StreamTransportHTTP      = "http"
	StreamTransportWebSocket = "websocket"
)

// StructuredConfig is the top-level configuration container for the
// hashtrack client. It aggregates all sub-configurations and is populated by
// merging values from flags, environment variables, an optional JSON file,
// and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the persisted session token.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote service endpoint and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings for the live feed producer.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the HASHTRACK_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: HASHTRACK_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path the JSON log is appended to.
	// Env: HASHTRACK_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// TokenPath is the file holding the session token.
	// Env: HASHTRACK_STORAGE_TOKEN_PATH
	TokenPath string `env:"TOKEN_PATH"`
}

// Adapter holds configuration for the remote hashtrack service.
type Adapter struct {
	// HTTPAddress is the base URL of the service (e.g. "https://hashtrack.example").
	// A missing scheme defaults to http.
	// Env: HASHTRACK_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request/response call. The live feed is
	// not subject to it once the stream is open.
	// Env: HASHTRACK_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StreamTransport selects how the live feed is consumed: "http"
	// (newline-delimited JSON) or "websocket".
	// Env: HASHTRACK_ADAPTER_STREAM_TRANSPORT
	StreamTransport string `env:"STREAM_TRANSPORT"`
}

// Workers holds configuration for the live feed producer.
type Workers struct {
	// FeedBuffer is the capacity of the channel between the producer and
	// the consumer.
	// Env: HASHTRACK_WORKERS_FEED_BUFFER
	FeedBuffer int `env:"FEED_BUFFER"`

	// FeedMaxReconnects bounds reconnect attempts after network failures.
	// It is a pointer so that an explicit 0 (never reconnect) is told apart
	// from an unset layer during the merge.
	// Env: HASHTRACK_WORKERS_FEED_MAX_RECONNECTS
	FeedMaxReconnects *int `env:"FEED_MAX_RECONNECTS"`

	// FeedReconnectDelay is the pause between reconnect attempts.
	// Env: HASHTRACK_WORKERS_FEED_RECONNECT_DELAY
	FeedReconnectDelay time.Duration `env:"FEED_RECONNECT_DELAY"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
			LogFile:  DefaultLogPath(),
		},
		Storage: Storage{
			TokenPath: DefaultTokenPath(),
		},
		Adapter: Adapter{
			HTTPAddress:     "http://localhost:8080",
			RequestTimeout:  15 * time.Second,
			StreamTransport: StreamTransportHTTP,
		},
		Workers: Workers{
			FeedBuffer:         16,
			FeedMaxReconnects:  intPtr(3),
			FeedReconnectDelay: 2 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. flags holds the values given on the command line; it may be nil.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func intPtr(v int) *int {
	return &v
}
