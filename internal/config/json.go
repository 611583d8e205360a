package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
//
// Example:
//
//	{
//	  "app":     {"log_level": "debug"},
//	  "adapter": {"address": "https://hashtrack.example", "request_timeout": "10s",
//	              "stream_transport": "websocket"},
//	  "storage": {"token_path": "/home/me/.hashtrack/token"},
//	  "workers": {"feed_buffer": 32, "feed_max_reconnects": 5, "feed_reconnect_delay": "1s"}
//	}
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		TokenPath string `json:"token_path"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"address"`
		RequestTimeout  Duration `json:"request_timeout"`
		StreamTransport string   `json:"stream_transport"`
	} `json:"adapter,omitempty"`

	Workers struct {
		FeedBuffer         int      `json:"feed_buffer"`
		FeedMaxReconnects  *int     `json:"feed_max_reconnects"`
		FeedReconnectDelay Duration `json:"feed_reconnect_delay"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			TokenPath: jsonCfg.Storage.TokenPath,
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			StreamTransport: jsonCfg.Adapter.StreamTransport,
		},
		Workers: Workers{
			FeedBuffer:         jsonCfg.Workers.FeedBuffer,
			FeedMaxReconnects:  jsonCfg.Workers.FeedMaxReconnects,
			FeedReconnectDelay: time.Duration(jsonCfg.Workers.FeedReconnectDelay),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
