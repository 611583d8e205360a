package client

import (
	"fmt"

	"github.com/MKhiriev/hashtrack/internal/adapter"
	"github.com/MKhiriev/hashtrack/internal/config"
	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/MKhiriev/hashtrack/internal/service"
	"github.com/MKhiriev/hashtrack/internal/store"
)

const loggerRole = "hashtrack-cli"

// App is the dependency graph of one command invocation.
type App struct {
	Config   *config.ClientConfig
	Tokens   store.TokenStore
	Services *service.ClientServices

	logger *logger.Logger
}

// NewApp loads the configuration for flags and builds every component from
// it. The caller must Close the returned App.
func NewApp(flags *config.Flags) (*App, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger(loggerRole, cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	app, err := newApp(cfg, store.NewFileTokenStore(cfg.Storage.TokenPath, log), log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.ClientConfig, tokens store.TokenStore, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	streamer, err := adapter.NewFeedStreamer(cfg.Adapter, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("create feed streamer: %w", err)
	}

	log.Debug().
		Str("endpoint", cfg.Adapter.HTTPAddress).
		Str("stream_transport", cfg.Adapter.StreamTransport).
		Str("token_path", cfg.Storage.TokenPath).
		Msg("client app initialised")

	return &App{
		Config:   cfg,
		Tokens:   tokens,
		Services: service.NewClientServices(tokens, serverAdapter, streamer, cfg.Workers, log),
		logger:   log,
	}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *logger.Logger {
	return a.logger
}

// Close releases the log file.
func (a *App) Close() error {
	return a.logger.Close()
}
