// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	if strings.TrimSpace(cfg.Storage.TokenPath) == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := NormalizeBaseURL(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	switch cfg.Adapter.StreamTransport {
	case StreamTransportHTTP, StreamTransportWebSocket:
	default:
		return fmt.Errorf("%w: unknown stream transport %q", ErrInvalidAdapterConfigs, cfg.Adapter.StreamTransport)
	}

	if cfg.Workers.FeedBuffer <= 0 || cfg.Workers.FeedMaxReconnects < 0 || cfg.Workers.FeedReconnectDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// NormalizeBaseURL trims raw, defaults the scheme to http and strips the
// trailing slash. It fails when the result has no host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
