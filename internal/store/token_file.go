// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/hashtrack/internal/logger"
	"github.com/google/renameio/v2"
)

const (
	tokenFilePerm = 0o600
	tokenDirPerm  = 0o700
)

// fileTokenStore keeps the token in a single file. Writes go to a temporary
// file in the same directory which is then renamed over the target, so a
// concurrent reader sees either the old or the new token, never a mix.
type fileTokenStore struct {
	path   string
	logger *logger.Logger
}

// NewFileTokenStore returns a [TokenStore] backed by the file at path. The
// file and its parent directory are created on the first Save.
func NewFileTokenStore(path string, logger *logger.Logger) TokenStore {
	return &fileTokenStore{
		path:   path,
		logger: logger.GetChildLogger("token-store"),
	}
}

func (s *fileTokenStore) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("token file is unreadable, treating as logged out")
		}
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

func (s *fileTokenStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := os.MkdirAll(filepath.Dir(s.path), tokenDirPerm); err != nil {
		return fmt.Errorf("%w: creating token directory: %v", ErrStorageIO, err)
	}

	if err := renameio.WriteFile(s.path, []byte(token+"\n"), tokenFilePerm); err != nil {
		return fmt.Errorf("%w: writing token file: %v", ErrStorageIO, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("token saved")
	return nil
}

func (s *fileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: removing token file: %v", ErrStorageIO, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("token cleared")
	return nil
}
