package config

import (
	"os"
	"path/filepath"
)

const appDirName = "hashtrack"

// DefaultTokenPath returns the token file location under the XDG config
// directory, e.g. ~/.config/hashtrack/token.
func DefaultTokenPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appDirName, "token")
}

// DefaultLogPath returns the log file location under the XDG state
// directory, e.g. ~/.local/state/hashtrack/hashtrack.log.
func DefaultLogPath() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), appDirName, "hashtrack.log")
}

func xdgDir(envName, homeRelative string) string {
	if dir := os.Getenv(envName); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(homeDir, homeRelative)
}
