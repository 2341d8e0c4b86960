package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates no config file exists in any search location.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./ledger.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "media-ledger", "ledger.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. MEDIA_LEDGER_CONFIG environment variable
//  2. ./ledger.toml (current directory)
//  3. $XDG_CONFIG_HOME/media-ledger/ledger.toml
//  4. /etc/media-ledger/ledger.toml
func Discover() (string, error) {
	if envPath := os.Getenv("MEDIA_LEDGER_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("MEDIA_LEDGER_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./ledger.toml",
		DefaultPath(),
		"/etc/media-ledger/ledger.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
