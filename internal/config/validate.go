package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if strings.TrimSpace(c.Ledger.Path) == "" {
		errs = append(errs, "ledger.path: required")
	}
	if c.Archive.Path != "" && c.Archive.Path == c.Ledger.Path {
		errs = append(errs, "archive.path: must differ from ledger.path")
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be one of text, json; got %q", c.Log.Format))
	}

	if c.Search.MinScore < 0 || c.Search.MinScore > 1 {
		errs = append(errs, fmt.Sprintf("search.min_score: must be between 0 and 1, got %g", c.Search.MinScore))
	}

	return errs
}
