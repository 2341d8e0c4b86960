package config

import (
	"strings"
	"testing"
)

func TestError_Error_Empty(t *testing.T) {
	e := &Error{Path: "/etc/media-ledger/ledger.toml"}
	if got := e.Error(); got != "" {
		t.Errorf("expected empty string for no errors, got %q", got)
	}
	if e.HasErrors() {
		t.Error("expected HasErrors to be false")
	}
}

func TestError_Error_MissingVars(t *testing.T) {
	e := &Error{
		Path:    "/etc/media-ledger/ledger.toml",
		Missing: []string{"LEDGER_HOME", "ARCHIVE_DIR"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected 'missing environment variables', got %q", got)
	}
	if !strings.Contains(got, "LEDGER_HOME") || !strings.Contains(got, "ARCHIVE_DIR") {
		t.Errorf("expected var names in error, got %q", got)
	}
}

func TestError_Error_Both(t *testing.T) {
	e := &Error{
		Path:    "/etc/media-ledger/ledger.toml",
		Missing: []string{"LEDGER_HOME"},
		Errors:  []string{"log.level: invalid"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected missing vars section, got %q", got)
	}
	if !strings.Contains(got, "validation failed") || !strings.Contains(got, "log.level") {
		t.Errorf("expected validation section, got %q", got)
	}
	if !e.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
}
