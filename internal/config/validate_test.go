package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_DefaultsValid(t *testing.T) {
	errs := Default().Validate()
	assert.Empty(t, errs, "expected no errors for default config")
}

func TestValidate_EmptyLedgerPath(t *testing.T) {
	cfg := Default()
	cfg.Ledger.Path = "  "
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "ledger.path"), "expected ledger.path error, got %v", errs)
}

func TestValidate_ArchiveSameAsLedger(t *testing.T) {
	cfg := Default()
	cfg.Archive.Path = cfg.Ledger.Path
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "archive.path"), "expected archive.path error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsErrorBoth(errs, "log.level", "verbose"), "expected log.level error, got %v", errs)
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log.format"), "expected log.format error, got %v", errs)
}

func TestValidate_MinScoreRange(t *testing.T) {
	for _, score := range []float64{-0.1, 1.5} {
		cfg := Default()
		cfg.Search.MinScore = score
		errs := cfg.Validate()
		assert.True(t, containsError(errs, "search.min_score"), "expected min_score error for %g, got %v", score, errs)
	}
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func containsErrorBoth(errs []string, substr1, substr2 string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr1) && strings.Contains(e, substr2) {
			return true
		}
	}
	return false
}
