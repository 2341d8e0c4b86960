package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/config"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
)

type globalFlags struct {
	config   string
	file     string
	json     bool
	logLevel string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and applies flag overrides.
// A missing config file is not an error: defaults apply.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := loadConfig(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if f := strings.TrimSpace(c.flags.file); f != "" {
			cfg.Ledger.Path = f
		}
		if lvl := strings.TrimSpace(c.flags.logLevel); lvl != "" {
			cfg.Log.Level = lvl
			if errs := cfg.Validate(); len(errs) > 0 {
				c.configErr = &config.Error{Errors: errs}
				return
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) {
			return nil, fmt.Errorf("config %s invalid (run 'ledger config test %s'):\n%w", path, path, err)
		}
		return nil, err
	}
	return cfg, nil
}

// withLedger opens the configured ledger file, runs fn, and commits when
// fn reports a change.
func (c *commandContext) withLedger(cmd *cobra.Command, fn func(l *ledger.Ledger) (changed bool, err error)) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.Log, cmd.ErrOrStderr())

	var opts []ledger.FileOption
	if cfg.Ledger.Locking() {
		opts = append(opts, ledger.WithLock())
	}
	store := ledger.NewFileStore(cfg.Ledger.Path, log, opts...)

	l, err := ledger.Open(cmd.Context(), store, log)
	if err != nil {
		return err
	}
	changed, err := fn(l)
	if err != nil || !changed {
		return err
	}
	return l.Commit(cmd.Context())
}

func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		cfg = config.Default()
	}
	return newLogger(cfg.Log, cmd.ErrOrStderr())
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
