package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}
	cmd.AddCommand(newConfigTestCommand())
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test [path]",
		Short: "Validate configuration file",
		Long:  "Validates ledger.toml syntax, settings, and environment variable substitution.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configArgPath(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Validating %s...\n\n", path)

			cfg, err := config.Load(path)
			if err != nil {
				var configErr *config.Error
				if errors.As(err, &configErr) {
					if raw, rawErr := config.LoadWithoutValidation(path); rawErr == nil {
						printConfigSummary(out, raw)
						fmt.Fprintln(out)
					}
					printConfigErrors(out, configErr)
					return fmt.Errorf("configuration invalid")
				}
				return fmt.Errorf("failed to load config: %w", err)
			}

			printConfigSummary(out, cfg)
			fmt.Fprintln(out, "\nConfiguration valid!")
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := config.DefaultPath()
			if len(args) > 0 {
				target = strings.TrimSpace(args[0])
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.WriteDefault(target); err != nil {
				return fmt.Errorf("write sample config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

// configArgPath resolves the file for config test: the argument, then
// --config, then discovery.
func configArgPath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if flag := cmd.Flag("config"); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}
	return config.Discover()
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Ledger:     %s (lock: %s)\n", cfg.Ledger.Path, yesNo(cfg.Ledger.Locking()))
	archive := cfg.Archive.Path
	if archive == "" {
		archive = "(not set)"
	}
	fmt.Fprintf(w, "  Archive:    %s\n", archive)
	fmt.Fprintf(w, "  Logging:    %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
	fmt.Fprintf(w, "  Search:     min score %.2f\n", cfg.Search.MinScore)
}
