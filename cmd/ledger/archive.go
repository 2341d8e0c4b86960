package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/store"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export [sqlite-path]",
		Short: "Copy the ledger into a SQLite archive",
		Long: `Copy the ledger into a SQLite archive, replacing its previous contents.

Without an argument the archive.path setting is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withArchive(cmd, args, func(l *ledger.Ledger, archive *store.Store, path string) (bool, error) {
				if err := l.Export(cmd.Context(), archive); err != nil {
					return false, err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", l.Library().Count(), path)
				return false, nil
			})
		},
	}
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import [sqlite-path]",
		Short: "Replace the ledger with a SQLite archive",
		Long: `Replace the ledger with the contents of a SQLite archive.

Without an argument the archive.path setting is used. The ledger file is
left untouched when the archive cannot be read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withArchive(cmd, args, func(l *ledger.Ledger, archive *store.Store, path string) (bool, error) {
				if err := l.Import(cmd.Context(), archive); err != nil {
					if errors.Is(err, ledger.ErrNoSnapshot) {
						return false, fmt.Errorf("archive %s is empty; run 'ledger export' first", path)
					}
					return false, err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s\n", l.Library().Count(), path)
				return true, nil
			})
		},
	}
}

func (c *commandContext) withArchive(cmd *cobra.Command, args []string, fn func(*ledger.Ledger, *store.Store, string) (bool, error)) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	path := cfg.Archive.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no archive path: pass one or set archive.path")
	}

	archive, err := store.Open(cmd.Context(), path, c.logger(cmd))
	if err != nil {
		return err
	}
	defer archive.Close()

	return c.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
		return fn(l, archive, path)
	})
}
