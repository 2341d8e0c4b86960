package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var kindFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List media in the ledger",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind media.Kind
			if kindFlag != "" {
				k, err := media.ParseKind(kindFlag)
				if err != nil {
					return err
				}
				kind = k
			}

			return ctx.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
				lib := l.Library()
				entities := lib.All()
				if kind != "" {
					entities = lib.ByKind(kind)
				}

				if ctx.jsonOutput() {
					records := make([]ledger.Record, 0, len(entities))
					for _, e := range entities {
						records = append(records, ledger.ToRecord(e))
					}
					return false, writeJSON(cmd, records)
				}

				rows, err := displayRows(lib, kind)
				if errors.Is(err, library.ErrEmptyLibrary) {
					fmt.Fprintln(cmd.OutOrStdout(), "Library is empty.")
					return false, nil
				}
				if err != nil {
					return false, err
				}
				if len(rows) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s entries.\n", kind)
					return false, nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderLibraryTable(lib, rows))
				return false, nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Filter by kind (book, movie, anime, tv)")
	return cmd
}

// displayRows returns the library rows, restricted to kind when set.
func displayRows(lib *library.Library, kind media.Kind) ([]library.Row, error) {
	rows, err := lib.Rows()
	if err != nil || kind == "" {
		return rows, err
	}
	filtered := rows[:0]
	for _, r := range rows {
		if r.Kind == kind {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func renderLibraryTable(lib *library.Library, rows []library.Row) string {
	headers := []string{"ID", "Kind", "Title", "Details", "Done"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		done := ""
		if e, ok := lib.Get(r.ID); ok {
			done = completion(e.Common())
		}
		out = append(out, []string{
			strconv.FormatInt(r.ID, 10),
			string(r.Kind),
			r.Title,
			r.Detail,
			done,
		})
	}
	return renderTable(headers, out, aligns)
}

func completion(m *media.Media) string {
	if !m.Completed {
		return "no"
	}
	if m.DateCompleted != nil {
		return m.DateCompleted.Format("2006-01-02")
	}
	return "yes"
}
