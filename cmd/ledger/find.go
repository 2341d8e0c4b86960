package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
)

func newFindCommand(ctx *commandContext) *cobra.Command {
	var minScore float64

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy search titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !cmd.Flags().Changed("min-score") {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				minScore = cfg.Search.MinScore
			}

			return ctx.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
				matches := l.Library().Find(query, minScore)

				if ctx.jsonOutput() {
					type match struct {
						Score float64       `json:"score"`
						Media ledger.Record `json:"media"`
					}
					out := make([]match, 0, len(matches))
					for _, m := range matches {
						out = append(out, match{Score: m.Score, Media: ledger.ToRecord(m.Entity)})
					}
					return false, writeJSON(cmd, out)
				}

				if len(matches) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No matches for %q.\n", query)
					return false, nil
				}

				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					rows = append(rows, []string{
						strconv.FormatInt(m.Entity.Common().GlobalID(), 10),
						string(m.Entity.Kind()),
						m.Entity.Common().Title,
						library.Detail(m.Entity),
						fmt.Sprintf("%.2f", m.Score),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Kind", "Title", "Details", "Score"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight},
				))
				return false, nil
			})
		},
	}

	cmd.Flags().Float64Var(&minScore, "min-score", library.DefaultMinScore, "Minimum similarity (0-1)")
	return cmd
}
