package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

type kindStats struct {
	Kind      media.Kind `json:"kind"`
	Count     int        `json:"count"`
	Completed int        `json:"completed"`
	LastID    int64      `json:"last_id"`
}

type ledgerStats struct {
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Kinds     []kindStats    `json:"kinds"`
	Counters  media.Counters `json:"counters"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ledger totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
				s := collectStats(l)
				if ctx.jsonOutput() {
					return false, writeJSON(cmd, s)
				}

				rows := make([][]string, 0, len(s.Kinds)+1)
				for _, k := range s.Kinds {
					rows = append(rows, []string{string(k.Kind), strconv.Itoa(k.Count), strconv.Itoa(k.Completed), strconv.FormatInt(k.LastID, 10)})
				}
				rows = append(rows, []string{"Total", strconv.Itoa(s.Total), strconv.Itoa(s.Completed), strconv.FormatInt(s.Counters.Global, 10)})
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Kind", "Count", "Completed", "Last ID"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
				))
				return false, nil
			})
		},
	}
}

func collectStats(l *ledger.Ledger) ledgerStats {
	lib := l.Library()
	s := ledgerStats{Total: lib.Count(), Counters: l.Issuer().Counters()}
	for _, kind := range media.Kinds {
		ks := kindStats{Kind: kind, Count: lib.CountByKind(kind), LastID: s.Counters.Local(kind)}
		for _, e := range lib.ByKind(kind) {
			if e.Common().Completed {
				ks.Completed++
			}
		}
		s.Completed += ks.Completed
		s.Kinds = append(s.Kinds, ks)
	}
	return s
}
