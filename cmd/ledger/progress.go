package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <id> <count>",
		Short: "Set the number of episodes watched",
		Long: `Set the number of episodes watched for an anime or television entry.

The count must be between 0 and the episode total; anything else leaves
the entry unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			count, err := parseCount("count", args[1])
			if err != nil {
				return err
			}
			return ctx.updateProgress(cmd, id, func(lib *library.Library, e media.Entity) bool {
				return lib.UpdateEpisodesWatched(e, count)
			})
		},
	}
}

func newReleaseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "release <id> <total>",
		Short: "Raise the episode total after new episodes air",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			total, err := parseCount("total", args[1])
			if err != nil {
				return err
			}
			return ctx.updateProgress(cmd, id, func(lib *library.Library, e media.Entity) bool {
				return lib.UpdateTotalEpisodes(e, total)
			})
		},
	}
}

// updateProgress applies a best-effort library update. A dropped update is
// reported, not treated as an error.
func (c *commandContext) updateProgress(cmd *cobra.Command, id int64, apply func(*library.Library, media.Entity) bool) error {
	return c.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
		lib := l.Library()
		e, err := lib.Lookup(id)
		if err != nil {
			return false, err
		}

		applied := apply(lib, e)
		if c.jsonOutput() {
			return applied, writeJSON(cmd, struct {
				Applied bool          `json:"applied"`
				Media   ledger.Record `json:"media"`
			}{applied, ledger.ToRecord(e)})
		}

		state := "Updated"
		if !applied {
			state = "Unchanged"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s]\n", state, e.Common().Title, library.Detail(e))
		return applied, nil
	})
}

func newCompleteCommand(ctx *commandContext) *cobra.Command {
	var (
		on      string
		undated bool
	)

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark media as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			date, err := completionDate(on, undated, time.Now())
			if err != nil {
				return err
			}

			return ctx.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
				e, err := l.Library().Lookup(id)
				if err != nil {
					return false, err
				}
				e.Common().MarkCompleted(date)

				if ctx.jsonOutput() {
					return true, writeJSON(cmd, ledger.ToRecord(e))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s (%s)\n", e.Common().Title, completion(e.Common()))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVar(&on, "on", "", "Completion date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&undated, "undated", false, "Record completion without a date")
	cmd.MarkFlagsMutuallyExclusive("on", "undated")
	return cmd
}

func completionDate(on string, undated bool, now time.Time) (*time.Time, error) {
	if undated {
		return nil, nil
	}
	if on == "" {
		return media.Date(now.Year(), now.Month(), now.Day()), nil
	}
	return parseDateFlag("on", on)
}
