package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// commonFlags are the add flags shared by every kind.
type commonFlags struct {
	completed   bool
	completedOn string
	released    string
}

func (f *commonFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.completed, "completed", false, "Mark as completed")
	cmd.Flags().StringVar(&f.completedOn, "completed-on", "", "Completion date (YYYY-MM-DD, implies --completed)")
	cmd.Flags().StringVar(&f.released, "released", "", "Release date (YYYY-MM-DD)")
}

func (f *commonFlags) params(title string) (media.CommonParams, error) {
	completedOn, err := parseDateFlag("completed-on", f.completedOn)
	if err != nil {
		return media.CommonParams{}, err
	}
	released, err := parseDateFlag("released", f.released)
	if err != nil {
		return media.CommonParams{}, err
	}
	return media.CommonParams{
		Title:         title,
		Completed:     f.completed || completedOn != nil,
		DateCompleted: completedOn,
		ReleaseDate:   released,
	}, nil
}

// episodicFlags are the add flags shared by anime and television.
type episodicFlags struct {
	commonFlags
	episodes int
	watched  int
	seasons  int
}

func (f *episodicFlags) bind(cmd *cobra.Command) {
	f.commonFlags.bind(cmd)
	cmd.Flags().IntVarP(&f.episodes, "episodes", "e", 0, "Total episodes released")
	cmd.Flags().IntVarP(&f.watched, "watched", "w", 0, "Episodes watched")
	cmd.Flags().IntVarP(&f.seasons, "seasons", "s", 1, "Number of seasons")
	_ = cmd.MarkFlagRequired("episodes")
}

func (f *episodicFlags) params(title string) (media.EpisodicParams, error) {
	common, err := f.commonFlags.params(title)
	if err != nil {
		return media.EpisodicParams{}, err
	}
	return media.EpisodicParams{
		CommonParams:    common,
		EpisodesTotal:   f.episodes,
		EpisodesWatched: f.watched,
		NumSeasons:      f.seasons,
	}, nil
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add media to the ledger",
	}
	cmd.AddCommand(newAddBookCommand(ctx))
	cmd.AddCommand(newAddMovieCommand(ctx))
	cmd.AddCommand(newAddAnimeCommand(ctx))
	cmd.AddCommand(newAddTelevisionCommand(ctx))
	return cmd
}

func newAddBookCommand(ctx *commandContext) *cobra.Command {
	var (
		common    commonFlags
		pages     int
		author    string
		binding   string
		publisher string
	)

	cmd := &cobra.Command{
		Use:   "book <title>",
		Short: "Add a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cp, err := common.params(args[0])
			if err != nil {
				return err
			}
			return ctx.addMedia(cmd, func(ids media.IdentitySource) (media.Entity, error) {
				return media.NewBook(ids, media.BookParams{
					CommonParams: cp,
					Pages:        pages,
					Author:       author,
					Binding:      binding,
					Publisher:    publisher,
				})
			})
		},
	}

	common.bind(cmd)
	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "Page count")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Author")
	cmd.Flags().StringVarP(&binding, "binding", "b", "Paperback", "Binding (Paperback, Hardcover, eBook, ...)")
	cmd.Flags().StringVar(&publisher, "publisher", "", "Publisher")
	_ = cmd.MarkFlagRequired("pages")
	_ = cmd.MarkFlagRequired("author")
	return cmd
}

func newAddMovieCommand(ctx *commandContext) *cobra.Command {
	var (
		common      commonFlags
		runtime     int
		director    string
		theatres    bool
		platform    string
		distributor string
	)

	cmd := &cobra.Command{
		Use:   "movie <title>",
		Short: "Add a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cp, err := common.params(args[0])
			if err != nil {
				return err
			}
			return ctx.addMedia(cmd, func(ids media.IdentitySource) (media.Entity, error) {
				return media.NewMovie(ids, media.MovieParams{
					CommonParams:      cp,
					Runtime:           runtime,
					Director:          director,
					WatchedInTheatres: theatres,
					StreamingPlatform: platform,
					Distributor:       distributor,
				})
			})
		},
	}

	common.bind(cmd)
	cmd.Flags().IntVarP(&runtime, "runtime", "r", 0, "Runtime in minutes")
	cmd.Flags().StringVarP(&director, "director", "d", "", "Director")
	cmd.Flags().BoolVar(&theatres, "theatres", false, "Watched in theatres")
	cmd.Flags().StringVar(&platform, "platform", "", "Streaming platform")
	cmd.Flags().StringVar(&distributor, "distributor", "", "Distributor")
	_ = cmd.MarkFlagRequired("runtime")
	return cmd
}

func newAddAnimeCommand(ctx *commandContext) *cobra.Command {
	var (
		ep       episodicFlags
		director string
	)

	cmd := &cobra.Command{
		Use:   "anime <title>",
		Short: "Add an anime series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ep.params(args[0])
			if err != nil {
				return err
			}
			return ctx.addMedia(cmd, func(ids media.IdentitySource) (media.Entity, error) {
				return media.NewAnime(ids, media.AnimeParams{EpisodicParams: p, Director: director})
			})
		},
	}

	ep.bind(cmd)
	cmd.Flags().StringVarP(&director, "director", "d", "", "Director")
	return cmd
}

func newAddTelevisionCommand(ctx *commandContext) *cobra.Command {
	var (
		ep         episodicFlags
		showrunner string
		platform   string
	)

	cmd := &cobra.Command{
		Use:     "tv <title>",
		Aliases: []string{"television", "show"},
		Short:   "Add a television series",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ep.params(args[0])
			if err != nil {
				return err
			}
			return ctx.addMedia(cmd, func(ids media.IdentitySource) (media.Entity, error) {
				return media.NewTelevision(ids, media.TelevisionParams{
					EpisodicParams: p,
					Showrunner:     showrunner,
					Platform:       platform,
				})
			})
		},
	}

	ep.bind(cmd)
	cmd.Flags().StringVar(&showrunner, "showrunner", "", "Showrunner")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform or network")
	return cmd
}

// addMedia builds an entity against the ledger's issuer, inserts it, and
// saves the ledger.
func (c *commandContext) addMedia(cmd *cobra.Command, build func(media.IdentitySource) (media.Entity, error)) error {
	return c.withLedger(cmd, func(l *ledger.Ledger) (bool, error) {
		e, err := build(l.Issuer())
		if err != nil {
			return false, err
		}
		l.Add(e)

		if c.jsonOutput() {
			return true, writeJSON(cmd, ledger.ToRecord(e))
		}
		m := e.Common()
		fmt.Fprintf(cmd.OutOrStdout(), "Added: %s [ID: %d, %s #%d]\n", m.Title, m.GlobalID(), e.Kind(), e.LocalID())
		return true, nil
	})
}
