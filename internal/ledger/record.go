// Package ledger converts media entities to flat records and persists whole
// libraries, together with the identity counters, as snapshots.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// Record is the flat, self-describing form of one entity. Kind is the
// discriminator used to pick a constructor on the way back. Dates are
// YYYY-MM-DD strings or null.
type Record struct {
	GlobalID         int64      `json:"global_id"`
	Kind             media.Kind `json:"kind"`
	LocalID          int64      `json:"local_id"`
	Title            string     `json:"title"`
	Length           int        `json:"length"`
	CompletionStatus bool       `json:"completion_status"`
	DateCompleted    *string    `json:"date_completed"`
	ReleaseDate      *string    `json:"release_date"`

	// Book
	Author    *string `json:"author,omitempty"`
	Binding   *string `json:"binding,omitempty"`
	Publisher *string `json:"publisher,omitempty"`

	// Movie (Director is shared with Anime)
	Director          *string `json:"director,omitempty"`
	WatchedInTheatres *bool   `json:"watched_in_theatres,omitempty"`
	StreamingPlatform *string `json:"streaming_platform,omitempty"`
	Distributor       *string `json:"distributor,omitempty"`

	// Anime and Television
	EpisodesWatched *int    `json:"episodes_watched,omitempty"`
	EpisodesTotal   *int    `json:"episodes_total,omitempty"`
	NumSeasons      *int    `json:"num_seasons,omitempty"`
	Showrunner      *string `json:"showrunner,omitempty"`
	Platform        *string `json:"platform,omitempty"`
}

// UnmarshalJSON also accepts the kind under "type", the key used by ledger
// files written before the kind field was introduced. "kind" wins when both
// are present.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var w struct {
		plain
		Type media.Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Record(w.plain)
	if r.Kind == "" {
		r.Kind = w.Type
	}
	return nil
}

// ToRecord flattens e.
func ToRecord(e media.Entity) Record {
	m := e.Common()
	rec := Record{
		GlobalID:         m.GlobalID(),
		Kind:             e.Kind(),
		LocalID:          e.LocalID(),
		Title:            m.Title,
		Length:           m.Length(),
		CompletionStatus: m.Completed,
		DateCompleted:    formatDate(m.DateCompleted),
		ReleaseDate:      formatDate(m.ReleaseDate),
	}

	switch v := e.(type) {
	case *media.Book:
		rec.Author = ptr(v.Author)
		rec.Binding = ptr(v.Binding)
		rec.Publisher = optional(v.Publisher)
	case *media.Movie:
		rec.Director = optional(v.Director)
		rec.WatchedInTheatres = ptr(v.WatchedInTheatres)
		rec.StreamingPlatform = optional(v.StreamingPlatform)
		rec.Distributor = optional(v.Distributor)
	case *media.Anime:
		setProgress(&rec, v.Progress())
		rec.Director = optional(v.Director)
	case *media.Television:
		setProgress(&rec, v.Progress())
		rec.Showrunner = optional(v.Showrunner)
		rec.Platform = optional(v.Platform)
	}
	return rec
}

func setProgress(rec *Record, p *media.Episodic) {
	rec.EpisodesWatched = ptr(p.EpisodesWatched())
	rec.EpisodesTotal = ptr(p.EpisodesTotal())
	rec.NumSeasons = ptr(p.NumSeasons())
}

// FromRecord rebuilds an entity from rec. Persisted identities are kept;
// a missing global or local ID is drawn fresh from ids. Missing optional fields
// take defaults (length 1, watched 0, one season, not completed).
// Returns ErrUnknownKind for unrecognized kinds, ErrMalformed for bad dates,
// and media.ErrInvalidArgument when the values fail validation.
func FromRecord(ids *media.Issuer, rec Record) (media.Entity, error) {
	if !rec.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Kind)
	}
	common, err := commonParams(rec)
	if err != nil {
		return nil, err
	}
	src := pinned{id: media.Identity{Global: rec.GlobalID, Local: rec.LocalID}, fallback: ids}

	switch rec.Kind {
	case media.KindBook:
		return media.NewBook(src, media.BookParams{
			CommonParams: common,
			Pages:        orDefault(rec.Length, 1),
			Author:       stringOr(rec.Author, "Unknown Author"),
			Binding:      stringOr(rec.Binding, "Unknown"),
			Publisher:    stringOr(rec.Publisher, ""),
		})
	case media.KindMovie:
		return media.NewMovie(src, media.MovieParams{
			CommonParams:      common,
			Runtime:           orDefault(rec.Length, 1),
			Director:          stringOr(rec.Director, ""),
			WatchedInTheatres: rec.WatchedInTheatres != nil && *rec.WatchedInTheatres,
			StreamingPlatform: stringOr(rec.StreamingPlatform, ""),
			Distributor:       stringOr(rec.Distributor, ""),
		})
	case media.KindAnime:
		return media.NewAnime(src, media.AnimeParams{
			EpisodicParams: episodicParams(rec, common),
			Director:       stringOr(rec.Director, ""),
		})
	case media.KindTelevision:
		return media.NewTelevision(src, media.TelevisionParams{
			EpisodicParams: episodicParams(rec, common),
			Showrunner:     stringOr(rec.Showrunner, ""),
			Platform:       stringOr(rec.Platform, ""),
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, rec.Kind)
}

func commonParams(rec Record) (media.CommonParams, error) {
	completed, err := parseDate(rec.DateCompleted)
	if err != nil {
		return media.CommonParams{}, fmt.Errorf("date_completed: %w", err)
	}
	released, err := parseDate(rec.ReleaseDate)
	if err != nil {
		return media.CommonParams{}, fmt.Errorf("release_date: %w", err)
	}
	return media.CommonParams{
		Title:         rec.Title,
		Completed:     rec.CompletionStatus,
		DateCompleted: completed,
		ReleaseDate:   released,
	}, nil
}

// episodicParams falls back to length when episodes_total is absent.
func episodicParams(rec Record, common media.CommonParams) media.EpisodicParams {
	total := orDefault(rec.Length, 1)
	if rec.EpisodesTotal != nil {
		total = *rec.EpisodesTotal
	}
	return media.EpisodicParams{
		CommonParams:    common,
		EpisodesTotal:   total,
		EpisodesWatched: intOr(rec.EpisodesWatched, 0),
		NumSeasons:      intOr(rec.NumSeasons, 1),
	}
}

// pinned replays a persisted identity. Each part the record lacks is drawn
// from fallback on its own, so a kept global ID never advances the global
// counter and a kept local ID never advances the kind counter.
type pinned struct {
	id       media.Identity
	fallback *media.Issuer
}

func (p pinned) Issue(kind media.Kind) media.Identity {
	id := p.id
	if id.Global <= 0 {
		id.Global = p.fallback.IssueGlobal()
	}
	if id.Local <= 0 {
		id.Local = p.fallback.IssueLocal(kind)
	}
	return id
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &t, nil
}

func ptr[T any](v T) *T {
	return &v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
