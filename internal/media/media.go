// Package media defines the tracked item kinds (books, movies, anime, television)
// and the identities assigned to them.
package media

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes the concrete media types.
type Kind string

const (
	KindBook       Kind = "Book"
	KindMovie      Kind = "Movie"
	KindAnime      Kind = "Anime"
	KindTelevision Kind = "Television"
)

// Kinds lists every recognized kind in display order.
var Kinds = []Kind{KindBook, KindMovie, KindAnime, KindTelevision}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBook, KindMovie, KindAnime, KindTelevision:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind resolves a user-supplied kind name. Matching is case-insensitive
// and accepts a few aliases for television.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "book", "books":
		return KindBook, nil
	case "movie", "movies", "film":
		return KindMovie, nil
	case "anime":
		return KindAnime, nil
	case "television", "tv", "series", "show":
		return KindTelevision, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, s)
}

// Entity is implemented by *Book, *Movie, *Anime and *Television only.
type Entity interface {
	Kind() Kind
	LocalID() int64
	Common() *Media

	entity()
}

// Media holds the attributes every kind shares. Length means pages for
// books, runtime minutes for movies and the episode count for episodic kinds.
type Media struct {
	globalID int64
	length   int

	Title         string
	Completed     bool
	DateCompleted *time.Time // nil when unknown
	ReleaseDate   *time.Time // nil when unknown
}

// Common returns the shared attributes.
func (m *Media) Common() *Media { return m }

// GlobalID is the process-wide identity assigned at construction.
func (m *Media) GlobalID() int64 { return m.globalID }

// Length returns the raw length backing pages, runtime or episode total.
func (m *Media) Length() int { return m.length }

// SetTitle replaces the title. Blank titles are rejected.
func (m *Media) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidArgument)
	}
	m.Title = title
	return nil
}

// MarkCompleted flags the item as finished. on may be nil when the date is unknown.
func (m *Media) MarkCompleted(on *time.Time) {
	m.Completed = true
	m.DateCompleted = normalizeDate(on)
}

// CommonParams are the construction inputs shared by all kinds.
type CommonParams struct {
	Title         string
	Completed     bool
	DateCompleted *time.Time
	ReleaseDate   *time.Time
}

func (p CommonParams) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidArgument)
	}
	return nil
}

func newMedia(id Identity, p CommonParams, length int) Media {
	return Media{
		globalID:      id.Global,
		length:        length,
		Title:         p.Title,
		Completed:     p.Completed,
		DateCompleted: normalizeDate(p.DateCompleted),
		ReleaseDate:   normalizeDate(p.ReleaseDate),
	}
}

// Date returns a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// normalizeDate drops the clock and zone so dates compare as calendar days.
func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return Date(t.Year(), t.Month(), t.Day())
}

func positive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, field, v)
	}
	return nil
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	}
	return nil
}
