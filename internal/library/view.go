package library

import (
	"fmt"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// Row is one line of the library display.
type Row struct {
	ID     int64
	Kind   media.Kind
	Title  string
	Detail string
}

// Rows returns one display row per entity in insertion order.
// Returns ErrEmptyLibrary when there is nothing to show.
func (l *Library) Rows() ([]Row, error) {
	if len(l.all) == 0 {
		return nil, ErrEmptyLibrary
	}
	rows := make([]Row, 0, len(l.all))
	for _, e := range l.all {
		rows = append(rows, Row{
			ID:     e.Common().GlobalID(),
			Kind:   e.Kind(),
			Title:  e.Common().Title,
			Detail: Detail(e),
		})
	}
	return rows, nil
}

// Lookup is Get with an error for the CLI.
func (l *Library) Lookup(globalID int64) (media.Entity, error) {
	e, ok := l.byID[globalID]
	if !ok {
		return nil, fmt.Errorf("media %d: %w", globalID, ErrNotFound)
	}
	return e, nil
}

// Detail formats the kind-specific summary column.
func Detail(e media.Entity) string {
	switch v := e.(type) {
	case *media.Book:
		return fmt.Sprintf("%d pages | Author: %s", v.Pages(), v.Author)
	case *media.Movie:
		s := fmt.Sprintf("%d min", v.Runtime())
		if v.Director != "" {
			s += " | Director: " + v.Director
		}
		return s
	case media.EpisodicEntity:
		p := v.Progress()
		return fmt.Sprintf("%d/%d eps | %s", p.EpisodesWatched(), p.EpisodesTotal(), seasons(p.NumSeasons()))
	}
	return ""
}

func seasons(n int) string {
	if n == 1 {
		return "1 season"
	}
	return fmt.Sprintf("%d seasons", n)
}
