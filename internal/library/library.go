// Package library indexes media entities in memory: an insertion-ordered
// list, a lookup by global ID, and a per-kind partition.
//
// Mutations here are best-effort. UpdateEpisodesWatched and
// UpdateTotalEpisodes never return errors; an update that targets an
// untracked entity, a non-episodic kind, or an out-of-range value is
// dropped and reported as not applied. The strict, error-returning setters
// live on the entities themselves.
package library

import (
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// Library is the in-memory media index. The zero value is not usable; call New.
// Entries are append-only.
type Library struct {
	all    []media.Entity
	byID   map[int64]media.Entity
	byKind map[media.Kind][]media.Entity
}

// New returns an empty library.
func New() *Library {
	byKind := make(map[media.Kind][]media.Entity, len(media.Kinds))
	for _, k := range media.Kinds {
		byKind[k] = nil
	}
	return &Library{
		byID:   make(map[int64]media.Entity),
		byKind: byKind,
	}
}

// Insert appends e to the ordered list, registers it under its global ID and,
// for recognized kinds, appends it to the kind partition.
// Uniqueness of global IDs is the caller's responsibility.
func (l *Library) Insert(e media.Entity) {
	if e == nil {
		return
	}
	l.all = append(l.all, e)
	l.byID[e.Common().GlobalID()] = e

	if part, ok := l.byKind[e.Kind()]; ok {
		l.byKind[e.Kind()] = append(part, e)
	}
}

// Get looks up an entity by global ID.
func (l *Library) Get(globalID int64) (media.Entity, bool) {
	e, ok := l.byID[globalID]
	return e, ok
}

// All returns the entities in insertion order.
func (l *Library) All() []media.Entity {
	out := make([]media.Entity, len(l.all))
	copy(out, l.all)
	return out
}

// ByKind returns the entities of one kind in insertion order.
func (l *Library) ByKind(kind media.Kind) []media.Entity {
	part := l.byKind[kind]
	out := make([]media.Entity, len(part))
	copy(out, part)
	return out
}

// Count returns the total number of entities.
func (l *Library) Count() int {
	return len(l.all)
}

// CountByKind returns the number of entities of kind, 0 for unrecognized kinds.
func (l *Library) CountByKind(kind media.Kind) int {
	return len(l.byKind[kind])
}

// UpdateEpisodesWatched sets the watched count of a tracked anime or
// television entry when 0 <= n <= episodes total. Reports whether the
// update was applied.
func (l *Library) UpdateEpisodesWatched(e media.Entity, n int) bool {
	ep, ok := l.trackedEpisodic(e)
	if !ok {
		return false
	}
	p := ep.Progress()
	if n < 0 || n > p.EpisodesTotal() {
		return false
	}
	return p.SetEpisodesWatched(n) == nil
}

// UpdateTotalEpisodes raises the episode total of a tracked anime or
// television entry when new episodes are released. Totals only grow here:
// n must be at least the current total. Reports whether the update was applied.
func (l *Library) UpdateTotalEpisodes(e media.Entity, n int) bool {
	ep, ok := l.trackedEpisodic(e)
	if !ok {
		return false
	}
	p := ep.Progress()
	if n < p.EpisodesTotal() {
		return false
	}
	return p.SetEpisodesTotal(n) == nil
}

// trackedEpisodic returns e as an episodic entity if this exact instance
// was inserted into its kind partition.
func (l *Library) trackedEpisodic(e media.Entity) (media.EpisodicEntity, bool) {
	ep, ok := e.(media.EpisodicEntity)
	if !ok {
		return nil, false
	}
	for _, tracked := range l.byKind[e.Kind()] {
		if tracked == e {
			return ep, true
		}
	}
	return nil, false
}
