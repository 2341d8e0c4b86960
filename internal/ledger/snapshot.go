package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// Snapshot is the persisted form of a library: its records in insertion
// order plus the identity counters at the time of capture.
type Snapshot struct {
	Media    []Record       `json:"media"`
	Counters media.Counters `json:"counters"`
}

// Capture records every entity of lib, in order, and the counters of ids.
func Capture(lib *library.Library, ids *media.Issuer) *Snapshot {
	all := lib.All()
	snap := &Snapshot{
		Media:    make([]Record, 0, len(all)),
		Counters: ids.Counters(),
	}
	for _, e := range all {
		snap.Media = append(snap.Media, ToRecord(e))
	}
	return snap
}

// Restore rebuilds a library and its issuer from snap. Counters are restored
// and raised past every persisted identity before any entity is
// reconstructed, so records without identities continue the persisted
// sequences. Restore is all-or-nothing.
func Restore(snap *Snapshot) (*library.Library, *media.Issuer, error) {
	if snap == nil {
		return nil, nil, fmt.Errorf("%w: no snapshot", ErrMalformed)
	}
	if err := snap.validate(); err != nil {
		return nil, nil, err
	}

	ids := media.NewIssuer()
	ids.Restore(snap.Counters)
	// Reserve every persisted ID first so IDs drawn for incomplete records
	// cannot collide with a later record.
	for _, rec := range snap.Media {
		ids.Observe(rec.Kind, media.Identity{Global: rec.GlobalID, Local: rec.LocalID})
	}

	lib := library.New()
	for i, rec := range snap.Media {
		e, err := FromRecord(ids, rec)
		if err != nil {
			return nil, nil, fmt.Errorf("media[%d]: %w", i, err)
		}
		gid := e.Common().GlobalID()
		if _, dup := lib.Get(gid); dup {
			return nil, nil, fmt.Errorf("media[%d]: %w: duplicate global_id %d", i, ErrMalformed, gid)
		}
		ids.Observe(e.Kind(), media.Identity{Global: gid, Local: e.LocalID()})
		lib.Insert(e)
	}
	return lib, ids, nil
}

func (s *Snapshot) validate() error {
	c := s.Counters
	counters := []struct {
		name  string
		value int64
	}{
		{"global_id", c.Global},
		{"book_id", c.Book},
		{"movie_id", c.Movie},
		{"anime_id", c.Anime},
		{"television_id", c.Television},
	}
	for _, ctr := range counters {
		if ctr.value < 0 {
			return fmt.Errorf("%w: counters.%s is negative", ErrMalformed, ctr.name)
		}
	}
	return nil
}

// wireSnapshot distinguishes missing keys from empty values.
type wireSnapshot struct {
	Media    []Record        `json:"media"`
	Counters *media.Counters `json:"counters"`
}

// Encode writes snap as indented JSON.
func Encode(w io.Writer, snap *Snapshot) error {
	records := snap.Media
	if records == nil {
		records = []Record{}
	}
	counters := snap.Counters
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wireSnapshot{Media: records, Counters: &counters}); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// Decode reads a snapshot written by Encode. Missing media or counters keys
// and undecodable JSON return ErrMalformed.
func Decode(r io.Reader) (*Snapshot, error) {
	var w wireSnapshot
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if w.Media == nil {
		return nil, fmt.Errorf("%w: missing media", ErrMalformed)
	}
	if w.Counters == nil {
		return nil, fmt.Errorf("%w: missing counters", ErrMalformed)
	}
	snap := &Snapshot{Media: w.Media, Counters: *w.Counters}
	if err := snap.validate(); err != nil {
		return nil, err
	}
	return snap, nil
}
