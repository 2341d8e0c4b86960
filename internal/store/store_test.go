package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "archive.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleSnapshot(t *testing.T) *ledger.Snapshot {
	t.Helper()
	ids := media.NewIssuer()
	lib := library.New()

	book, err := media.NewBook(ids, media.BookParams{
		CommonParams: media.CommonParams{Title: "Piranesi", Completed: true, DateCompleted: media.Date(2024, 3, 2)},
		Pages:        272,
		Author:       "Susanna Clarke",
		Binding:      "hardcover",
	})
	require.NoError(t, err)
	movie, err := media.NewMovie(ids, media.MovieParams{
		CommonParams:      media.CommonParams{Title: "Wake Up Dead Man", Completed: true},
		Runtime:           144,
		Director:          "Rian Johnson",
		WatchedInTheatres: true,
		StreamingPlatform: "Netflix",
	})
	require.NoError(t, err)
	tv, err := media.NewTelevision(ids, media.TelevisionParams{
		EpisodicParams: media.EpisodicParams{
			CommonParams:    media.CommonParams{Title: "Stranger Things", ReleaseDate: media.Date(2016, 7, 15)},
			EpisodesTotal:   42,
			EpisodesWatched: 30,
			NumSeasons:      5,
		},
		Platform: "Netflix",
	})
	require.NoError(t, err)

	lib.Insert(tv)
	lib.Insert(book)
	lib.Insert(movie)
	return ledger.Capture(lib, ids)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNoSnapshot)
}

func TestStore_SaveLoad(t *testing.T) {
	s := setupTestStore(t)
	snap := sampleSnapshot(t)

	require.NoError(t, s.Save(context.Background(), snap))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.Counters, got.Counters)
	assert.Equal(t, snap.Media, got.Media, "records should survive in insertion order")
}

func TestStore_SaveReplaces(t *testing.T) {
	s := setupTestStore(t)
	snap := sampleSnapshot(t)
	require.NoError(t, s.Save(context.Background(), snap))

	smaller := &ledger.Snapshot{Media: snap.Media[:1], Counters: snap.Counters}
	require.NoError(t, s.Save(context.Background(), smaller))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Media, 1)
	assert.Equal(t, "Stranger Things", got.Media[0].Title)
}

func TestStore_SaveRollsBackOnConstraint(t *testing.T) {
	s := setupTestStore(t)
	snap := sampleSnapshot(t)
	require.NoError(t, s.Save(context.Background(), snap))

	bad := &ledger.Snapshot{
		Media: []ledger.Record{
			{GlobalID: 1, LocalID: 1, Kind: media.KindMovie, Title: "A", Length: 90},
			{GlobalID: 1, LocalID: 2, Kind: media.KindMovie, Title: "B", Length: 90},
		},
		Counters: media.Counters{Global: 1, Movie: 2},
	}
	err := s.Save(context.Background(), bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate), "expected ErrDuplicate, got %v", err)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Media, 3, "failed save must leave the previous snapshot intact")
}

func TestStore_RejectsUnknownKind(t *testing.T) {
	s := setupTestStore(t)
	bad := &ledger.Snapshot{Media: []ledger.Record{{GlobalID: 1, LocalID: 1, Kind: "Magazine", Title: "Wired", Length: 1}}}

	err := s.Save(context.Background(), bad)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestStore_RestoresThroughLedger(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Save(context.Background(), sampleSnapshot(t)))

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	lib, ids, err := ledger.Restore(snap)
	require.NoError(t, err)

	assert.Equal(t, 3, lib.Count())
	tv := lib.ByKind(media.KindTelevision)[0].(*media.Television)
	assert.Equal(t, 30, tv.EpisodesWatched())
	require.NotNil(t, tv.ReleaseDate)
	assert.True(t, media.Date(2016, 7, 15).Equal(*tv.ReleaseDate))
	assert.Equal(t, int64(3), ids.Counters().Global)
}

func TestMapSQLiteError(t *testing.T) {
	assert.Nil(t, mapSQLiteError(nil))
	assert.ErrorIs(t, mapSQLiteError(errors.New("UNIQUE constraint failed: media.global_id")), ErrDuplicate)
	assert.ErrorIs(t, mapSQLiteError(errors.New("CHECK constraint failed: kind")), ErrConstraint)
	other := errors.New("disk I/O error")
	assert.Equal(t, other, mapSQLiteError(other))
}
