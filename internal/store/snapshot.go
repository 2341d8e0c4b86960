package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/ledger"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

const mediaColumns = `global_id, kind, local_id, title, length, completion_status, date_completed, release_date,
	author, binding, publisher, director, watched_in_theatres, streaming_platform, distributor,
	episodes_watched, episodes_total, num_seasons, showrunner, platform`

func insertRecord(ctx context.Context, q querier, position int, r *ledger.Record) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO media (position, `+mediaColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		position, r.GlobalID, r.Kind, r.LocalID, r.Title, r.Length, r.CompletionStatus, r.DateCompleted, r.ReleaseDate,
		r.Author, r.Binding, r.Publisher, r.Director, r.WatchedInTheatres, r.StreamingPlatform, r.Distributor,
		r.EpisodesWatched, r.EpisodesTotal, r.NumSeasons, r.Showrunner, r.Platform,
	)
	if err != nil {
		return fmt.Errorf("insert media %d: %w", r.GlobalID, mapSQLiteError(err))
	}
	return nil
}

func listRecords(ctx context.Context, q querier) ([]ledger.Record, error) {
	rows, err := q.QueryContext(ctx, "SELECT "+mediaColumns+" FROM media ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []ledger.Record{}
	for rows.Next() {
		var r ledger.Record
		if err := rows.Scan(&r.GlobalID, &r.Kind, &r.LocalID, &r.Title, &r.Length, &r.CompletionStatus, &r.DateCompleted, &r.ReleaseDate,
			&r.Author, &r.Binding, &r.Publisher, &r.Director, &r.WatchedInTheatres, &r.StreamingPlatform, &r.Distributor,
			&r.EpisodesWatched, &r.EpisodesTotal, &r.NumSeasons, &r.Showrunner, &r.Platform); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media: %w", err)
	}
	return records, nil
}

func putCounters(ctx context.Context, q querier, c media.Counters) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO counters (id, global_id, book_id, movie_id, anime_id, television_id, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			global_id = excluded.global_id,
			book_id = excluded.book_id,
			movie_id = excluded.movie_id,
			anime_id = excluded.anime_id,
			television_id = excluded.television_id,
			saved_at = excluded.saved_at`,
		c.Global, c.Book, c.Movie, c.Anime, c.Television, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save counters: %w", mapSQLiteError(err))
	}
	return nil
}

func getCounters(ctx context.Context, q querier) (media.Counters, error) {
	var c media.Counters
	err := q.QueryRowContext(ctx, `
		SELECT global_id, book_id, movie_id, anime_id, television_id
		FROM counters WHERE id = 1`,
	).Scan(&c.Global, &c.Book, &c.Movie, &c.Anime, &c.Television)
	if err != nil {
		return media.Counters{}, fmt.Errorf("get counters: %w", mapSQLiteError(err))
	}
	return c, nil
}

// ReplaceSnapshot clears the archive and writes snap within the transaction.
func (t *Tx) ReplaceSnapshot(ctx context.Context, snap *ledger.Snapshot) error {
	if _, err := t.tx.ExecContext(ctx, "DELETE FROM media"); err != nil {
		return fmt.Errorf("clear media: %w", mapSQLiteError(err))
	}
	for i := range snap.Media {
		if err := insertRecord(ctx, t.tx, i, &snap.Media[i]); err != nil {
			return err
		}
	}
	return putCounters(ctx, t.tx, snap.Counters)
}

// Save replaces the archived snapshot in a single transaction.
func (s *Store) Save(ctx context.Context, snap *ledger.Snapshot) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	if err := tx.ReplaceSnapshot(ctx, snap); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	s.log.Debug("archive saved", "media", len(snap.Media))
	return nil
}

// Load reads the archived snapshot. Returns ledger.ErrNoSnapshot when the
// archive has never been saved to.
func (s *Store) Load(ctx context.Context) (*ledger.Snapshot, error) {
	counters, err := getCounters(ctx, s.db)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("load archive: %w", ledger.ErrNoSnapshot)
	}
	if err != nil {
		return nil, err
	}
	records, err := listRecords(ctx, s.db)
	if err != nil {
		return nil, err
	}
	s.log.Debug("archive loaded", "media", len(records))
	return &ledger.Snapshot{Media: records, Counters: counters}, nil
}

var _ ledger.Store = (*Store)(nil)
