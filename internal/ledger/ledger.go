package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks . Store

// Ledger is one working session over a Store: the library and the issuer
// that new entities must be constructed with.
type Ledger struct {
	store Store
	log   *slog.Logger
	lib   *library.Library
	ids   *media.Issuer
}

// Open loads the ledger from store. A store that was never saved yields an
// empty ledger.
func Open(ctx context.Context, store Store, log *slog.Logger) (*Ledger, error) {
	l := &Ledger{store: store, log: log}

	snap, err := store.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		log.Info("starting new ledger")
		l.lib, l.ids = library.New(), media.NewIssuer()
		return l, nil
	case err != nil:
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	if l.lib, l.ids, err = Restore(snap); err != nil {
		return nil, fmt.Errorf("restore ledger: %w", err)
	}
	log.Debug("ledger opened", "media", l.lib.Count(), "global_id", l.ids.Counters().Global)
	return l, nil
}

// Library returns the indexed entities.
func (l *Ledger) Library() *library.Library { return l.lib }

// Issuer returns the identity source for new entities.
func (l *Ledger) Issuer() *media.Issuer { return l.ids }

// Add inserts an entity built with Issuer.
func (l *Ledger) Add(e media.Entity) {
	l.lib.Insert(e)
	l.log.Info("media added",
		"id", e.Common().GlobalID(),
		"kind", e.Kind(),
		"title", e.Common().Title)
}

// Commit saves the current state to the store.
func (l *Ledger) Commit(ctx context.Context) error {
	if err := l.store.Save(ctx, Capture(l.lib, l.ids)); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	l.log.Debug("ledger committed", "media", l.lib.Count())
	return nil
}

// Export writes the current state to another store.
func (l *Ledger) Export(ctx context.Context, to Store) error {
	if err := to.Save(ctx, Capture(l.lib, l.ids)); err != nil {
		return fmt.Errorf("export ledger: %w", err)
	}
	l.log.Info("ledger exported", "media", l.lib.Count())
	return nil
}

// Import replaces the current state with the snapshot held by from.
// The session is unchanged when the import fails.
func (l *Ledger) Import(ctx context.Context, from Store) error {
	snap, err := from.Load(ctx)
	if err != nil {
		return fmt.Errorf("import ledger: %w", err)
	}
	lib, ids, err := Restore(snap)
	if err != nil {
		return fmt.Errorf("import ledger: %w", err)
	}
	l.lib, l.ids = lib, ids
	l.log.Info("ledger imported", "media", lib.Count())
	return nil
}
