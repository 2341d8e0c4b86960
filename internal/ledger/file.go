package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/Paolo-Ciccarelli/media-ledger/internal/library"
	"github.com/Paolo-Ciccarelli/media-ledger/internal/media"
)

// ErrNoSnapshot indicates the store has never been saved to.
var ErrNoSnapshot = errors.New("no saved ledger")

// Store persists snapshots.
type Store interface {
	// Load returns the last saved snapshot, or ErrNoSnapshot.
	Load(ctx context.Context) (*Snapshot, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snap *Snapshot) error
}

// FileStore keeps a snapshot in a single JSON file. Saves write a temp file
// in the same directory and rename it over the target.
type FileStore struct {
	path string
	lock *flock.Flock // nil when locking is disabled
	log  *slog.Logger
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithLock guards every load and save with an advisory lock on path.lock.
func WithLock() FileOption {
	return func(s *FileStore) {
		s.lock = flock.New(s.path + ".lock")
	}
}

// NewFileStore returns a store backed by the JSON file at path.
func NewFileStore(path string, log *slog.Logger, opts ...FileOption) *FileStore {
	s := &FileStore{path: path, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and decodes the ledger file.
func (s *FileStore) Load(_ context.Context) (*Snapshot, error) {
	unlock, err := s.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", s.path, ErrNoSnapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	snap, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	s.log.Debug("ledger loaded", "path", s.path, "media", len(snap.Media))
	return snap, nil
}

// Save encodes snap and atomically replaces the ledger file.
func (s *FileStore) Save(_ context.Context, snap *Snapshot) error {
	var buf bytes.Buffer
	if err := Encode(&buf, snap); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(s.fileMode()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.log.Debug("ledger saved", "path", s.path, "media", len(snap.Media))
	return nil
}

// fileMode keeps the permissions of an existing ledger file. New files are
// created 0644.
func (s *FileStore) fileMode() os.FileMode {
	if fi, err := os.Stat(s.path); err == nil {
		return fi.Mode().Perm()
	}
	return 0o644
}

func (s *FileStore) acquire() (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.log.Warn("failed to release ledger lock", "path", s.lock.Path(), "error", err)
		}
	}, nil
}

// SaveLibrary writes lib and the counters of ids to the JSON file at path.
func SaveLibrary(lib *library.Library, ids *media.Issuer, path string) error {
	store := NewFileStore(path, slog.New(slog.DiscardHandler))
	return store.Save(context.Background(), Capture(lib, ids))
}

// LoadLibrary reads the JSON file at path and rebuilds the library and the
// issuer that continues its ID sequences.
func LoadLibrary(path string) (*library.Library, *media.Issuer, error) {
	store := NewFileStore(path, slog.New(slog.DiscardHandler))
	snap, err := store.Load(context.Background())
	if err != nil {
		return nil, nil, err
	}
	return Restore(snap)
}
