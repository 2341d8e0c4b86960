package ledger

import "errors"

var (
	// ErrUnknownKind indicates a record whose kind tag matches no media kind.
	ErrUnknownKind = errors.New("unknown media kind")

	// ErrMalformed indicates a snapshot that is missing required keys or
	// carries values that cannot be decoded.
	ErrMalformed = errors.New("malformed ledger")

	// ErrLocked indicates another process holds the ledger file lock.
	ErrLocked = errors.New("ledger is locked by another process")
)
