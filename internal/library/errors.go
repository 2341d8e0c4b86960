package library

import "errors"

var (
	// ErrEmptyLibrary indicates there is nothing to display.
	ErrEmptyLibrary = errors.New("library is empty")

	// ErrNotFound indicates no entity has the requested ID.
	ErrNotFound = errors.New("not found")
)
