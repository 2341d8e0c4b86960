package media

import "errors"

// ErrInvalidArgument indicates a rejected construction or field update.
// The entity is left unchanged when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")
