package repository

import "errors"

// ErrNotFound is returned by every repository when a lookup or a mutation
// targets an id that does not exist. Handlers map it to 404.
var ErrNotFound = errors.New("not found")
