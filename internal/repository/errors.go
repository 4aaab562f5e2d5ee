package repository

import "errors"

// ErrNotFound is returned by FindByID when no record has the given id.
// UpdateStatus deliberately does not return it; a no-op update reports
// zero rows affected instead.
var ErrNotFound = errors.New("not found")
