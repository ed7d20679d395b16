package repository

import "errors"

// ErrNotFound is the sentinel wrapped by every repository when a referenced
// row does not exist.
var ErrNotFound = errors.New("not found")
