package repositories

import "errors"

// ErrNotFound marks lookups that matched no row. Implementations wrap it with
// context, so callers test with errors.Is.
var ErrNotFound = errors.New("not found")
