package docstore

import "errors"

// ErrNotFound is returned when an operation that requires an existing
// document matched nothing: resolving One over an empty result, or saving a
// wrapper whose record was deleted underneath it.
var ErrNotFound = errors.New("document not found")
