// Package docstore implements a single-file embedded document store with a
// small deferred query language.
//
// All collections live in one JSON file. Every mutation is a full
// read-modify-flush cycle serialized through a single writer lock, so each
// create, update and delete is atomic relative to other callers in the same
// process; a sidecar flock guards against other processes.
//
// Queries are built as immutable plans (filter plus an ordered list of
// cursor operations) and evaluate lazily: nothing touches the file until the
// plan is resolved with Find or One, and each resolution re-reads the
// collection.
package docstore
