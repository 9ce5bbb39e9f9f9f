package docstore

import (
	"crypto/rand"
	"time"
)

// Field names the store manages on every document.
const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Document is one schemaless record in a collection. Beyond the synthetic
// _id/createdAt/updatedAt fields the shape is entirely caller-defined; any
// per-entity schema is advisory (defaults, not validation).
type Document map[string]any

// ID returns the document identifier, or "" for an unsaved document.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// String returns the named field as a string, or "" when absent or not a
// string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Float64 returns the named field as a float64. JSON numbers decode to
// float64, so this covers every numeric field read back from the file;
// in-memory int values set by callers are converted too.
func (d Document) Float64(key string) float64 {
	switch v := d[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Int returns the named field truncated to an int.
func (d Document) Int(key string) int {
	return int(d.Float64(key))
}

// Bool returns the named field as a bool, or false when absent.
func (d Document) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Slice returns the named field as a []any, or nil when absent.
func (d Document) Slice(key string) []any {
	s, _ := d[key].([]any)
	return s
}

// Clone returns a deep copy of the document. Nested maps and slices are
// copied so mutations on the clone never leak into the original.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = cloneValue(e)
		}
		return out
	case Document:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewDocumentID returns a short random opaque identifier. Nine base36
// characters gives enough entropy for a single-file store while staying
// readable in the JSON file.
func NewDocumentID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// timestamp so we still return something unique-ish.
		return time.Now().UTC().Format("150405.000000000")
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}

// timestamp formats creation/update times the way they are persisted.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
