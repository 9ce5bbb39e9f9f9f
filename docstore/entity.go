package docstore

import (
	"context"
	"encoding/json"

	"golang.org/x/crypto/bcrypt"
)

// Entity decorates a resolved document with instance behaviors (write-back,
// credential check) without changing its enumerable shape: marshaling an
// Entity produces exactly the document, never the wrapper state.
type Entity struct {
	doc  Document
	coll *Collection
}

func newEntity(coll *Collection, doc Document) *Entity {
	return &Entity{doc: doc, coll: coll}
}

// ID returns the document identifier.
func (e *Entity) ID() string { return e.doc.ID() }

// Doc exposes the underlying document. Mutations through the returned map
// are local until Save is called.
func (e *Entity) Doc() Document { return e.doc }

// Get returns a field value.
func (e *Entity) Get(key string) any { return e.doc[key] }

// Set assigns a field value locally. Nothing is persisted until Save.
func (e *Entity) Set(key string, value any) { e.doc[key] = value }

// String, Float64, Int, Bool and Slice are typed field accessors.
func (e *Entity) String(key string) string   { return e.doc.String(key) }
func (e *Entity) Float64(key string) float64 { return e.doc.Float64(key) }
func (e *Entity) Int(key string) int         { return e.doc.Int(key) }
func (e *Entity) Bool(key string) bool       { return e.doc.Bool(key) }
func (e *Entity) Slice(key string) []any     { return e.doc.Slice(key) }

// Decode unmarshals the document into a typed struct via a JSON round trip.
func (e *Entity) Decode(v any) error {
	raw, err := json.Marshal(e.doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// MarshalJSON makes entities serialize as their documents, so handlers can
// return them directly without wrapper state leaking into responses.
func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc)
}

// Save writes the current (possibly locally mutated) field values back over
// the live record with the same _id and flushes the store, returning a
// freshly wrapped read-back copy. If the record was deleted concurrently,
// Save fails with ErrNotFound instead of recreating it. _id and createdAt
// are never overwritten; updatedAt is deliberately left alone too, matching
// the store's long-standing behavior of only stamping it at creation.
func (e *Entity) Save(ctx context.Context) (*Entity, error) {
	id := e.ID()
	if id == "" {
		return nil, ErrNotFound
	}

	snapshot := e.doc.Clone()
	err := e.coll.storage.Update(ctx, e.coll.name, func(docs []Document) ([]Document, error) {
		for i, doc := range docs {
			if doc.ID() != id {
				continue
			}
			snapshot[FieldID] = doc[FieldID]
			snapshot[FieldCreatedAt] = doc[FieldCreatedAt]
			docs[i] = snapshot
			return docs, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}

	return e.coll.FindByID(id).One(ctx)
}

// MatchPassword compares a candidate secret against the stored credential
// using bcrypt. The stored value is always a salted one-way hash; a
// plaintext credential in the store never matches anything.
func (e *Entity) MatchPassword(candidate string) bool {
	stored := e.doc.String("password")
	if stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
