package docstore

import (
	"context"
	"time"
)

// Collection is a thin accessor binding a collection name and an advisory
// defaults table to the shared storage handle. Per-kind specializations
// differ only in name and defaults; there is no behavioral branching.
type Collection struct {
	name     string
	storage  Storage
	defaults map[string]any
}

// NewCollection builds an accessor for the named collection. defaults may be
// nil; when present, each default fills a field the caller omitted at create
// time. Defaults are soft: they never validate or reject anything.
func NewCollection(storage Storage, name string, defaults map[string]any) *Collection {
	return &Collection{name: name, storage: storage, defaults: defaults}
}

// Create assigns an identifier and timestamps, appends the document to the
// collection and flushes the store.
func (c *Collection) Create(ctx context.Context, fields map[string]any) (*Entity, error) {
	doc := c.newDocument(fields, time.Now())
	err := c.storage.Update(ctx, c.name, func(docs []Document) ([]Document, error) {
		return append(docs, doc), nil
	})
	if err != nil {
		return nil, err
	}
	return newEntity(c, doc.Clone()), nil
}

// InsertMany creates all items in one read-modify-flush cycle.
func (c *Collection) InsertMany(ctx context.Context, items []map[string]any) ([]*Entity, error) {
	now := time.Now()
	created := make([]Document, len(items))
	for i, fields := range items {
		created[i] = c.newDocument(fields, now)
	}

	err := c.storage.Update(ctx, c.name, func(docs []Document) ([]Document, error) {
		return append(docs, created...), nil
	})
	if err != nil {
		return nil, err
	}

	entities := make([]*Entity, len(created))
	for i, doc := range created {
		entities[i] = newEntity(c, doc.Clone())
	}
	return entities, nil
}

// Find builds a deferred plan over this collection. Nothing is read until
// the plan is resolved.
func (c *Collection) Find(filter Filter) *Query {
	return &Query{coll: c, filter: filter}
}

// FindByID is sugar for Find on the _id field.
func (c *Collection) FindByID(id string) *Query {
	return c.Find(Filter{FieldID: id})
}

// FindOne resolves the filter's first match, or ErrNotFound when nothing
// matched.
func (c *Collection) FindOne(ctx context.Context, filter Filter) (*Entity, error) {
	return c.Find(filter).One(ctx)
}

// DeleteMany removes every document matching the filter and returns how many
// were removed. A filter matching nothing deletes nothing and is not an
// error.
func (c *Collection) DeleteMany(ctx context.Context, filter Filter) (int, error) {
	preds, err := compileFilter(filter)
	if err != nil {
		return 0, err
	}

	removed := 0
	err = c.storage.Update(ctx, c.name, func(docs []Document) ([]Document, error) {
		kept := make([]Document, 0, len(docs))
		for _, doc := range docs {
			if matchesAll(doc, preds) {
				removed++
				continue
			}
			kept = append(kept, doc)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// DeleteByID removes a single document, failing with ErrNotFound when the
// identifier does not exist.
func (c *Collection) DeleteByID(ctx context.Context, id string) error {
	return c.storage.Update(ctx, c.name, func(docs []Document) ([]Document, error) {
		for i, doc := range docs {
			if doc.ID() == id {
				return append(docs[:i], docs[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
}

// newDocument copies caller fields, applies defaults for omitted fields and
// stamps identity and timestamps.
func (c *Collection) newDocument(fields map[string]any, now time.Time) Document {
	doc := make(Document, len(fields)+len(c.defaults)+3)
	for k, v := range fields {
		doc[k] = cloneValue(v)
	}
	for k, v := range c.defaults {
		if _, ok := doc[k]; !ok {
			doc[k] = cloneValue(v)
		}
	}
	doc[FieldID] = NewDocumentID()
	doc[FieldCreatedAt] = timestamp(now)
	doc[FieldUpdatedAt] = timestamp(now)
	return doc
}
