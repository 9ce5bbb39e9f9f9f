package docstore

import "context"

// cursor op kinds.
type opKind int

const (
	opLimit opKind = iota
	opSort
)

type cursorOp struct {
	kind  opKind
	n     int
	field string
	dir   int
}

// Query is a deferred plan: a filter plus cursor operations in attachment
// order. Building a plan never touches storage; only Find or One resolves
// it, and every resolution re-reads the collection from the store.
//
// Cursor operations apply strictly in the order they were attached, not by
// fixed precedence: Limit before Sort truncates first and then orders the
// truncated slice, which is a different result than Sort before Limit. That
// ordering sensitivity is part of the contract.
type Query struct {
	coll   *Collection
	filter Filter
	ops    []cursorOp
}

// Limit truncates the result to the first n documents in whatever order is
// in effect at this point of the chain.
func (q *Query) Limit(n int) *Query {
	q.ops = append(q.ops, cursorOp{kind: opLimit, n: n})
	return q
}

// Sort reorders the result by a single field, Ascending or Descending.
// Compound sort keys are not supported.
func (q *Query) Sort(field string, dir int) *Query {
	q.ops = append(q.ops, cursorOp{kind: opSort, field: field, dir: dir})
	return q
}

// Find resolves the plan and returns every matching document wrapped with
// entity behaviors.
func (q *Query) Find(ctx context.Context) ([]*Entity, error) {
	docs, err := q.execute(ctx)
	if err != nil {
		return nil, err
	}
	entities := make([]*Entity, len(docs))
	for i, doc := range docs {
		entities[i] = newEntity(q.coll, doc)
	}
	return entities, nil
}

// One resolves the plan and returns the first match, or ErrNotFound when
// nothing matched. It never mutates or persists anything.
func (q *Query) One(ctx context.Context) (*Entity, error) {
	docs, err := q.execute(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return newEntity(q.coll, docs[0]), nil
}

// Count resolves the plan and returns the number of matches.
func (q *Query) Count(ctx context.Context) (int, error) {
	docs, err := q.execute(ctx)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// execute reads a collection snapshot, applies the filter, then the cursor
// ops in attachment order.
func (q *Query) execute(ctx context.Context) ([]Document, error) {
	preds, err := compileFilter(q.filter)
	if err != nil {
		return nil, err
	}

	snapshot, err := q.coll.storage.ReadCollection(ctx, q.coll.name)
	if err != nil {
		return nil, err
	}

	result := make([]Document, 0, len(snapshot))
	for _, doc := range snapshot {
		if matchesAll(doc, preds) {
			result = append(result, doc)
		}
	}

	for _, op := range q.ops {
		switch op.kind {
		case opLimit:
			if op.n >= 0 && op.n < len(result) {
				result = result[:op.n]
			}
		case opSort:
			sortDocuments(result, op.field, op.dir)
		}
	}

	return result, nil
}

func matchesAll(doc Document, preds []predicate) bool {
	for _, p := range preds {
		if !p(doc) {
			return false
		}
	}
	return true
}
