package docstore

import "sort"

// Sort directions, matching the {field: 1} / {field: -1} convention of the
// query language this engine emulates.
const (
	Ascending  = 1
	Descending = -1
)

// sortDocuments reorders docs in place by a single key. The sort is stable:
// equal keys keep whatever order was in effect when the sort op applied.
func sortDocuments(docs []Document, field string, dir int) {
	desc := dir == Descending
	sort.SliceStable(docs, func(i, j int) bool {
		less, equal := compareValues(docs[i][field], docs[j][field])
		if equal {
			return false
		}
		if desc {
			return !less
		}
		return less
	})
}

// compareValues orders two field values. Numeric pairs compare numerically;
// everything else falls back to the normalized string form, which also
// orders RFC 3339 timestamps chronologically.
func compareValues(a, b any) (less, equal bool) {
	if fa, aok := asFloat(a); aok {
		if fb, bok := asFloat(b); bok {
			return fa < fb, fa == fb
		}
	}
	sa, sb := valueToString(a), valueToString(b)
	return sa < sb, sa == sb
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	}
	return 0, false
}
