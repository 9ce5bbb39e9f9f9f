package docstore

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Filter maps field names to constraints. A plain value means exact match;
// a Cond carries comparison operators. Fields absent from the filter are
// unconstrained.
type Filter map[string]any

// Cond is an operator document for a single field, e.g.
// Cond{"$regex": "phone", "$options": "i"} or Cond{"$in": []any{"a", "b"}}.
// Operators the engine does not recognize are silently ignored, which leaves
// the field unconstrained. That soundness gap is a documented limitation of
// the query language, kept so filters with stray operators behave the same
// as they always have instead of crashing.
type Cond map[string]any

// Regex builds a $regex condition. Supported option: "i" for
// case-insensitive matching.
func Regex(pattern, options string) Cond {
	return Cond{"$regex": pattern, "$options": options}
}

// In builds a $in condition accepting any of the given values.
func In(values ...any) Cond {
	return Cond{"$in": values}
}

// predicate is one compiled per-document test.
type predicate func(doc Document) bool

// compileFilter turns a Filter into predicates, compiling regular
// expressions once per resolution. An invalid pattern fails the whole plan.
func compileFilter(filter Filter) ([]predicate, error) {
	preds := make([]predicate, 0, len(filter))
	for field, constraint := range filter {
		var cond map[string]any
		switch c := constraint.(type) {
		case Cond:
			cond = c
		case map[string]any:
			cond = c
		default:
			field, want := field, constraint
			preds = append(preds, func(doc Document) bool {
				return valueToString(doc[field]) == valueToString(want)
			})
			continue
		}

		p, err := compileCond(field, cond)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p...)
	}
	return preds, nil
}

// compileCond compiles the recognized operators of one condition document.
func compileCond(field string, cond map[string]any) ([]predicate, error) {
	var preds []predicate

	if pat, ok := cond["$regex"]; ok {
		pattern := valueToString(pat)
		if opts := valueToString(cond["$options"]); strings.Contains(opts, "i") {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid $regex for field %q: %w", field, err)
		}
		preds = append(preds, func(doc Document) bool {
			return re.MatchString(valueToString(doc[field]))
		})
	}

	if raw, ok := cond["$in"]; ok {
		accepted := map[string]struct{}{}
		switch vals := raw.(type) {
		case []any:
			for _, v := range vals {
				accepted[valueToString(v)] = struct{}{}
			}
		case []string:
			for _, v := range vals {
				accepted[v] = struct{}{}
			}
		default:
			return nil, fmt.Errorf("$in for field %q requires a slice, got %T", field, raw)
		}
		preds = append(preds, func(doc Document) bool {
			_, ok := accepted[valueToString(doc[field])]
			return ok
		})
	}

	// Anything else in cond is an unsupported operator: ignored on purpose.
	return preds, nil
}

// valueToString normalizes a field value for comparison. Numbers format
// without a trailing ".0" so 5 and 5.0 compare equal regardless of whether
// the value came from the caller or back off disk.
func valueToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return timestamp(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
