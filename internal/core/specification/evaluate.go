package specification

import (
	"reflect"
	"sort"
	"strings"
	"time"
)

// The in-memory evaluator mirrors the storage translation so mock
// repositories can execute the same queries the real engine does. Fields are
// resolved through bson struct tags, which are also the canonical field names
// used by Field constants.

// Matches reports whether v satisfies every predicate and the search clause.
// Includes, sort and pagination are ignored; see Apply.
func (q *Query[T]) Matches(v T) bool {
	rv := reflect.Indirect(reflect.ValueOf(v))
	for _, p := range q.preds {
		fv, ok := fieldByName(rv, string(p.Field))
		if !ok || !matchPredicate(fv, p) {
			return false
		}
	}
	if q.search != nil {
		hit := false
		for _, f := range q.search.Fields {
			fv, ok := fieldByName(rv, string(f))
			if ok && fv.Kind() == reflect.String &&
				strings.Contains(strings.ToLower(fv.String()), strings.ToLower(q.search.Term)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// Apply filters, sorts and windows items, returning a new slice. It is the
// reference implementation of query execution for in-memory repositories.
func (q *Query[T]) Apply(items []T) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if q.Matches(it) {
			out = append(out, it)
		}
	}
	if len(q.sorts) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			ri := reflect.Indirect(reflect.ValueOf(out[i]))
			rj := reflect.Indirect(reflect.ValueOf(out[j]))
			for _, key := range q.sorts {
				vi, oki := fieldByName(ri, string(key.Field))
				vj, okj := fieldByName(rj, string(key.Field))
				if !oki || !okj {
					continue
				}
				c, ok := compareValues(vi.Interface(), vj.Interface())
				if !ok || c == 0 {
					continue
				}
				if key.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	if q.window != nil {
		skip, take, err := q.window.Window()
		if err != nil {
			return nil, err
		}
		if skip >= int64(len(out)) {
			return []T{}, nil
		}
		out = out[skip:]
		if take < int64(len(out)) {
			out = out[:take]
		}
	}
	return out, nil
}

func matchPredicate(fv reflect.Value, p Predicate) bool {
	switch p.Op {
	case OpEq:
		c, ok := compareValues(fv.Interface(), p.Value)
		return ok && c == 0
	case OpNe:
		c, ok := compareValues(fv.Interface(), p.Value)
		return ok && c != 0
	case OpGt:
		c, ok := compareValues(fv.Interface(), p.Value)
		return ok && c > 0
	case OpGte:
		c, ok := compareValues(fv.Interface(), p.Value)
		return ok && c >= 0
	case OpLt:
		c, ok := compareValues(fv.Interface(), p.Value)
		return ok && c < 0
	case OpLte:
		c, ok := compareValues(fv.Interface(), p.Value)
		return ok && c <= 0
	case OpIn:
		values, ok := p.Value.([]any)
		if !ok {
			return false
		}
		for _, v := range values {
			if c, ok := compareValues(fv.Interface(), v); ok && c == 0 {
				return true
			}
		}
		return false
	case OpContains:
		s, ok := p.Value.(string)
		return ok && fv.Kind() == reflect.String &&
			strings.Contains(strings.ToLower(fv.String()), strings.ToLower(s))
	case OpHasPrefix:
		s, ok := p.Value.(string)
		return ok && fv.Kind() == reflect.String && strings.HasPrefix(fv.String(), s)
	case OpHasSuffix:
		s, ok := p.Value.(string)
		return ok && fv.Kind() == reflect.String && strings.HasSuffix(fv.String(), s)
	}
	return false
}

// fieldByName resolves a struct field by its bson tag (first token), walking
// embedded structs. Falls back to a case-insensitive match on the Go name.
func fieldByName(rv reflect.Value, name string) (reflect.Value, bool) {
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.Anonymous {
			if fv, ok := fieldByName(reflect.Indirect(rv.Field(i)), name); ok {
				return fv, true
			}
			continue
		}
		tag := strings.Split(sf.Tag.Get("bson"), ",")[0]
		if tag == name || (tag == "" && strings.EqualFold(sf.Name, name)) {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// compareValues compares two scalars of possibly different but compatible
// kinds. Returns -1/0/1 and whether the pair was comparable.
func compareValues(a, b any) (int, bool) {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt), true
		}
		return 0, false
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if af, ok := asFloat(av); ok {
		if bf, ok := asFloat(bv); ok {
			switch {
			case af < bf:
				return -1, true
			case af > bf:
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return strings.Compare(av.String(), bv.String()), true
	}
	if av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool {
		switch {
		case av.Bool() == bv.Bool():
			return 0, true
		case bv.Bool():
			return -1, true
		}
		return 1, true
	}
	return 0, false
}

func asFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
