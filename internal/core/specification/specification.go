// Package specification provides a storage-agnostic description of what
// subset of one entity type is wanted: filter predicates, free-text search,
// relation inclusion, ordering and pagination. Building a query never touches
// storage; translation to a concrete engine lives in the infrastructure layer.
package specification

import "errors"

// ErrInvalidPagination is returned when a declared window is not executable
// (page, limit or take below one, negative skip). The builder stores
// pagination literally and never normalizes; consumers either reject or
// normalize at their own edge.
var ErrInvalidPagination = errors.New("specification: invalid pagination window")

// Field names a queryable entity attribute. Entities declare their fields as
// typed constants next to the entity definition, so a query can only be built
// against names that actually exist.
type Field string

// Operator is a field-level comparison.
type Operator int

const (
	OpEq Operator = iota
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
	OpIn
	OpContains
	OpHasPrefix
	OpHasSuffix
)

// Predicate narrows the result set; all predicates on a query are AND-ed.
type Predicate struct {
	Field Field
	Op    Operator
	Value any
}

// SortKey orders results by one field.
type SortKey struct {
	Field Field
	Desc  bool
}

// Search matches a term case-insensitively as a substring across the given
// fields, OR-ed together.
type Search struct {
	Term   string
	Fields []Field
}

// Pagination is either a 1-based page window or a raw skip/take window.
type Pagination struct {
	Page  int
	Limit int
	Skip  int64
	Take  int64
	Raw   bool
}

// Window resolves the pagination to (skip, limit). Declared but
// non-executable windows yield ErrInvalidPagination.
func (p *Pagination) Window() (int64, int64, error) {
	if p.Raw {
		// A take below one is rejected rather than interpreted: some engines
		// read limit 0 as "unlimited" while an in-memory window reads it as
		// "nothing", so the ambiguity must not reach an executor.
		if p.Skip < 0 || p.Take < 1 {
			return 0, 0, ErrInvalidPagination
		}
		return p.Skip, p.Take, nil
	}
	if p.Page < 1 || p.Limit < 1 {
		return 0, 0, ErrInvalidPagination
	}
	return int64(p.Page-1) * int64(p.Limit), int64(p.Limit), nil
}

// Query is a mutable builder tied to one entity type. The zero value (or
// New[T]()) means "everything, unpaged".
type Query[T any] struct {
	preds    []Predicate
	search   *Search
	includes []string
	sorts    []SortKey
	window   *Pagination
}

// New returns an empty query for T.
func New[T any]() *Query[T] {
	return &Query[T]{}
}

// Where adds a predicate; successive calls narrow the result set (AND).
func (q *Query[T]) Where(f Field, op Operator, v any) *Query[T] {
	q.preds = append(q.preds, Predicate{Field: f, Op: op, Value: v})
	return q
}

func (q *Query[T]) WhereEq(f Field, v any) *Query[T]  { return q.Where(f, OpEq, v) }
func (q *Query[T]) WhereNe(f Field, v any) *Query[T]  { return q.Where(f, OpNe, v) }
func (q *Query[T]) WhereGt(f Field, v any) *Query[T]  { return q.Where(f, OpGt, v) }
func (q *Query[T]) WhereGte(f Field, v any) *Query[T] { return q.Where(f, OpGte, v) }
func (q *Query[T]) WhereLt(f Field, v any) *Query[T]  { return q.Where(f, OpLt, v) }
func (q *Query[T]) WhereLte(f Field, v any) *Query[T] { return q.Where(f, OpLte, v) }

// WhereIn matches when the field equals any of the given values.
func (q *Query[T]) WhereIn(f Field, values ...any) *Query[T] {
	return q.Where(f, OpIn, values)
}

// WhereBetween is shorthand for an inclusive range.
func (q *Query[T]) WhereBetween(f Field, lo, hi any) *Query[T] {
	return q.WhereGte(f, lo).WhereLte(f, hi)
}

// WhereContains matches a case-insensitive substring on a string field.
func (q *Query[T]) WhereContains(f Field, s string) *Query[T] {
	return q.Where(f, OpContains, s)
}

func (q *Query[T]) WhereHasPrefix(f Field, s string) *Query[T] {
	return q.Where(f, OpHasPrefix, s)
}

func (q *Query[T]) WhereHasSuffix(f Field, s string) *Query[T] {
	return q.Where(f, OpHasSuffix, s)
}

// SearchFor declares free-text search across the given fields. An empty term
// or empty field list leaves the query unchanged.
func (q *Query[T]) SearchFor(term string, fields ...Field) *Query[T] {
	if term == "" || len(fields) == 0 {
		return q
	}
	q.search = &Search{Term: term, Fields: fields}
	return q
}

// Include declares relation inclusion paths, possibly nested
// (e.g. "assignments.role").
func (q *Query[T]) Include(paths ...string) *Query[T] {
	q.includes = append(q.includes, paths...)
	return q
}

// OrderBy appends an ascending sort key.
func (q *Query[T]) OrderBy(f Field) *Query[T] {
	q.sorts = append(q.sorts, SortKey{Field: f})
	return q
}

// OrderByDesc appends a descending sort key.
func (q *Query[T]) OrderByDesc(f Field) *Query[T] {
	q.sorts = append(q.sorts, SortKey{Field: f, Desc: true})
	return q
}

// Paginate declares a 1-based page window. Values are stored literally.
func (q *Query[T]) Paginate(page, limit int) *Query[T] {
	q.window = &Pagination{Page: page, Limit: limit}
	return q
}

// SkipTake declares a raw skip/take window. Values are stored literally; a
// take below one yields ErrInvalidPagination at execution time, it never
// means "unlimited".
func (q *Query[T]) SkipTake(skip, take int64) *Query[T] {
	q.window = &Pagination{Skip: skip, Take: take, Raw: true}
	return q
}

// Clone returns an independent copy; mutating the copy does not affect q.
func (q *Query[T]) Clone() *Query[T] {
	c := &Query[T]{
		preds:    append([]Predicate(nil), q.preds...),
		includes: append([]string(nil), q.includes...),
		sorts:    append([]SortKey(nil), q.sorts...),
	}
	if q.search != nil {
		s := Search{Term: q.search.Term, Fields: append([]Field(nil), q.search.Fields...)}
		c.search = &s
	}
	if q.window != nil {
		w := *q.window
		c.window = &w
	}
	return c
}

// Accessors used by translators and the in-memory evaluator.

func (q *Query[T]) Predicates() []Predicate { return q.preds }
func (q *Query[T]) SearchClause() *Search   { return q.search }
func (q *Query[T]) Includes() []string      { return q.includes }
func (q *Query[T]) SortKeys() []SortKey     { return q.sorts }
func (q *Query[T]) Window() *Pagination     { return q.window }
