package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/promobeats/backoffice/internal/core/specification"
)

// filterFor translates a specification's predicates and search clause into a
// MongoDB filter document. Pagination and sort are handled separately so
// Count can reuse the filter alone.
func filterFor[T any](q *specification.Query[T]) bson.M {
	if q == nil {
		return bson.M{}
	}

	clauses := make([]bson.M, 0, len(q.Predicates())+1)
	for _, p := range q.Predicates() {
		clauses = append(clauses, predicateFilter(p))
	}
	if s := q.SearchClause(); s != nil {
		or := make([]bson.M, 0, len(s.Fields))
		for _, f := range s.Fields {
			or = append(or, bson.M{string(f): bson.M{
				"$regex":   regexp.QuoteMeta(s.Term),
				"$options": "i",
			}})
		}
		clauses = append(clauses, bson.M{"$or": or})
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}

func predicateFilter(p specification.Predicate) bson.M {
	field := string(p.Field)
	switch p.Op {
	case specification.OpEq:
		return bson.M{field: p.Value}
	case specification.OpNe:
		return bson.M{field: bson.M{"$ne": p.Value}}
	case specification.OpGt:
		return bson.M{field: bson.M{"$gt": p.Value}}
	case specification.OpGte:
		return bson.M{field: bson.M{"$gte": p.Value}}
	case specification.OpLt:
		return bson.M{field: bson.M{"$lt": p.Value}}
	case specification.OpLte:
		return bson.M{field: bson.M{"$lte": p.Value}}
	case specification.OpIn:
		return bson.M{field: bson.M{"$in": p.Value}}
	case specification.OpContains:
		s, _ := p.Value.(string)
		return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}}
	case specification.OpHasPrefix:
		s, _ := p.Value.(string)
		return bson.M{field: bson.M{"$regex": "^" + regexp.QuoteMeta(s)}}
	case specification.OpHasSuffix:
		s, _ := p.Value.(string)
		return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(s) + "$"}}
	}
	return bson.M{}
}

func sortFor[T any](q *specification.Query[T]) bson.D {
	keys := q.SortKeys()
	if len(keys) == 0 {
		return nil
	}
	sort := make(bson.D, 0, len(keys))
	for _, k := range keys {
		order := 1
		if k.Desc {
			order = -1
		}
		sort = append(sort, bson.E{Key: string(k.Field), Value: order})
	}
	return sort
}

// findOptions builds the cursor options for FindMany. A declared but
// non-executable window surfaces specification.ErrInvalidPagination.
func findOptions[T any](q *specification.Query[T]) (*options.FindOptions, error) {
	opts := options.Find()
	if q == nil {
		return opts, nil
	}
	if sort := sortFor(q); sort != nil {
		opts.SetSort(sort)
	}
	if w := q.Window(); w != nil {
		skip, limit, err := w.Window()
		if err != nil {
			return nil, err
		}
		opts.SetSkip(skip).SetLimit(limit)
	}
	return opts, nil
}

// findOneOptions mirrors findOptions for the single-document round trip.
func findOneOptions[T any](q *specification.Query[T]) (*options.FindOneOptions, error) {
	opts := options.FindOne()
	if q == nil {
		return opts, nil
	}
	if sort := sortFor(q); sort != nil {
		opts.SetSort(sort)
	}
	if w := q.Window(); w != nil {
		skip, _, err := w.Window()
		if err != nil {
			return nil, err
		}
		opts.SetSkip(skip)
	}
	return opts, nil
}
