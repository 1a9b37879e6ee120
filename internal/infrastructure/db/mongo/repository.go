package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

// Hydrator loads included relations for a batch of already-fetched entities.
// MongoDB has no joins, so inclusion paths are resolved with follow-up
// queries per relation, batched over the whole result set.
type Hydrator[T any] func(ctx context.Context, db *mongo.Database, includes []string, items []T) error

// Repository is the generic MongoDB-backed implementation of
// ports.Repository. T is the entity pointer type; one instance per entity
// per transaction scope. It holds no mutable state.
type Repository[T domain.Entity[ID], ID comparable] struct {
	db      *mongo.Database
	col     *mongo.Collection
	factory func() T
	nextID  func(ctx context.Context) (ID, error)
	hydrate Hydrator[T]
}

// NewRepository creates a repository over the named collection. factory
// allocates an empty entity for decoding.
func NewRepository[T domain.Entity[ID], ID comparable](db *mongo.Database, collection string, factory func() T) *Repository[T, ID] {
	return &Repository[T, ID]{
		db:      db,
		col:     db.Collection(collection),
		factory: factory,
	}
}

// WithIDGenerator makes Create assign storage-side identity (via the
// counters sequence) when the entity's id is the zero value.
func (r *Repository[T, ID]) WithIDGenerator(gen func(ctx context.Context) (ID, error)) *Repository[T, ID] {
	r.nextID = gen
	return r
}

// WithHydrator installs the relation loader consulted when a query declares
// include paths.
func (r *Repository[T, ID]) WithHydrator(h Hydrator[T]) *Repository[T, ID] {
	r.hydrate = h
	return r
}

func (r *Repository[T, ID]) FindMany(ctx context.Context, q *specification.Query[T]) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts, err := findOptions(q)
	if err != nil {
		return nil, err
	}
	cur, err := r.col.Find(ctx, filterFor(q), opts)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if err := r.runHydrate(ctx, q, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository[T, ID]) FindOne(ctx context.Context, q *specification.Query[T]) (T, error) {
	var zero T
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts, err := findOneOptions(q)
	if err != nil {
		return zero, err
	}
	item := r.factory()
	err = r.col.FindOne(ctx, filterFor(q), opts).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, nil
		}
		return zero, err
	}
	if err := r.runHydrate(ctx, q, []T{item}); err != nil {
		return zero, err
	}
	return item, nil
}

func (r *Repository[T, ID]) FindByID(ctx context.Context, id ID) (T, error) {
	var zero T
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item := r.factory()
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, nil
		}
		return zero, err
	}
	return item, nil
}

func (r *Repository[T, ID]) Count(ctx context.Context, q *specification.Query[T]) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, filterFor(q))
}

func (r *Repository[T, ID]) Exists(ctx context.Context, q *specification.Query[T]) (bool, error) {
	n, err := r.Count(ctx, q)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository[T, ID]) Create(ctx context.Context, entity T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var zero ID
	if entity.GetID() == zero && r.nextID != nil {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		entity.SetID(id)
	}
	entity.TouchCreated(time.Now().UTC())

	_, err := r.col.InsertOne(ctx, entity)
	return err
}

func (r *Repository[T, ID]) Update(ctx context.Context, entity T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	entity.TouchUpdated(time.Now().UTC())
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository[T, ID]) Delete(ctx context.Context, id ID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository[T, ID]) CreateMany(ctx context.Context, entities []T) error {
	for _, e := range entities {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[T, ID]) UpdateMany(ctx context.Context, entities []T) error {
	for _, e := range entities {
		if err := r.Update(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[T, ID]) DeleteMany(ctx context.Context, ids []ID) error {
	for _, id := range ids {
		if err := r.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[T, ID]) runHydrate(ctx context.Context, q *specification.Query[T], items []T) error {
	if q == nil || r.hydrate == nil || len(q.Includes()) == 0 || len(items) == 0 {
		return nil
	}
	return r.hydrate(ctx, r.db, q.Includes(), items)
}
