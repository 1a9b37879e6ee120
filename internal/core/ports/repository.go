package ports

import (
	"context"
	"errors"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/specification"
)

// ErrNotFound is returned by Update and Delete when the identity does not
// exist. Read operations signal a miss with a zero value instead, never with
// an error.
var ErrNotFound = errors.New("entity not found")

// Repository executes specifications against storage for one entity type and
// maps rows to and from domain values. T is the entity pointer type
// (e.g. *domain.Brand); a zero T means "no result".
//
// Repositories perform no cross-entity validation — that is the use case's
// job — and translate no storage errors into domain errors; constraint
// violations and connectivity failures propagate unchanged.
type Repository[T domain.Entity[ID], ID comparable] interface {
	// FindMany returns all matches in specification order (unspecified when
	// no sort keys are given). A nil query means everything, unpaged.
	FindMany(ctx context.Context, q *specification.Query[T]) ([]T, error)
	// FindOne returns the first match in a single round trip, or a zero T
	// when nothing matches.
	FindOne(ctx context.Context, q *specification.Query[T]) (T, error)
	// FindByID is FindOne keyed by identity.
	FindByID(ctx context.Context, id ID) (T, error)
	// Count ignores pagination and sort.
	Count(ctx context.Context, q *specification.Query[T]) (int64, error)
	// Exists is Count > 0.
	Exists(ctx context.Context, q *specification.Query[T]) (bool, error)

	// Create persists a new row, populating storage-assigned identity and
	// timestamps on the entity in place.
	Create(ctx context.Context, entity T) error
	// Update persists changes keyed by the entity's identity; ErrNotFound
	// when the identity does not exist.
	Update(ctx context.Context, entity T) error
	// Delete removes the row keyed by identity; ErrNotFound when absent.
	Delete(ctx context.Context, id ID) error

	// Batch variants apply the single-item operation per element. They are
	// only atomic as a batch when invoked inside a Unit of Work.
	CreateMany(ctx context.Context, entities []T) error
	UpdateMany(ctx context.Context, entities []T) error
	DeleteMany(ctx context.Context, ids []ID) error
}
