package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promobeats/backoffice/internal/core/ports"
)

// UnitOfWork runs a function inside a MongoDB multi-document transaction.
// Requires the server to run as a replica set, which is also how transactions
// are exercised in local development (single-node replica set).
type UnitOfWork struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewUnitOfWork(client *mongo.Client, db *mongo.Database) *UnitOfWork {
	return &UnitOfWork{client: client, db: db}
}

// Execute starts a session, runs fn with a transaction-scoped repository set
// and commits when fn returns nil. Any non-nil error aborts the transaction
// and is returned unchanged. The driver retries on transient transaction
// errors per its own policy.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, repos *ports.RepoSet) error) error {
	sess, err := u.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc, NewRepoSet(u.db))
	})
	return err
}

var _ ports.UnitOfWork = (*UnitOfWork)(nil)
