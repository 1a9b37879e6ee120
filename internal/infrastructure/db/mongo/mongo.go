package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

// Conn bundles the client with the selected database. The client is kept
// around because transactions and shutdown need it.
type Conn struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect dials the server, verifies it with a ping against the primary and
// selects the named database. Transactions require a primary, so a failing
// primary ping is reported at startup rather than on the first write.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Conn, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Conn{Client: client, DB: client.Database(database)}, nil
}

// Close disconnects the client, waiting at most the default timeout.
func (c *Conn) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return c.Client.Disconnect(ctx)
}
