package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// Sequence returns a generator drawing monotonically increasing int64 ids
// from the counters collection, one counter document per entity. The atomic
// findAndModify makes ids unique even across concurrent writers.
func Sequence(db *mongo.Database, name string) func(ctx context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) {
		res := db.Collection(collectionCounters).FindOneAndUpdate(ctx,
			bson.M{"_id": name},
			bson.M{"$inc": bson.M{"value": int64(1)}},
			options.FindOneAndUpdate().
				SetUpsert(true).
				SetReturnDocument(options.After),
		)
		var doc struct {
			Value int64 `bson:"value"`
		}
		if err := res.Decode(&doc); err != nil {
			return 0, fmt.Errorf("sequence %s: %w", name, err)
		}
		return doc.Value, nil
	}
}
