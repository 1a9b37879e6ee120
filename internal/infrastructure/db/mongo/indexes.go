package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. The unique
// indexes are the authoritative uniqueness guard; the pre-insert existence
// checks in the use cases only exist to produce friendly failures ahead of
// the constraint.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	byCollection := map[string][]mongo.IndexModel{
		collectionAccounts: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collectionRoles: {
			{Keys: bson.D{{Key: "key", Value: 1}}, Options: unique},
		},
		collectionAssignments: {
			{Keys: bson.D{{Key: "holder_id", Value: 1}, {Key: "role_id", Value: 1}}, Options: unique},
		},
		collectionInfluencers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collectionProfiles: {
			{Keys: bson.D{{Key: "influencer_id", Value: 1}, {Key: "platform", Value: 1}}, Options: unique},
		},
		collectionBrands: {
			{Keys: bson.D{{Key: "name_en", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name_ar", Value: 1}}, Options: unique},
		},
		collectionBeats: {
			{Keys: bson.D{{Key: "influencer_id", Value: 1}}},
			{Keys: bson.D{{Key: "brand_id", Value: 1}}},
		},
	}

	for name, models := range byCollection {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
