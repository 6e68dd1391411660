package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique supply_name index backing name uniqueness.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	const op = "repository.EnsureIndexes"

	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "supply_name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("supply_name_unique"),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}, options.CreateIndexes())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
