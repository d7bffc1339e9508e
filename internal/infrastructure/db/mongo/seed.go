package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pressroom/publishing-system/internal/core/domain"
)

const collectionRoles = "roles"

// EnsureRoles upserts the fixed role registry into the roles collection.
// Exactly one document per role name; descriptions are refreshed on every
// startup so registry edits deploy without a migration.
func EnsureRoles(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	coll := db.Collection(collectionRoles)
	for _, role := range domain.Roles() {
		filter := bson.M{"_id": role.ID}
		update := bson.M{"$set": bson.M{
			"name":        role.Name,
			"description": role.Description,
		}}
		if _, err := coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
