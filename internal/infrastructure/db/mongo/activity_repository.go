package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecodot/clubhub/internal/core/domain"
)

const collectionActivities = "activities"

// ActivityRepository persists the audit trail of domain activities.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

// Insert appends one activity to the trail.
func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// EnsureIndexes creates the activity indexes.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_idx", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "kind", Value: 1}}},
	})
	return err
}
