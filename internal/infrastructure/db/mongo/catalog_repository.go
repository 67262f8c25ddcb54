package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ecodot/clubhub/internal/core/domain"
)

const (
	collectionMajors          = "majors"
	collectionBelongs         = "belongs"
	collectionBigCategories   = "big_categories"
	collectionSmallCategories = "small_categories"
)

// CatalogRepository serves the seeded reference data: majors, belongs and the
// big/small club categories.
type CatalogRepository struct {
	majors          *mongo.Collection
	belongs         *mongo.Collection
	bigCategories   *mongo.Collection
	smallCategories *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{
		majors:          db.Collection(collectionMajors),
		belongs:         db.Collection(collectionBelongs),
		bigCategories:   db.Collection(collectionBigCategories),
		smallCategories: db.Collection(collectionSmallCategories),
	}
}

// CountMajors returns how many of the given major indices exist.
func (r *CatalogRepository) CountMajors(ctx context.Context, idxs []int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.majors.CountDocuments(ctx, bson.M{"idx": bson.M{"$in": idxs}})
	if err != nil {
		return 0, fmt.Errorf("count majors: %w", err)
	}
	return n, nil
}

// MajorNames resolves major indices to names. Unknown indices are omitted.
func (r *CatalogRepository) MajorNames(ctx context.Context, idxs []int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.majors.Find(ctx, bson.M{"idx": bson.M{"$in": idxs}})
	if err != nil {
		return nil, fmt.Errorf("find majors: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var major domain.Major
		if err := cur.Decode(&major); err != nil {
			return nil, fmt.Errorf("decode major: %w", err)
		}
		names = append(names, major.Name)
	}
	return names, cur.Err()
}

func (r *CatalogRepository) BelongExists(ctx context.Context, idx int64) (bool, error) {
	return r.exists(ctx, r.belongs, idx)
}

func (r *CatalogRepository) BigCategoryExists(ctx context.Context, idx int64) (bool, error) {
	return r.exists(ctx, r.bigCategories, idx)
}

func (r *CatalogRepository) SmallCategoryExists(ctx context.Context, idx int64) (bool, error) {
	return r.exists(ctx, r.smallCategories, idx)
}

func (r *CatalogRepository) exists(ctx context.Context, col *mongo.Collection, idx int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, bson.M{"idx": idx})
	if err != nil {
		return false, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	return n > 0, nil
}

// Seed loads the reference catalog when the collections are still empty.
// Safe to call on every startup.
func (r *CatalogRepository) Seed(ctx context.Context) error {
	if err := seedCollection(ctx, r.majors, majorSeed); err != nil {
		return fmt.Errorf("seed majors: %w", err)
	}
	if err := seedCollection(ctx, r.belongs, belongSeed); err != nil {
		return fmt.Errorf("seed belongs: %w", err)
	}
	if err := seedCollection(ctx, r.bigCategories, bigCategorySeed); err != nil {
		return fmt.Errorf("seed big categories: %w", err)
	}
	if err := seedCollection(ctx, r.smallCategories, smallCategorySeed); err != nil {
		return fmt.Errorf("seed small categories: %w", err)
	}
	return nil
}

func seedCollection(ctx context.Context, col *mongo.Collection, rows []interface{}) error {
	n, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = col.InsertMany(ctx, rows)
	return err
}
