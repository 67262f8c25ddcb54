package ports

import "context"

// CatalogRepository exposes the seeded reference data (majors, belongs,
// big/small categories). The core only reads it.
type CatalogRepository interface {
	// CountMajors returns how many of the given major indices exist. Callers
	// compare the count against the request cardinality: silently ignoring an
	// unknown index is not acceptable.
	CountMajors(ctx context.Context, idxs []int64) (int64, error)

	// MajorNames resolves major indices to names. Unknown indices are omitted.
	MajorNames(ctx context.Context, idxs []int64) ([]string, error)

	BelongExists(ctx context.Context, idx int64) (bool, error)
	BigCategoryExists(ctx context.Context, idx int64) (bool, error)
	SmallCategoryExists(ctx context.Context, idx int64) (bool, error)
}
