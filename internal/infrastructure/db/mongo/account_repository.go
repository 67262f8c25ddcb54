package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

const (
	collectionAccounts      = "accounts"
	collectionAccountMajors = "account_majors"

	seqAccounts = "accounts"
)

type AccountRepository struct {
	db       *mongo.Database
	accounts *mongo.Collection
	majors   *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		db:       db,
		accounts: db.Collection(collectionAccounts),
		majors:   db.Collection(collectionAccountMajors),
	}
}

// CreateWithMajors inserts the account and its AccountMajor rows in one
// transaction. A half-written account (no affiliations) is never observable.
func (r *AccountRepository) CreateWithMajors(ctx context.Context, account *domain.Account, majorIdxs []int64) (int64, error) {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	idx, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		idx, err := nextSequence(sc, r.db, seqAccounts)
		if err != nil {
			return nil, err
		}

		doc := *account
		doc.Idx = idx
		if _, err := r.accounts.InsertOne(sc, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrDuplicateEmail
			}
			return nil, fmt.Errorf("insert account: %w", err)
		}

		if len(majorIdxs) > 0 {
			rows := make([]interface{}, 0, len(majorIdxs))
			for _, majorIdx := range majorIdxs {
				rows = append(rows, domain.AccountMajor{AccountIdx: idx, MajorIdx: majorIdx})
			}
			if _, err := r.majors.InsertMany(sc, rows); err != nil {
				return nil, fmt.Errorf("insert account majors: %w", err)
			}
		}

		return idx, nil
	})
	if err != nil {
		return 0, err
	}
	return idx.(int64), nil
}

// FindByEmail retrieves an active account by email.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, activeOnly(bson.M{"email": email}))
}

// FindByIdx retrieves an active account by idx.
func (r *AccountRepository) FindByIdx(ctx context.Context, idx int64) (*domain.Account, error) {
	return r.findOne(ctx, activeOnly(bson.M{"idx": idx}))
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var account domain.Account
	if err := r.accounts.FindOne(ctx, filter).Decode(&account); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// MajorIdxsOf returns the major indices held by the account.
func (r *AccountRepository) MajorIdxsOf(ctx context.Context, accountIdx int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.majors.Find(ctx, bson.M{"account_idx": accountIdx})
	if err != nil {
		return nil, fmt.Errorf("find account majors: %w", err)
	}
	defer cur.Close(ctx)

	var idxs []int64
	for cur.Next(ctx) {
		var row domain.AccountMajor
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode account major: %w", err)
		}
		idxs = append(idxs, row.MajorIdx)
	}
	return idxs, cur.Err()
}

// UpdateProfile applies the patch to an active account. When the patch
// replaces affiliations, the delete-all/insert-new sequence runs in the same
// transaction as the field updates.
func (r *AccountRepository) UpdateProfile(ctx context.Context, idx int64, patch ports.ProfilePatch) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		set := bson.M{"updated_at": time.Now().UTC()}
		if patch.Name != nil {
			set["name"] = *patch.Name
		}
		if patch.AdmissionYear != nil {
			set["admission_year"] = *patch.AdmissionYear
		}

		res, err := r.accounts.UpdateOne(sc, activeOnly(bson.M{"idx": idx}), bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("update account: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrAccountNotFound
		}

		if patch.MajorIdxs != nil {
			if _, err := r.majors.DeleteMany(sc, bson.M{"account_idx": idx}); err != nil {
				return nil, fmt.Errorf("clear account majors: %w", err)
			}
			if len(*patch.MajorIdxs) > 0 {
				rows := make([]interface{}, 0, len(*patch.MajorIdxs))
				for _, majorIdx := range *patch.MajorIdxs {
					rows = append(rows, domain.AccountMajor{AccountIdx: idx, MajorIdx: majorIdx})
				}
				if _, err := r.majors.InsertMany(sc, rows); err != nil {
					return nil, fmt.Errorf("insert account majors: %w", err)
				}
			}
		}

		return nil, nil
	})
	return err
}

// SoftDelete stamps deleted_at on an active account. Memberships and join
// requests are left untouched (non-cascading policy).
func (r *AccountRepository) SoftDelete(ctx context.Context, idx int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	res, err := r.accounts.UpdateOne(ctx,
		activeOnly(bson.M{"idx": idx}),
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
	)
	if err != nil {
		return fmt.Errorf("soft delete account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// EnsureIndexes creates the account indexes. The partial unique index on
// email closes the duplicate-email check-then-insert window.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.accounts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "idx", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(notDeleted()),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.majors.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_idx", Value: 1}}},
	})
	return err
}
