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
)

const (
	collectionClubs        = "clubs"
	collectionClubMembers  = "club_members"
	collectionJoinRequests = "join_requests"

	seqClubs        = "clubs"
	seqJoinRequests = "join_requests"
)

type ClubRepository struct {
	db       *mongo.Database
	clubs    *mongo.Collection
	members  *mongo.Collection
	requests *mongo.Collection
}

func NewClubRepository(db *mongo.Database) *ClubRepository {
	return &ClubRepository{
		db:       db,
		clubs:    db.Collection(collectionClubs),
		members:  db.Collection(collectionClubMembers),
		requests: db.Collection(collectionJoinRequests),
	}
}

// CreateWithAdmin inserts the club and an ADMIN membership for ownerIdx in
// one transaction. A club without an admin is never observable.
func (r *ClubRepository) CreateWithAdmin(ctx context.Context, club *domain.Club, ownerIdx int64) (int64, error) {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return 0, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	idx, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		idx, err := nextSequence(sc, r.db, seqClubs)
		if err != nil {
			return nil, err
		}

		doc := *club
		doc.Idx = idx
		if _, err := r.clubs.InsertOne(sc, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrDuplicateClubName
			}
			return nil, fmt.Errorf("insert club: %w", err)
		}

		member := domain.ClubMember{
			AccountIdx: ownerIdx,
			ClubIdx:    idx,
			Position:   domain.PositionAdmin,
			JoinedAt:   doc.CreatedAt,
		}
		if _, err := r.members.InsertOne(sc, member); err != nil {
			return nil, fmt.Errorf("insert admin member: %w", err)
		}

		return idx, nil
	})
	if err != nil {
		return 0, err
	}
	return idx.(int64), nil
}

// FindByIdx retrieves an active club by idx.
func (r *ClubRepository) FindByIdx(ctx context.Context, idx int64) (*domain.Club, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var club domain.Club
	if err := r.clubs.FindOne(ctx, activeOnly(bson.M{"idx": idx})).Decode(&club); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClubNotFound
		}
		return nil, fmt.Errorf("find club: %w", err)
	}
	return &club, nil
}

// NameTaken reports whether an active club already uses name.
func (r *ClubRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.clubs.CountDocuments(ctx, activeOnly(bson.M{"name": name}))
	if err != nil {
		return false, fmt.Errorf("count clubs by name: %w", err)
	}
	return n > 0, nil
}

// SetRecruit flips the recruiting flag on an active club.
func (r *ClubRepository) SetRecruit(ctx context.Context, clubIdx int64, isRecruit bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.clubs.UpdateOne(ctx,
		activeOnly(bson.M{"idx": clubIdx}),
		bson.M{"$set": bson.M{"is_recruit": isRecruit, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("set recruit: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClubNotFound
	}
	return nil
}

// MembershipsOf lists the account's active memberships across all clubs.
func (r *ClubRepository) MembershipsOf(ctx context.Context, accountIdx int64) ([]domain.ClubMember, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.members.Find(ctx, activeOnly(bson.M{"account_idx": accountIdx}))
	if err != nil {
		return nil, fmt.Errorf("find memberships: %w", err)
	}
	defer cur.Close(ctx)

	var memberships []domain.ClubMember
	for cur.Next(ctx) {
		var m domain.ClubMember
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode membership: %w", err)
		}
		memberships = append(memberships, m)
	}
	return memberships, cur.Err()
}

// HasActiveJoinRequest reports whether an active request exists for the pair.
func (r *ClubRepository) HasActiveJoinRequest(ctx context.Context, accountIdx, clubIdx int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.requests.CountDocuments(ctx, activeOnly(bson.M{
		"account_idx": accountIdx,
		"club_idx":    clubIdx,
	}))
	if err != nil {
		return false, fmt.Errorf("count join requests: %w", err)
	}
	return n > 0, nil
}

// InsertJoinRequest creates a pending request and returns its idx.
func (r *ClubRepository) InsertJoinRequest(ctx context.Context, accountIdx, clubIdx int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	idx, err := nextSequence(ctx, r.db, seqJoinRequests)
	if err != nil {
		return 0, err
	}

	request := domain.JoinRequest{
		Idx:        idx,
		AccountIdx: accountIdx,
		ClubIdx:    clubIdx,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.requests.InsertOne(ctx, request); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, domain.ErrDuplicateJoinRequest
		}
		return 0, fmt.Errorf("insert join request: %w", err)
	}
	return idx, nil
}

// EnsureIndexes creates the club indexes. Partial unique indexes on active
// club name and active (account, club) request pairs close the
// check-then-insert windows.
func (r *ClubRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.clubs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "idx", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(notDeleted()),
		},
	})
	if err != nil {
		return err
	}

	_, err = r.members.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_idx", Value: 1}}},
		{Keys: bson.D{{Key: "club_idx", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.requests.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "account_idx", Value: 1}, {Key: "club_idx", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(notDeleted()),
		},
	})
	return err
}
