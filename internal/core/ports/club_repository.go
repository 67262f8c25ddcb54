package ports

import (
	"context"

	"github.com/ecodot/clubhub/internal/core/domain"
)

// ClubRepository defines persistence operations for clubs, memberships and
// join requests. All reads are scoped to active (non-deleted) rows.
type ClubRepository interface {
	// CreateWithAdmin inserts the club and an ADMIN membership for ownerIdx in
	// a single transaction and returns the new club idx. Returns
	// domain.ErrDuplicateClubName when an active club already holds the name.
	CreateWithAdmin(ctx context.Context, club *domain.Club, ownerIdx int64) (int64, error)

	// FindByIdx returns domain.ErrClubNotFound when no active club matches.
	FindByIdx(ctx context.Context, idx int64) (*domain.Club, error)

	// NameTaken reports whether an active club already uses name.
	NameTaken(ctx context.Context, name string) (bool, error)

	// SetRecruit flips the recruiting flag on an active club. Returns
	// domain.ErrClubNotFound when the club is absent or deleted.
	SetRecruit(ctx context.Context, clubIdx int64, isRecruit bool) error

	// MembershipsOf lists the account's active memberships across all clubs.
	MembershipsOf(ctx context.Context, accountIdx int64) ([]domain.ClubMember, error)

	// HasActiveJoinRequest reports whether an active request exists for the pair.
	HasActiveJoinRequest(ctx context.Context, accountIdx, clubIdx int64) (bool, error)

	// InsertJoinRequest creates a request and returns its idx. Returns
	// domain.ErrDuplicateJoinRequest when an active request already exists for
	// the pair (unique-index backstop for the check-then-insert window).
	InsertJoinRequest(ctx context.Context, accountIdx, clubIdx int64) (int64, error)
}
