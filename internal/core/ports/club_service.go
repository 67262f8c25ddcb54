package ports

import (
	"context"

	"github.com/ecodot/clubhub/internal/core/domain"
)

// CreateClubInput carries all data needed to create a club. Image URLs come
// from the upload collaborator and are treated as opaque strings.
type CreateClubInput struct {
	BelongIdx        int64
	BigCategoryIdx   int64
	SmallCategoryIdx int64
	Name             string
	Summary          string
	IsRecruit        bool
	ProfileImage     string
	BannerImage      string
}

// ClubService defines use-case operations for clubs.
type ClubService interface {
	// CreateClub validates references and name uniqueness, then inserts the
	// club together with an ADMIN membership for ownerIdx.
	CreateClub(ctx context.Context, input CreateClubInput, ownerIdx int64) (int64, error)

	// CheckNameAvailable returns domain.ErrDuplicateClubName when taken.
	CheckNameAvailable(ctx context.Context, name string) error

	// JoinRequest runs the guarded transition: club exists → recruiting →
	// not already a member → no pending request → insert.
	JoinRequest(ctx context.Context, clubIdx, accountIdx int64) (int64, error)

	// SetRecruit opens or closes recruiting. Callers are expected to have
	// passed the ADMIN club-role guard.
	SetRecruit(ctx context.Context, clubIdx int64, isRecruit bool) error

	// MembershipsOf lists the account's active memberships (role guard input).
	MembershipsOf(ctx context.Context, accountIdx int64) ([]domain.ClubMember, error)
}
