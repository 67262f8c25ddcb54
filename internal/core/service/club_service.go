package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// ClubService implements club creation and the join-request workflow.
type ClubService struct {
	clubs   ports.ClubRepository
	catalog ports.CatalogRepository
	logger  zerolog.Logger
}

func NewClubService(clubs ports.ClubRepository, catalog ports.CatalogRepository, logger zerolog.Logger) *ClubService {
	return &ClubService{clubs: clubs, catalog: catalog, logger: logger}
}

// CreateClub validates the referenced catalog entries and name uniqueness,
// then inserts the club together with an ADMIN membership for ownerIdx. The
// repository runs both inserts in one transaction.
func (s *ClubService) CreateClub(ctx context.Context, input ports.CreateClubInput, ownerIdx int64) (int64, error) {
	if err := s.validateReferences(ctx, input); err != nil {
		return 0, err
	}

	taken, err := s.clubs.NameTaken(ctx, input.Name)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, domain.ErrDuplicateClubName
	}

	now := time.Now().UTC()
	club := &domain.Club{
		BelongIdx:        input.BelongIdx,
		BigCategoryIdx:   input.BigCategoryIdx,
		SmallCategoryIdx: input.SmallCategoryIdx,
		Name:             input.Name,
		Summary:          input.Summary,
		IsRecruit:        input.IsRecruit,
		ProfileImage:     input.ProfileImage,
		BannerImage:      input.BannerImage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	idx, err := s.clubs.CreateWithAdmin(ctx, club, ownerIdx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("club_idx", idx).Int64("owner_idx", ownerIdx).Str("name", input.Name).Msg("club created")
	return idx, nil
}

// CheckNameAvailable returns domain.ErrDuplicateClubName when an active club
// already uses name.
func (s *ClubService) CheckNameAvailable(ctx context.Context, name string) error {
	taken, err := s.clubs.NameTaken(ctx, name)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateClubName
	}
	return nil
}

// JoinRequest runs the guarded transition in order: club exists → recruiting
// open → not already a member → no pending request → insert. The cheap
// existence and recruiting checks run before the membership and request scans,
// and each failure is independently distinguishable.
func (s *ClubService) JoinRequest(ctx context.Context, clubIdx, accountIdx int64) (int64, error) {
	club, err := s.clubs.FindByIdx(ctx, clubIdx)
	if err != nil {
		return 0, err
	}

	if !club.IsRecruit {
		return 0, domain.ErrRecruitingClosed
	}

	memberships, err := s.clubs.MembershipsOf(ctx, accountIdx)
	if err != nil {
		return 0, err
	}
	for _, m := range memberships {
		if m.ClubIdx == clubIdx {
			return 0, domain.ErrAlreadyMember
		}
	}

	pending, err := s.clubs.HasActiveJoinRequest(ctx, accountIdx, clubIdx)
	if err != nil {
		return 0, err
	}
	if pending {
		return 0, domain.ErrDuplicateJoinRequest
	}

	requestIdx, err := s.clubs.InsertJoinRequest(ctx, accountIdx, clubIdx)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("club_idx", clubIdx).Int64("account_idx", accountIdx).Int64("request_idx", requestIdx).Msg("join request created")
	return requestIdx, nil
}

// SetRecruit opens or closes recruiting for the club.
func (s *ClubService) SetRecruit(ctx context.Context, clubIdx int64, isRecruit bool) error {
	if err := s.clubs.SetRecruit(ctx, clubIdx, isRecruit); err != nil {
		return err
	}

	s.logger.Info().Int64("club_idx", clubIdx).Bool("is_recruit", isRecruit).Msg("recruiting flag updated")
	return nil
}

// MembershipsOf lists the account's active memberships (role guard input).
func (s *ClubService) MembershipsOf(ctx context.Context, accountIdx int64) ([]domain.ClubMember, error) {
	return s.clubs.MembershipsOf(ctx, accountIdx)
}

func (s *ClubService) validateReferences(ctx context.Context, input ports.CreateClubInput) error {
	checks := []struct {
		name   string
		idx    int64
		exists func(context.Context, int64) (bool, error)
	}{
		{"belong", input.BelongIdx, s.catalog.BelongExists},
		{"big_category", input.BigCategoryIdx, s.catalog.BigCategoryExists},
		{"small_category", input.SmallCategoryIdx, s.catalog.SmallCategoryExists},
	}

	for _, check := range checks {
		ok, err := check.exists(ctx, check.idx)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Debug().Str("reference", check.name).Int64("idx", check.idx).Msg("unknown club reference")
			return domain.ErrInvalidReference
		}
	}
	return nil
}
