package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// AccountService implements registration, profile reads/updates and account
// closure.
type AccountService struct {
	accounts ports.AccountRepository
	catalog  ports.CatalogRepository
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, catalog ports.CatalogRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, catalog: catalog, logger: logger}
}

// CreateAccount registers a new member. The account row and its AccountMajor
// rows are inserted in one transaction by the repository.
func (s *AccountService) CreateAccount(ctx context.Context, input ports.CreateAccountInput) (int64, error) {
	if _, err := s.accounts.FindByEmail(ctx, input.Email); err == nil {
		return 0, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return 0, err
	}

	majorIdxs := dedupeIdxs(input.MajorIdxs)
	if err := s.validateMajors(ctx, majorIdxs); err != nil {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:         input.Email,
		PasswordHash:  string(hash),
		Name:          input.Name,
		AdmissionYear: input.AdmissionYear,
		PersonalColor: generatePersonalColor(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	idx, err := s.accounts.CreateWithMajors(ctx, account, majorIdxs)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("account_idx", idx).Msg("account created")
	return idx, nil
}

// GetProfile returns the member-facing view of an active account.
func (s *AccountService) GetProfile(ctx context.Context, accountIdx int64) (*domain.Profile, error) {
	account, err := s.accounts.FindByIdx(ctx, accountIdx)
	if err != nil {
		return nil, err
	}

	majorIdxs, err := s.accounts.MajorIdxsOf(ctx, accountIdx)
	if err != nil {
		return nil, err
	}

	majors := []string{}
	if len(majorIdxs) > 0 {
		majors, err = s.catalog.MajorNames(ctx, majorIdxs)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Profile{
		Name:          account.Name,
		PersonalColor: account.PersonalColor,
		AdmissionYear: account.AdmissionYear,
		CreatedAt:     account.CreatedAt,
		Majors:        majors,
	}, nil
}

// UpdateProfile applies a partial update. When the patch includes
// affiliations they are validated like at signup and fully replaced in one
// transaction; omitted fields are untouched.
func (s *AccountService) UpdateProfile(ctx context.Context, accountIdx int64, patch ports.ProfilePatch) error {
	if patch.MajorIdxs != nil {
		deduped := dedupeIdxs(*patch.MajorIdxs)
		if err := s.validateMajors(ctx, deduped); err != nil {
			return err
		}
		patch.MajorIdxs = &deduped
	}

	if err := s.accounts.UpdateProfile(ctx, accountIdx, patch); err != nil {
		return err
	}

	s.logger.Info().Int64("account_idx", accountIdx).Msg("profile updated")
	return nil
}

// DeleteAccount soft-deletes the account. A second call finds no active row
// and fails with domain.ErrAccountNotFound.
func (s *AccountService) DeleteAccount(ctx context.Context, accountIdx int64) error {
	if err := s.accounts.SoftDelete(ctx, accountIdx); err != nil {
		return err
	}

	s.logger.Info().Int64("account_idx", accountIdx).Msg("account closed")
	return nil
}

// validateMajors checks set membership by cardinality: every requested index
// must resolve, unknown indices are never silently ignored.
func (s *AccountService) validateMajors(ctx context.Context, majorIdxs []int64) error {
	if len(majorIdxs) == 0 {
		return nil
	}
	found, err := s.catalog.CountMajors(ctx, majorIdxs)
	if err != nil {
		return err
	}
	if found != int64(len(majorIdxs)) {
		return domain.ErrInvalidAffiliation
	}
	return nil
}

// generatePersonalColor returns a six-hex-digit colour tag. No uniqueness is
// required across accounts.
func generatePersonalColor() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("%02X%02X%02X", b[0], b[1], b[2])
}

func dedupeIdxs(idxs []int64) []int64 {
	seen := make(map[int64]struct{}, len(idxs))
	out := make([]int64, 0, len(idxs))
	for _, idx := range idxs {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}
