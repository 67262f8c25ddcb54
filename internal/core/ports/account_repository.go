package ports

import (
	"context"

	"github.com/ecodot/clubhub/internal/core/domain"
)

// ProfilePatch carries the fields of a profile update. Nil fields are left
// untouched; a non-nil MajorIdxs replaces the full affiliation set.
type ProfilePatch struct {
	Name          *string
	AdmissionYear *int
	MajorIdxs     *[]int64
}

// AccountRepository defines persistence operations for accounts and their
// major affiliations. All reads are scoped to active (non-deleted) rows.
type AccountRepository interface {
	// CreateWithMajors inserts the account and one AccountMajor row per major
	// index in a single transaction and returns the new account idx. Returns
	// domain.ErrDuplicateEmail when an active account already holds the email.
	CreateWithMajors(ctx context.Context, account *domain.Account, majorIdxs []int64) (int64, error)

	// FindByEmail returns domain.ErrAccountNotFound when no active account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)

	// FindByIdx returns domain.ErrAccountNotFound when no active account matches.
	FindByIdx(ctx context.Context, idx int64) (*domain.Account, error)

	// MajorIdxsOf returns the major indices currently held by the account.
	MajorIdxsOf(ctx context.Context, accountIdx int64) ([]int64, error)

	// UpdateProfile applies the patch. When MajorIdxs is set, the existing
	// AccountMajor rows are deleted and the new set inserted in the same
	// transaction as the field updates.
	UpdateProfile(ctx context.Context, idx int64, patch ProfilePatch) error

	// SoftDelete stamps deleted_at. Returns domain.ErrAccountNotFound when the
	// account is absent or already deleted.
	SoftDelete(ctx context.Context, idx int64) error
}
