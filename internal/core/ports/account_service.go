package ports

import (
	"context"

	"github.com/ecodot/clubhub/internal/core/domain"
)

// CreateAccountInput carries all data needed to register an account.
type CreateAccountInput struct {
	Email         string
	Password      string
	Name          string
	AdmissionYear int
	MajorIdxs     []int64
}

// AccountService defines use-case operations for accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (int64, error)
	GetProfile(ctx context.Context, accountIdx int64) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, accountIdx int64, patch ProfilePatch) error
	DeleteAccount(ctx context.Context, accountIdx int64) error
}
