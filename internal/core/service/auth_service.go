package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// AuthService implements login and session lifecycle. The session store is
// authoritative: a signed token is only honoured while its entry exists.
type AuthService struct {
	accounts ports.AccountRepository
	sessions ports.SessionStore
	codec    ports.TokenCodec
	loginTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionStore,
	codec ports.TokenCodec,
	loginTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if loginTTL <= 0 {
		loginTTL = time.Hour
	}
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		codec:    codec,
		loginTTL: loginTTL,
		logger:   logger,
	}
}

// Login verifies email+password against active accounts. Unknown email and
// password mismatch are logged separately but both return
// domain.ErrInvalidCredentials, so responses never reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (ports.Claim, error) {
	if email == "" || password == "" {
		return ports.Claim{}, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.logger.Debug().Str("email", email).Msg("login failed: unknown email")
			return ports.Claim{}, domain.ErrInvalidCredentials
		}
		return ports.Claim{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Int64("account_idx", account.Idx).Msg("login failed: password mismatch")
		return ports.Claim{}, domain.ErrInvalidCredentials
	}

	return ports.Claim{Idx: account.Idx, Email: account.Email}, nil
}

// CreateToken issues a signed token for the claim, stamped with the current
// time as loggedInAt.
func (s *AuthService) CreateToken(claim ports.Claim) (string, error) {
	return s.codec.Issue(ports.TokenPayload{
		Idx:        claim.Idx,
		Email:      claim.Email,
		LoggedInAt: time.Now().UTC(),
	})
}

// SetSession writes the session entry with the configured login TTL.
func (s *AuthService) SetSession(ctx context.Context, accountIdx int64, token string) error {
	return s.sessions.Put(ctx, accountIdx, token, s.loginTTL)
}

// DestroySession removes the session entry. Idempotent.
func (s *AuthService) DestroySession(ctx context.Context, accountIdx int64) error {
	return s.sessions.Remove(ctx, accountIdx)
}
