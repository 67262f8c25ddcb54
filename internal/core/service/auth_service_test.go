package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

type stubSessionStore struct {
	tokens map[int64]string
	ttls   map[int64]time.Duration
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		tokens: make(map[int64]string),
		ttls:   make(map[int64]time.Duration),
	}
}

func (s *stubSessionStore) Put(_ context.Context, accountIdx int64, token string, ttl time.Duration) error {
	s.tokens[accountIdx] = token
	s.ttls[accountIdx] = ttl
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, accountIdx int64) (string, bool, error) {
	token, ok := s.tokens[accountIdx]
	return token, ok, nil
}

func (s *stubSessionStore) Renew(_ context.Context, accountIdx int64, ttl time.Duration) error {
	if _, ok := s.tokens[accountIdx]; ok {
		s.ttls[accountIdx] = ttl
	}
	return nil
}

func (s *stubSessionStore) Remove(_ context.Context, accountIdx int64) error {
	delete(s.tokens, accountIdx)
	delete(s.ttls, accountIdx)
	return nil
}

type stubTokenCodec struct{}

func (stubTokenCodec) Issue(payload ports.TokenPayload) (string, error) {
	return fmt.Sprintf("token-%d-%s", payload.Idx, payload.Email), nil
}

func (stubTokenCodec) Verify(string) (ports.TokenPayload, bool) {
	return ports.TokenPayload{}, false
}

func seedAccount(t *testing.T, repo *stubAccountRepo, email, password string) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	now := time.Now().UTC()
	idx, err := repo.CreateWithMajors(context.Background(), &domain.Account{
		Email:         email,
		PasswordHash:  string(hash),
		Name:          "Seeded",
		AdmissionYear: 2020,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil)
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return idx
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	idx := seedAccount(t, repo, "alice@example.com", "s3cret-pass")
	svc := NewAuthService(repo, newStubSessionStore(), stubTokenCodec{}, time.Hour, zerolog.Nop())

	claim, err := svc.Login(context.Background(), "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if claim.Idx != idx {
		t.Fatalf("expected idx %d, got %d", idx, claim.Idx)
	}
	if claim.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claim.Email)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), newStubSessionStore(), stubTokenCodec{}, time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "bob@example.com", "goodpass")
	svc := NewAuthService(repo, newStubSessionStore(), stubTokenCodec{}, time.Hour, zerolog.Nop())

	// Same error as unknown email, so responses never reveal which accounts exist.
	if _, err := svc.Login(context.Background(), "bob@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), newStubSessionStore(), stubTokenCodec{}, time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "carol@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Login_ClosedAccount(t *testing.T) {
	repo := newStubAccountRepo()
	idx := seedAccount(t, repo, "dave@example.com", "dave-pass")
	if err := repo.SoftDelete(context.Background(), idx); err != nil {
		t.Fatalf("close account: %v", err)
	}
	svc := NewAuthService(repo, newStubSessionStore(), stubTokenCodec{}, time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "dave@example.com", "dave-pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for closed account, got %v", err)
	}
}

func TestAuthService_CreateToken(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), newStubSessionStore(), stubTokenCodec{}, time.Hour, zerolog.Nop())

	token, err := svc.CreateToken(ports.Claim{Idx: 7, Email: "erin@example.com"})
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	if token != "token-7-erin@example.com" {
		t.Fatalf("unexpected token: %s", token)
	}
}

func TestAuthService_SetSession_UsesLoginTTL(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubAccountRepo(), store, stubTokenCodec{}, 30*time.Minute, zerolog.Nop())

	if err := svc.SetSession(context.Background(), 7, "token-7"); err != nil {
		t.Fatalf("SetSession returned error: %v", err)
	}
	if store.tokens[7] != "token-7" {
		t.Fatalf("expected token stored, got %q", store.tokens[7])
	}
	if store.ttls[7] != 30*time.Minute {
		t.Fatalf("expected TTL 30m, got %v", store.ttls[7])
	}
}

func TestAuthService_DestroySession_Idempotent(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubAccountRepo(), store, stubTokenCodec{}, time.Hour, zerolog.Nop())

	if err := svc.SetSession(context.Background(), 9, "token-9"); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}
	if err := svc.DestroySession(context.Background(), 9); err != nil {
		t.Fatalf("DestroySession returned error: %v", err)
	}
	if _, ok, _ := store.Get(context.Background(), 9); ok {
		t.Fatalf("expected session removed")
	}
	if err := svc.DestroySession(context.Background(), 9); err != nil {
		t.Fatalf("expected second destroy to be a no-op, got %v", err)
	}
}

func TestAuthService_DefaultLoginTTL(t *testing.T) {
	store := newStubSessionStore()
	svc := NewAuthService(newStubAccountRepo(), store, stubTokenCodec{}, 0, zerolog.Nop())

	if err := svc.SetSession(context.Background(), 3, "token-3"); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}
	if store.ttls[3] != time.Hour {
		t.Fatalf("expected default TTL of 1h, got %v", store.ttls[3])
	}
}
