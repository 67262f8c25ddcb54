package ports

import "context"

// Claim is the minimal identity assertion returned by a successful login.
type Claim struct {
	Idx   int64
	Email string
}

// AuthService orchestrates credential verification and session lifecycle.
type AuthService interface {
	// Login verifies email+password against active accounts. Unknown email and
	// password mismatch both collapse to domain.ErrInvalidCredentials so the
	// response never reveals which accounts exist.
	Login(ctx context.Context, email, password string) (Claim, error)

	// CreateToken issues a signed token for the claim, stamped with the
	// current time as loggedInAt.
	CreateToken(claim Claim) (string, error)

	// SetSession writes the session entry with the configured login TTL.
	SetSession(ctx context.Context, accountIdx int64, token string) error

	// DestroySession removes the session entry. The token itself stays
	// cryptographically valid; validity is store-gated.
	DestroySession(ctx context.Context, accountIdx int64) error
}
