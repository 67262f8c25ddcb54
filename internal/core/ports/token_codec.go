package ports

import "time"

// TokenPayload is the signed content of a session token. Expiry is not part
// of the token; it is enforced by the SessionStore TTL.
type TokenPayload struct {
	Idx        int64
	Email      string
	LoggedInAt time.Time
}

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	Issue(payload TokenPayload) (string, error)

	// Verify checks signature and issuer. ok is false for malformed, tampered
	// or foreign-issuer tokens; Verify never returns an error for bad input.
	Verify(token string) (payload TokenPayload, ok bool)
}
