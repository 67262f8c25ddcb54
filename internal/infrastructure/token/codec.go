// Package token signs and verifies session tokens. Tokens carry identity and
// issue time only; expiry is enforced by the session store, not the token.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecodot/clubhub/internal/core/ports"
)

// Issuer is the fixed iss claim stamped on every token.
const Issuer = "ecodot"

// Codec signs and verifies tokens with a shared HS256 secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue produces a signed token asserting the payload under the fixed issuer.
func (c *Codec) Issue(payload ports.TokenPayload) (string, error) {
	claims := jwt.MapClaims{
		"idx":        payload.Idx,
		"email":      payload.Email,
		"loggedInAt": payload.LoggedInAt.Unix(),
		"iss":        Issuer,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and issuer. It is side-effect-free and reports bad
// input through ok=false rather than an error.
func (c *Codec) Verify(token string) (ports.TokenPayload, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithIssuer(Issuer))
	if err != nil || !tkn.Valid {
		return ports.TokenPayload{}, false
	}

	idx, ok := claims["idx"].(float64)
	if !ok {
		return ports.TokenPayload{}, false
	}
	email, ok := claims["email"].(string)
	if !ok {
		return ports.TokenPayload{}, false
	}
	loggedInAt, _ := claims["loggedInAt"].(float64)

	return ports.TokenPayload{
		Idx:        int64(idx),
		Email:      email,
		LoggedInAt: time.Unix(int64(loggedInAt), 0).UTC(),
	}, true
}
