package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecodot/clubhub/internal/core/ports"
)

func TestCodec_IssueVerify_RoundTrip(t *testing.T) {
	codec := NewCodec("secret")
	loggedInAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	signed, err := codec.Issue(ports.TokenPayload{
		Idx:        42,
		Email:      "alice@example.com",
		LoggedInAt: loggedInAt,
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	payload, ok := codec.Verify(signed)
	if !ok {
		t.Fatalf("expected token to verify")
	}
	if payload.Idx != 42 {
		t.Fatalf("expected idx 42, got %d", payload.Idx)
	}
	if payload.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", payload.Email)
	}
	if !payload.LoggedInAt.Equal(loggedInAt) {
		t.Fatalf("expected loggedInAt %v, got %v", loggedInAt, payload.LoggedInAt)
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	signed, err := NewCodec("secret-a").Issue(ports.TokenPayload{
		Idx:        1,
		Email:      "bob@example.com",
		LoggedInAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := NewCodec("secret-b").Verify(signed); ok {
		t.Fatalf("expected verification to fail across secrets")
	}
}

func TestCodec_Verify_WrongIssuer(t *testing.T) {
	claims := jwt.MapClaims{
		"idx":        int64(1),
		"email":      "bob@example.com",
		"loggedInAt": time.Now().Unix(),
		"iss":        "someone-else",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := NewCodec("secret").Verify(signed); ok {
		t.Fatalf("expected verification to fail for foreign issuer")
	}
}

func TestCodec_Verify_WrongAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"idx":   int64(1),
		"email": "bob@example.com",
		"iss":   Issuer,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := NewCodec("secret").Verify(signed); ok {
		t.Fatalf("expected verification to reject non-HS256 token")
	}
}

func TestCodec_Verify_Garbage(t *testing.T) {
	codec := NewCodec("secret")

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, ok := codec.Verify(token); ok {
			t.Fatalf("expected verification to fail for %q", token)
		}
	}
}

func TestCodec_Verify_MissingIdentityClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"iss": Issuer,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, ok := NewCodec("secret").Verify(signed); ok {
		t.Fatalf("expected verification to fail without identity claims")
	}
}
