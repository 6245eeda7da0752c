package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if TokenExpired(signedToken(t, now.Add(time.Hour)), now) {
		t.Error("TokenExpired(future exp) = true, want false")
	}
	if !TokenExpired(signedToken(t, now.Add(-time.Hour)), now) {
		t.Error("TokenExpired(past exp) = false, want true")
	}
	if !TokenExpired("not-a-token", now) {
		t.Error("TokenExpired(garbage) = false, want true")
	}
}

func TestTokenWithoutExp(t *testing.T) {
	claims := jwt.MapClaims{"sub": "u1"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// The server owns validity; a token with no exp claim is passed along.
	if TokenExpired(token, time.Now()) {
		t.Error("TokenExpired(no exp) = true, want false")
	}
}
