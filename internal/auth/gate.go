// Package auth guards the API with a single shared bearer secret.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("authorization header is required")
	// ErrMalformedHeader is returned for headers not of the form "Bearer <token>".
	ErrMalformedHeader = errors.New("authorization header format must be 'Bearer <token>'")
	// ErrInvalidToken is returned when the token does not match the secret.
	ErrInvalidToken = errors.New("invalid token")
)

// Gate verifies bearer tokens against the configured secret. It is built once
// at startup and is safe for concurrent use.
type Gate struct {
	token []byte
	hash  []byte
}

// NewGate builds a Gate from the plain secret, a bcrypt hash of it, or both.
// When a hash is given it is the one checked.
func NewGate(token, tokenHash string) (*Gate, error) {
	if token == "" && tokenHash == "" {
		return nil, errors.New("auth: a token or a token hash is required")
	}
	g := &Gate{token: []byte(token)}
	if tokenHash != "" {
		if _, err := bcrypt.Cost([]byte(tokenHash)); err != nil {
			return nil, fmt.Errorf("auth: invalid token hash: %w", err)
		}
		g.hash = []byte(tokenHash)
	}
	return g, nil
}

// Verify reports whether token is the shared secret.
func (g *Gate) Verify(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	if g.hash != nil {
		if err := bcrypt.CompareHashAndPassword(g.hash, []byte(token)); err != nil {
			return ErrInvalidToken
		}
		return nil
	}
	if subtle.ConstantTimeCompare(g.token, []byte(token)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// VerifyHeader checks a raw Authorization header value.
func (g *Gate) VerifyHeader(header string) error {
	if header == "" {
		return ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return ErrMalformedHeader
	}
	return g.Verify(parts[1])
}

// HashToken returns a bcrypt hash suitable for AUTH_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(hashed), nil
}
