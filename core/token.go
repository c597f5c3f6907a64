package core

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the absolute lifetime of an issued token. Validity is purely
// signature + expiry; there is no revocation list.
const tokenTTL = 24 * time.Hour

// TokenService issues and verifies signed, time-limited bearer tokens
// carrying a subject identifier.
type TokenService struct {
	secret []byte
}

// NewTokenService builds a TokenService from the configured signing secret.
// An empty secret is a configuration error; callers must treat it as fatal.
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("empty jwt secret")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// Issue produces a signed token for subjectID expiring tokenTTL from now.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its subject identifier.
// Any failure collapses into ErrInvalidToken so callers never leak the
// underlying reason to clients.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
