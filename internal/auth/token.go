// Package auth issues and verifies the signed bearer tokens that gate every
// protected route. Tokens are stateless: validity is purely a function of
// signature and expiry, there is no revocation list.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devport/portfolio-api/internal/errs"
)

// TokenManager signs and verifies HS256 tokens binding a user id (subject)
// to an expiry window.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager. The secret must be non-empty;
// config validation enforces that before this is ever reached.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue produces a signed token whose subject is the user id, expiring
// ttl from now.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	return token.SignedString(m.secret)
}

// TTL returns the configured validity duration.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Verify checks signature and expiry and returns the subject. An expired
// token yields CodeTokenExpired; any other failure (malformed, forged,
// wrong algorithm, empty subject) yields CodeInvalidCredential.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.Wrap(err, errs.CodeTokenExpired, "token has expired, please log in again")
		}
		return "", errs.Wrap(err, errs.CodeInvalidCredential, "invalid token")
	}
	if !token.Valid || claims.Subject == "" {
		return "", errs.New(errs.CodeInvalidCredential, "invalid token")
	}
	return claims.Subject, nil
}
