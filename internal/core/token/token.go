// Package token issues and verifies the signed bearer tokens used for
// authentication. Tokens are stateless by design: there is no server-side
// session or revocation list, so an issued token stays valid until its
// fixed expiry. That trades revocability for horizontal scalability.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 30 * time.Minute

var (
	// ErrInvalidToken covers bad signatures, malformed envelopes and
	// unexpected signing methods alike. The cases are not distinguished:
	// collapsing them keeps the token structure opaque to an attacker.
	ErrInvalidToken = errors.New("token invalid")

	// ErrTokenExpired is returned only for a correctly signed token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the typed payload embedded in every token. Subject carries the
// account email; expiry lives in RegisteredClaims.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a server-held HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New builds a token Service. A non-positive ttl falls back to DefaultTTL.
func New(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token asserting subject, expiring at now + TTL.
func (s *Service) Issue(subject string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry of raw against the given clock
// and returns the embedded subject. Expiry is only reported for tokens
// that passed the signature check; everything else is ErrInvalidToken.
func (s *Service) Verify(raw string, now time.Time) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		// Signature problems win over expiry: a tampered token must never
		// report anything about its payload.
		return "", ErrInvalidToken
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	default:
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
