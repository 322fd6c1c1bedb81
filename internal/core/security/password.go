// Package security wraps bcrypt for password hashing and verification.
package security

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plain text password with bcrypt at the default cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt digest.
// A malformed digest verifies false; it is never an error the caller has
// to distinguish from a wrong password.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
