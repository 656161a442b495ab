// Package security wraps the credential primitive: one-way API-key hashing
// and verification. Callers only ever store and compare hashes.
package security

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt cost used for seeding and for keys minted
// through the admin routes.
const DefaultHashCost = 12

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password matches the stored hash. A comparison
// error counts as a mismatch.
func Compare(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewAPIKey mints a fresh plaintext credential for a created or rotated
// user. The plaintext is returned to the caller exactly once; only its hash
// is persisted.
func NewAPIKey() string {
	return uuid.NewString()
}
