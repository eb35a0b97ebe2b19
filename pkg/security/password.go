// Package security provides password hashing for candidates that have
// passed the registration validity rules.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/passcheck/pkg/password"
)

var (
	// ErrInvalidPassword is returned when a candidate fails the
	// registration validity rules.
	ErrInvalidPassword = errors.New("password does not satisfy validity rules")

	// ErrHashingFailed is returned when the hashing primitive itself fails.
	ErrHashingFailed = errors.New("password hashing failed")
)

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(candidate string) (string, error)
	Compare(hashedPassword, candidate string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new password hasher using bcrypt. Costs
// outside bcrypt's supported range fall back to the default cost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash refuses candidates that fail the validity rules.
func (b *bcryptHasher) Hash(candidate string) (string, error) {
	if !password.IsValid(candidate) {
		return "", ErrInvalidPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(candidate), b.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(bytes), nil
}

func (b *bcryptHasher) Compare(hashedPassword, candidate string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(candidate))
}
