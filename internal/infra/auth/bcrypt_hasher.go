// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"scout/config"
	"scout/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt. bcrypt is deliberately slow and salts every digest itself,
// so two hashes of the same password never compare equal as strings.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost factor
// comes from configuration and falls back to bcrypt's default.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash. A mismatch is
// (false, nil); only a malformed hash encoding is an error.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return false, service.ErrInvalidHashFormat
}
