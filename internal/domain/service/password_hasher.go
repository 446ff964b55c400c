// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit
// within a single entity.
package service

import "errors"

// ErrInvalidHashFormat is returned by Check when the stored hash is not a
// valid encoding for the underlying algorithm. A plain mismatch is not an
// error; it is (false, nil).
var ErrInvalidHashFormat = errors.New("invalid password hash format")

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping
// the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Repeated calls
	// on the same plaintext yield different outputs.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) (bool, error)
}
