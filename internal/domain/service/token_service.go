package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrTokenInvalid covers bad signatures, foreign signing keys and
	// malformed token structure.
	ErrTokenInvalid = errors.New("invalid session token")

	// ErrTokenExpired means the signature verified but the expiry has passed.
	ErrTokenExpired = errors.New("session token expired")
)

// TokenService defines the interface for issuing and verifying signed,
// expiring session tokens. A token binds a user identity to an expiry;
// there is no revocation, a token stays valid until it expires.
type TokenService interface {
	// Issue creates a new signed session token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature and expiry, returning the embedded user ID.
	// Fails with ErrTokenExpired or ErrTokenInvalid.
	Verify(tokenString string) (uuid.UUID, error)
}
