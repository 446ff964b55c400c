// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. PasswordHash stays internal to the
// domain and persistence layers; it must never appear in an API response.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned by the store on creation.
	Email        string    // Globally unique, used as the login key.
	PasswordHash string    // One-way bcrypt digest of the password.
	AgeConfirmed bool      // True iff the user attested age >= 18 at registration.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Favorite is a saved content reference owned by a single user.
// ContentID is the content's external identifier; it is not unique per
// user and no dedup is enforced.
type Favorite struct {
	ContentID string
	Title     string
	Snippet   string
	URL       string
	CreatedAt time.Time
}
