// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when creating a user whose email already exists.
// The store's unique index is the source of truth for email uniqueness.
var ErrEmailTaken = errors.New("email already taken")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. Returns ErrEmailTaken if the email is
	// already registered.
	Create(ctx context.Context, user *entity.User) error
}
