package repository

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository defines persistence operations for a user's favorites
// list. Appends are single-statement inserts, so they are atomic at the
// store layer and need no surrounding transaction.
type FavoriteRepository interface {
	// Append adds a favorite to the end of the user's list.
	Append(ctx context.Context, userID uuid.UUID, favorite *entity.Favorite) error

	// ListByUserID returns the user's favorites in insertion order.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error)
}
