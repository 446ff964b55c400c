package usecase

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// AddFavoriteInput defines the data required to save a favorite. The owning
// user always comes from the verified token, never from the request body.
type AddFavoriteInput struct {
	ContentID string
	Title     string
	Snippet   string
	URL       string
}

// FavoritesUsecase defines favorites operations for an authenticated user.
type FavoritesUsecase interface {
	// AddFavorite appends a favorite to the end of the user's list.
	AddFavorite(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) error

	// ListFavorites returns the user's favorites in insertion order.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error)
}
