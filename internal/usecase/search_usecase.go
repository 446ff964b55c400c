package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// SearchInput defines the data required for a search request.
type SearchInput struct {
	Query string
	Page  int
}

// SearchOutput returns one page of moderated results and the next page
// cursor.
type SearchOutput struct {
	Results  []entity.ModeratedResult
	NextPage int
}

// SearchUsecase defines the search operation for an authenticated user.
type SearchUsecase interface {
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}
