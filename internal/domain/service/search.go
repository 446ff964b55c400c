package service

import (
	"context"

	"scout/internal/domain/entity"
)

// SearchProvider is the external search collaborator. The default
// implementation fabricates placeholder results; a real integration can be
// substituted without touching the use case layer.
type SearchProvider interface {
	Search(ctx context.Context, query string, page int) ([]entity.SearchResult, error)
}

// ModerationFilter annotates search results with moderation verdicts
// before they are returned to the client.
type ModerationFilter interface {
	Moderate(results []entity.SearchResult) []entity.ModeratedResult
}
