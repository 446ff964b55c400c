// Package search provides the default search and moderation collaborators.
// Both are stand-ins: the provider fabricates deterministic results and the
// filter applies a fake verdict, so the surrounding API contract can be
// exercised before a real integration exists.
package search

import (
	"context"
	"fmt"

	"scout/config"
	"scout/internal/domain/entity"
	"scout/internal/domain/service"
)

const defaultPageSize = 10

// placeholderProvider fabricates one page of deterministic results for any
// query. Result IDs encode query, page and index so pages are stable.
type placeholderProvider struct {
	pageSize int
}

// NewPlaceholderProvider is the constructor for placeholderProvider.
func NewPlaceholderProvider(cfg *config.Config) service.SearchProvider {
	pageSize := defaultPageSize
	if cfg.Search != nil && cfg.Search.PageSize > 0 {
		pageSize = cfg.Search.PageSize
	}

	return &placeholderProvider{pageSize: pageSize}
}

// Search returns a full page of placeholder results.
func (p *placeholderProvider) Search(_ context.Context, query string, page int) ([]entity.SearchResult, error) {
	results := make([]entity.SearchResult, 0, p.pageSize)
	for i := range p.pageSize {
		results = append(results, entity.SearchResult{
			ID:      fmt.Sprintf("%s_%d_%d", query, page, i),
			Title:   fmt.Sprintf("Result %d for %q", i+1, query),
			Snippet: fmt.Sprintf("This is a placeholder snippet for %s.", query),
			URL:     fmt.Sprintf("https://example.com/%s/%d", query, i),
		})
	}

	return results, nil
}

// stubModerationFilter flags every even-indexed result. It simulates a
// moderation pass without any real content analysis.
type stubModerationFilter struct{}

// NewStubModerationFilter is the constructor for stubModerationFilter.
func NewStubModerationFilter() service.ModerationFilter {
	return &stubModerationFilter{}
}

// Moderate annotates each result with a fake verdict.
func (f *stubModerationFilter) Moderate(results []entity.SearchResult) []entity.ModeratedResult {
	moderated := make([]entity.ModeratedResult, 0, len(results))
	for idx, r := range results {
		moderated = append(moderated, entity.ModeratedResult{
			SearchResult: r,
			Flagged:      idx%2 == 0,
		})
	}

	return moderated
}
