package entity

// SearchResult is a single hit returned by a search provider.
type SearchResult struct {
	ID      string
	Title   string
	Snippet string
	URL     string
}

// ModeratedResult is a search result annotated by the moderation filter.
type ModeratedResult struct {
	SearchResult
	Flagged bool
}
