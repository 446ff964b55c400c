package impl

import (
	"context"
	"testing"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	service    usecase.SearchUsecase
	provider   *mockSearchProvider
	moderation *mockModerationFilter
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	t.Helper()

	provider := &mockSearchProvider{}
	moderation := &mockModerationFilter{}

	service := NewSearchService(SearchServiceParams{
		Provider:   provider,
		Moderation: moderation,
		Logger:     newDiscardLogger(),
	})

	t.Cleanup(func() {
		provider.AssertExpectations(t)
		moderation.AssertExpectations(t)
	})

	return searchServiceFixtures{
		service:    service,
		provider:   provider,
		moderation: moderation,
	}
}

func TestSearchService_Search_Success(t *testing.T) {
	fix := createTestSearchService(t)
	ctx := context.Background()

	raw := []entity.SearchResult{{ID: "q_2_0"}, {ID: "q_2_1"}}
	moderated := []entity.ModeratedResult{
		{SearchResult: raw[0], Flagged: true},
		{SearchResult: raw[1], Flagged: false},
	}

	fix.provider.On("Search", ctx, "q", 2).Return(raw, nil)
	fix.moderation.On("Moderate", raw).Return(moderated)

	output, err := fix.service.Search(ctx, &usecase.SearchInput{Query: "q", Page: 2})

	require.NoError(t, err)
	assert.Equal(t, moderated, output.Results)
	assert.Equal(t, 3, output.NextPage)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	fix := createTestSearchService(t)

	_, err := fix.service.Search(context.Background(), &usecase.SearchInput{Query: ""})

	require.ErrorIs(t, err, domainerrors.ErrNoQuery)
	fix.provider.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_Search_PageDefaultsToOne(t *testing.T) {
	fix := createTestSearchService(t)
	ctx := context.Background()

	fix.provider.On("Search", ctx, "q", 1).Return([]entity.SearchResult{}, nil)
	fix.moderation.On("Moderate", []entity.SearchResult{}).Return([]entity.ModeratedResult{})

	output, err := fix.service.Search(ctx, &usecase.SearchInput{Query: "q", Page: 0})

	require.NoError(t, err)
	assert.Equal(t, 2, output.NextPage)
}
