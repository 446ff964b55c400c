package impl

import (
	"context"
	"log/slog"

	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	deliverycontext "scout/internal/delivery/context"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface. It only orchestrates
// the provider and the moderation filter; both collaborators are injectable
// so real integrations can replace the placeholders.
type searchService struct {
	provider   service.SearchProvider
	moderation service.ModerationFilter
	logger     *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Provider   service.SearchProvider
	Moderation service.ModerationFilter
	Logger     *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		provider:   params.Provider,
		moderation: params.Moderation,
		logger:     params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search fetches one page of results and runs them through moderation.
// Page defaults to 1 when the client sends nothing or a non-positive value.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	if input == nil || input.Query == "" {
		return nil, domainerrors.ErrNoQuery
	}

	page := input.Page
	if page < 1 {
		page = 1
	}

	results, err := srv.provider.Search(ctx, input.Query, page)
	if err != nil {
		return nil, errors.Wrap(err, "search provider failed")
	}

	moderated := srv.moderation.Moderate(results)

	srv.log(ctx).Debug("Search completed", slog.String("query", input.Query), slog.Int("page", page), slog.Int("results", len(moderated)))

	return &usecase.SearchOutput{
		Results:  moderated,
		NextPage: page + 1,
	}, nil
}
