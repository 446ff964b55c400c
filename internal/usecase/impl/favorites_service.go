package impl

import (
	"context"
	"log/slog"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/usecase"

	deliverycontext "scout/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoritesService implements the FavoritesUsecase interface.
type favoritesService struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoritesServiceParams holds dependencies for favoritesService, injected by Fx.
type FavoritesServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoritesService is the constructor for favoritesService.
func NewFavoritesService(params FavoritesServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		userRepo:     params.UserRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoritesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite appends a favorite to the authenticated user's list. A valid
// token can outlive its account, so the account is re-checked here.
func (srv *favoritesService) AddFavorite(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token references a missing account", slog.Any("userID", userID))

			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for favorite append")
	}

	favorite := &entity.Favorite{
		ContentID: input.ContentID,
		Title:     input.Title,
		Snippet:   input.Snippet,
		URL:       input.URL,
	}

	if err := srv.favoriteRepo.Append(ctx, userID, favorite); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to append favorite")
	}

	srv.log(ctx).Debug("Favorite appended", slog.Any("userID", userID), slog.String("contentID", input.ContentID))

	return nil
}

// ListFavorites returns the authenticated user's favorites in insertion
// order. An empty list is a valid result, not an error.
func (srv *favoritesService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
