package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "scout/internal/delivery/context"
	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoritesHandlerParams holds dependencies for FavoritesHandler, injected by Fx.
type FavoritesHandlerParams struct {
	fx.In

	FavoritesUC usecase.FavoritesUsecase
	Logger      *slog.Logger
}

// FavoritesHandler holds dependencies for favorites handlers.
type FavoritesHandler struct {
	favoritesUC usecase.FavoritesUsecase
	logger      *slog.Logger
}

// NewFavoritesHandler is the constructor for FavoritesHandler.
func NewFavoritesHandler(params FavoritesHandlerParams) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesUC: params.FavoritesUC,
		logger:      params.Logger,
	}
}

// AddFavoriteRequest represents the request body for saving a favorite.
type AddFavoriteRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// FavoriteResponse is one saved favorite on the wire.
type FavoriteResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// ListFavoritesResponse wraps the favorites list.
type ListFavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

// AddFavorite appends a favorite to the authenticated user's list.
func (h *FavoritesHandler) AddFavorite(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrBadToken)
	}

	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrMissingFields)
	}

	input := &usecase.AddFavoriteInput{
		ContentID: req.ID,
		Title:     req.Title,
		Snippet:   req.Snippet,
		URL:       req.URL,
	}

	if err := h.favoritesUC.AddFavorite(c.Request().Context(), userID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, http.StatusOK)
}

// ListFavorites returns the authenticated user's favorites in insertion
// order.
func (h *FavoritesHandler) ListFavorites(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrBadToken)
	}

	favorites, err := h.favoritesUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ListFavoritesResponse{
		Favorites: toFavoriteResponses(favorites),
	})
}

func toFavoriteResponses(favorites []entity.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, FavoriteResponse{
			ID:      f.ContentID,
			Title:   f.Title,
			Snippet: f.Snippet,
			URL:     f.URL,
		})
	}

	return out
}
