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

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for the search handler.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest represents the request body for a search.
type SearchRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
}

// SearchResultResponse is one moderated result on the wire.
type SearchResultResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
	Flagged bool   `json:"flagged"`
}

// SearchResponse carries one page of results and the next page cursor.
type SearchResponse struct {
	Results  []SearchResultResponse `json:"results"`
	NextPage int                    `json:"nextPage"`
}

// Search handles an authenticated search request.
func (h *SearchHandler) Search(c echo.Context) error {
	if _, ok := deliverycontext.GetUserID(c); !ok {
		return response.AppError(c, domainerrors.ErrBadToken)
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrNoQuery)
	}

	output, err := h.searchUC.Search(c.Request().Context(), &usecase.SearchInput{
		Query: req.Query,
		Page:  req.Page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, SearchResponse{
		Results:  toSearchResultResponses(output.Results),
		NextPage: output.NextPage,
	})
}

func toSearchResultResponses(results []entity.ModeratedResult) []SearchResultResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResultResponse{
			ID:      r.ID,
			Title:   r.Title,
			Snippet: r.Snippet,
			URL:     r.URL,
			Flagged: r.Flagged,
		})
	}

	return out
}
