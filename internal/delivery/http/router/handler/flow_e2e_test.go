package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"scout/config"
	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/validator"
	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
	"scout/internal/infra/auth"
	"scout/internal/infra/search"
	"scout/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// In-memory repository fakes backing the end-to-end scenario. They mimic
// the store guarantees the services rely on: unique email on create and
// append-ordered favorites.

type memoryUserRepository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrEmailTaken
	}

	user.ID = uuid.New()
	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = &stored

	return nil
}

type memoryFavoriteRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID][]entity.Favorite
}

func newMemoryFavoriteRepository() *memoryFavoriteRepository {
	return &memoryFavoriteRepository{byUser: make(map[uuid.UUID][]entity.Favorite)}
}

func (r *memoryFavoriteRepository) Append(_ context.Context, userID uuid.UUID, favorite *entity.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[userID] = append(r.byUser[userID], *favorite)

	return nil
}

func (r *memoryFavoriteRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Favorite(nil), r.byUser[userID]...), nil
}

// newTestServer assembles the real services and handlers over the in-memory
// repositories, wired the same way main does it.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "e2e-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:      bcrypt.MinCost,
		SessionTokenTTL: time.Hour,
	}

	logger := slog.New(slog.DiscardHandler)
	userRepo := newMemoryUserRepository()
	favoriteRepo := newMemoryFavoriteRepository()
	hasher := auth.NewBcryptHasher(cfg)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	favoritesUC := impl.NewFavoritesService(impl.FavoritesServiceParams{
		UserRepo:     userRepo,
		FavoriteRepo: favoriteRepo,
		Logger:       logger,
	})
	searchUC := impl.NewSearchService(impl.SearchServiceParams{
		Provider:   search.NewPlaceholderProvider(cfg),
		Moderation: search.NewStubModerationFilter(),
		Logger:     logger,
	})

	accountHandler := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: logger})
	searchHandler := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC, Logger: logger})
	favoritesHandler := NewFavoritesHandler(FavoritesHandlerParams{FavoritesUC: favoritesUC, Logger: logger})
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/register", accountHandler.Register)
	e.POST("/login", accountHandler.Login)
	e.POST("/search", searchHandler.Search, authMiddleware.Authenticate)
	e.POST("/favorites", favoritesHandler.AddFavorite, authMiddleware.Authenticate)
	e.GET("/favorites", favoritesHandler.ListFavorites, authMiddleware.Authenticate)

	return e
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestEndToEnd_RegisterLoginFavorite(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"email":"a@x.com","password":"pw123","age":20}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/login", "", `{"email":"a@x.com","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))
	require.NotEmpty(t, loginBody.Token)

	rec = doJSON(e, http.MethodPost, "/favorites", loginBody.Token, `{"id":"r1","title":"R","snippet":"s","url":"u"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/favorites", loginBody.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listBody struct {
		Favorites []FavoriteResponse `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listBody))
	require.Len(t, listBody.Favorites, 1)
	assert.Equal(t, FavoriteResponse{ID: "r1", Title: "R", Snippet: "s", URL: "u"}, listBody.Favorites[0])
}

func TestEndToEnd_FavoritesKeepInsertionOrder(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/register", "", `{"email":"a@x.com","password":"pw123","age":20}`)
	rec := doJSON(e, http.MethodPost, "/login", "", `{"email":"a@x.com","password":"pw123"}`)

	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))

	doJSON(e, http.MethodPost, "/favorites", loginBody.Token, `{"id":"f1","title":"first"}`)
	doJSON(e, http.MethodPost, "/favorites", loginBody.Token, `{"id":"f2","title":"second"}`)

	rec = doJSON(e, http.MethodGet, "/favorites", loginBody.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listBody struct {
		Favorites []FavoriteResponse `json:"favorites"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listBody))
	require.Len(t, listBody.Favorites, 2)
	assert.Equal(t, "f1", listBody.Favorites[0].ID)
	assert.Equal(t, "f2", listBody.Favorites[1].ID)
}

func TestEndToEnd_UnderageLeavesNoAccount(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"email":"kid@x.com","password":"pw123","age":17}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"must_be_18"}`, rec.Body.String())

	// No user record was created, so login must report an unknown user.
	rec = doJSON(e, http.MethodPost, "/login", "", `{"email":"kid@x.com","password":"pw123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"no_user"}`, rec.Body.String())
}

func TestEndToEnd_DuplicateEmail(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/register", "", `{"email":"a@x.com","password":"pw123","age":20}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/register", "", `{"email":"a@x.com","password":"other","age":30}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email_taken"}`, rec.Body.String())

	// The first account's credentials still work.
	rec = doJSON(e, http.MethodPost, "/login", "", `{"email":"a@x.com","password":"pw123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEndToEnd_Search(t *testing.T) {
	e := newTestServer(t)

	doJSON(e, http.MethodPost, "/register", "", `{"email":"a@x.com","password":"pw123","age":20}`)
	rec := doJSON(e, http.MethodPost, "/login", "", `{"email":"a@x.com","password":"pw123"}`)

	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))

	rec = doJSON(e, http.MethodPost, "/search", loginBody.Token, `{"query":"gophers"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var searchBody SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &searchBody))
	require.Len(t, searchBody.Results, 10)
	assert.Equal(t, 2, searchBody.NextPage)
	assert.Equal(t, "gophers_1_0", searchBody.Results[0].ID)
	assert.True(t, searchBody.Results[0].Flagged)
	assert.False(t, searchBody.Results[1].Flagged)

	rec = doJSON(e, http.MethodPost, "/search", loginBody.Token, `{"query":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"no_query"}`, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/search", "", `{"query":"gophers"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"no_token"}`, rec.Body.String())
}
