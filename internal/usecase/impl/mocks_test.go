package impl

import (
	"context"
	"io"
	"log/slog"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository and service interfaces the
// use cases depend on.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Append(ctx context.Context, userID uuid.UUID, favorite *entity.Favorite) error {
	args := m.Called(ctx, userID, favorite)

	return args.Error(0)
}

func (m *mockFavoriteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	args := m.Called(ctx, userID)
	if favorites := args.Get(0); favorites != nil {
		return favorites.([]entity.Favorite), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) (bool, error) {
	args := m.Called(password, hash)

	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockSearchProvider struct {
	mock.Mock
}

func (m *mockSearchProvider) Search(ctx context.Context, query string, page int) ([]entity.SearchResult, error) {
	args := m.Called(ctx, query, page)
	if results := args.Get(0); results != nil {
		return results.([]entity.SearchResult), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockModerationFilter struct {
	mock.Mock
}

func (m *mockModerationFilter) Moderate(results []entity.SearchResult) []entity.ModeratedResult {
	args := m.Called(results)

	return args.Get(0).([]entity.ModeratedResult)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
