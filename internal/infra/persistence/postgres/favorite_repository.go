package postgres

import (
	"context"

	"scout/internal/domain/entity"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface
// using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Append adds a favorite to the end of the user's list. A single INSERT is
// atomic, and the bigserial primary key fixes the position in the list.
func (repo *favoriteRepository) Append(ctx context.Context, userID uuid.UUID, favorite *entity.Favorite) error {
	favM := &model.FavoriteModel{
		UserID:    userID,
		ContentID: favorite.ContentID,
		Title:     favorite.Title,
		Snippet:   favorite.Snippet,
		URL:       favorite.URL,
	}

	if err := repo.db.WithContext(ctx).Create(favM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to append favorite")
	}

	favorite.CreatedAt = favM.CreatedAt

	return nil
}

// ListByUserID returns the user's favorites in insertion order.
func (repo *favoriteRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	var favModels []model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]entity.Favorite, 0, len(favModels))
	for i := range favModels {
		favorites = append(favorites, *toFavoriteDomain(&favModels[i]))
	}

	return favorites, nil
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ContentID: data.ContentID,
		Title:     data.Title,
		Snippet:   data.Snippet,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
	}
}
