package postgres

import (
	"context"

	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// CreateFavorite persists a new favorite. The unique (user, activity) index
// catches repeats.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavorite removes a user's favorite of an activity.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID, activityID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindFavoritesByUser retrieves a user's favorites, newest first, with the
// activity rows loaded.
func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var models []*model.FavoriteModel

	err := repo.db.WithContext(ctx).
		Preload("Activity").
		Preload("Activity.Location").
		Preload("Activity.Provider").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(models))
	for _, favoriteM := range models {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		ActivityID: data.ActivityID,
		CreatedAt:  data.CreatedAt,
		Activity:   toActivityDomain(data.Activity),
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ActivityID: data.ActivityID,
	}
}
