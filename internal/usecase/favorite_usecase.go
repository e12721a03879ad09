package usecase

import (
	"context"

	"kidsactivity/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for saved-activity operations.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, userID, activityID uuid.UUID) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, activityID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
