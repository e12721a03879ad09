package repository

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the activity is already favorited.
	ErrDuplicateFavorite = errors.New("activity already favorited")
)

// FavoriteRepository defines the interface for favorite database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes a user's favorite of an activity.
	DeleteFavorite(ctx context.Context, userID, activityID uuid.UUID) error

	// FindFavoritesByUser retrieves a user's favorites, newest first, with
	// the activity rows loaded.
	FindFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
