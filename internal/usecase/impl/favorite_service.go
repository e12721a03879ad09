package impl

import (
	"context"
	"log/slog"

	deliverycontext "kidsactivity/internal/delivery/context"
	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite saves an activity for the acting user. The activity is
// verified first so a bad ID surfaces as 404 rather than a constraint error.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, activityID uuid.UUID) (*entity.Favorite, error) {
	activity, err := srv.activityRepo.FindActivityByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActivityNotFound, "add favorite failed")
		}

		return nil, errors.Wrap(err, "failed to verify activity for favorite")
	}

	favorite := &entity.Favorite{
		UserID:     userID,
		ActivityID: activityID,
	}

	if err := srv.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, errors.Wrap(domainerrors.ErrFavoriteExists, "add favorite failed")
		}
		srv.log(ctx).Error("Failed to add favorite", slog.Any("userID", userID), slog.Any("activityID", activityID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add favorite")
	}

	favorite.Activity = activity
	srv.log(ctx).Debug("Favorite added", slog.Any("userID", userID), slog.Any("activityID", activityID))

	return favorite, nil
}

// RemoveFavorite deletes the acting user's favorite of an activity.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, activityID uuid.UUID) error {
	if err := srv.favoriteRepo.DeleteFavorite(ctx, userID, activityID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.Wrap(domainerrors.ErrFavoriteNotFound, "remove favorite failed")
		}
		srv.log(ctx).Error("Failed to remove favorite", slog.Any("userID", userID), slog.Any("activityID", activityID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites returns the acting user's saved activities, newest first.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
