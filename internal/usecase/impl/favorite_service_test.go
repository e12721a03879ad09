package impl

import (
	"context"
	"testing"

	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	mockRepo "kidsactivity/internal/mocks/repository"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository, *mockRepo.MockActivityRepository) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		ActivityRepo: activityRepo,
		Logger:       newDiscardLogger(),
	})

	return service, favoriteRepo, activityRepo
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	service, favoriteRepo, activityRepo := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	activityID := uuid.New()
	activity := &entity.Activity{ID: activityID, Name: "Gymnastics"}

	activityRepo.EXPECT().FindActivityByID(ctx, activityID).Return(activity, nil)
	favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(ctx context.Context, favorite *entity.Favorite) {
			favorite.ID = uuid.New()
		}).
		Return(nil)

	favorite, err := service.AddFavorite(ctx, userID, activityID)

	require.NoError(t, err)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, activityID, favorite.ActivityID)
	assert.Equal(t, activity, favorite.Activity)
}

func TestFavoriteService_AddFavorite_ActivityNotFound(t *testing.T) {
	service, _, activityRepo := createTestFavoriteService(t)

	ctx := context.Background()
	activityID := uuid.New()

	activityRepo.EXPECT().
		FindActivityByID(ctx, activityID).
		Return(nil, repository.ErrActivityNotFound)

	favorite, err := service.AddFavorite(ctx, uuid.New(), activityID)

	require.Error(t, err)
	assert.Nil(t, favorite)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	service, favoriteRepo, activityRepo := createTestFavoriteService(t)

	ctx := context.Background()
	activityID := uuid.New()

	activityRepo.EXPECT().
		FindActivityByID(ctx, activityID).
		Return(&entity.Activity{ID: activityID}, nil)
	favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	favorite, err := service.AddFavorite(ctx, uuid.New(), activityID)

	require.Error(t, err)
	assert.Nil(t, favorite)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteExists))
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	activityID := uuid.New()

	favoriteRepo.EXPECT().
		DeleteFavorite(ctx, userID, activityID).
		Return(repository.ErrFavoriteNotFound)

	err := service.RemoveFavorite(ctx, userID, activityID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))
}

func TestFavoriteService_ListFavorites_Success(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)

	ctx := context.Background()
	userID := uuid.New()
	favorites := []*entity.Favorite{
		{ID: uuid.New(), UserID: userID, ActivityID: uuid.New()},
	}

	favoriteRepo.EXPECT().FindFavoritesByUser(ctx, userID).Return(favorites, nil)

	got, err := service.ListFavorites(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}
