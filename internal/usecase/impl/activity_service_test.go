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
	"github.com/stretchr/testify/require"
)

func createTestActivityService(t *testing.T) (usecase.ActivityUsecase, *mockRepo.MockActivityRepository) {
	activityRepo := mockRepo.NewMockActivityRepository(t)

	service := NewActivityService(ActivityServiceParams{
		ActivityRepo: activityRepo,
		Logger:       newDiscardLogger(),
	})

	return service, activityRepo
}

func namedActivities(names ...string) []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(names))
	for _, name := range names {
		activities = append(activities, &entity.Activity{ID: uuid.New(), Name: name})
	}

	return activities
}

func TestActivityService_SearchActivities_Flat(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	filter := &repository.ActivitySearchFilter{Page: 2, Limit: 10}
	activities := namedActivities("Swimming Level 1", "Swimming Level 2")

	activityRepo.EXPECT().SearchActivities(ctx, filter).Return(activities, int64(42), nil)

	output, err := service.SearchActivities(ctx, &usecase.SearchActivitiesInput{Filter: filter})

	require.NoError(t, err)
	assert.Equal(t, activities, output.Activities)
	assert.Nil(t, output.Groups)
	assert.Equal(t, 2, output.Pagination.Page)
	assert.Equal(t, 10, output.Pagination.Limit)
	assert.Equal(t, int64(42), output.Pagination.Total)
	assert.Equal(t, 5, output.Pagination.TotalPages)
}

func TestActivityService_SearchActivities_FlatError(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	filter := &repository.ActivitySearchFilter{Page: 1, Limit: 10}

	activityRepo.EXPECT().
		SearchActivities(ctx, filter).
		Return(nil, int64(0), errors.New("connection reset"))

	output, err := service.SearchActivities(ctx, &usecase.SearchActivitiesInput{Filter: filter})

	require.Error(t, err)
	assert.Nil(t, output)
}

func TestActivityService_SearchActivities_Grouped(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	filter := &repository.ActivitySearchFilter{Page: 1, Limit: 10}

	// Three sessions of "Swimming", one of "Pottery", interleaved.
	activities := namedActivities("Swimming", "Pottery", "Swimming", "Swimming")

	activityRepo.EXPECT().SearchAllActivities(ctx, filter).Return(activities, nil)

	output, err := service.SearchActivities(ctx, &usecase.SearchActivitiesInput{
		Filter:      filter,
		GroupByName: true,
	})

	require.NoError(t, err)
	assert.Nil(t, output.Activities)
	require.Len(t, output.Groups, 2)
	assert.Equal(t, "Swimming", output.Groups[0].Name)
	assert.Len(t, output.Groups[0].Sessions, 3)
	assert.Equal(t, "Pottery", output.Groups[1].Name)
	assert.Len(t, output.Groups[1].Sessions, 1)
	// Total counts distinct names, not session rows.
	assert.Equal(t, int64(2), output.Pagination.Total)
	assert.Equal(t, 1, output.Pagination.TotalPages)
}

func TestActivityService_SearchActivities_GroupedPagination(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	filter := &repository.ActivitySearchFilter{Page: 2, Limit: 2}

	activities := namedActivities("A", "B", "C", "D", "E")

	activityRepo.EXPECT().SearchAllActivities(ctx, filter).Return(activities, nil)

	output, err := service.SearchActivities(ctx, &usecase.SearchActivitiesInput{
		Filter:      filter,
		GroupByName: true,
	})

	require.NoError(t, err)
	require.Len(t, output.Groups, 2)
	assert.Equal(t, "C", output.Groups[0].Name)
	assert.Equal(t, "D", output.Groups[1].Name)
	assert.Equal(t, int64(5), output.Pagination.Total)
	assert.Equal(t, 3, output.Pagination.TotalPages)
}

func TestActivityService_SearchActivities_GroupedPageBeyondEnd(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	filter := &repository.ActivitySearchFilter{Page: 9, Limit: 10}

	activityRepo.EXPECT().
		SearchAllActivities(ctx, filter).
		Return(namedActivities("A", "B"), nil)

	output, err := service.SearchActivities(ctx, &usecase.SearchActivitiesInput{
		Filter:      filter,
		GroupByName: true,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Groups)
	assert.Equal(t, int64(2), output.Pagination.Total)
}

func TestActivityService_GetActivity_Success(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	activityID := uuid.New()
	activity := &entity.Activity{ID: activityID, Name: "Karate for Kids"}

	activityRepo.EXPECT().FindActivityByID(ctx, activityID).Return(activity, nil)

	got, err := service.GetActivity(ctx, activityID)

	require.NoError(t, err)
	assert.Equal(t, activity, got)
}

func TestActivityService_GetActivity_NotFound(t *testing.T) {
	service, activityRepo := createTestActivityService(t)

	ctx := context.Background()
	activityID := uuid.New()

	activityRepo.EXPECT().
		FindActivityByID(ctx, activityID).
		Return(nil, repository.ErrActivityNotFound)

	got, err := service.GetActivity(ctx, activityID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrActivityNotFound))
}
