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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service          usecase.CatalogUsecase
	activityRepo     *mockRepo.MockActivityRepository
	categoryRepo     *mockRepo.MockCategoryRepository
	activityTypeRepo *mockRepo.MockActivityTypeRepository
	locationRepo     *mockRepo.MockLocationRepository
	providerRepo     *mockRepo.MockProviderRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	activityRepo := mockRepo.NewMockActivityRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	activityTypeRepo := mockRepo.NewMockActivityTypeRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	providerRepo := mockRepo.NewMockProviderRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ActivityRepo:     activityRepo,
		CategoryRepo:     categoryRepo,
		ActivityTypeRepo: activityTypeRepo,
		LocationRepo:     locationRepo,
		ProviderRepo:     providerRepo,
		Logger:           newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:          service,
		activityRepo:     activityRepo,
		categoryRepo:     categoryRepo,
		activityTypeRepo: activityTypeRepo,
		locationRepo:     locationRepo,
		providerRepo:     providerRepo,
	}
}

func TestCatalogService_ListCategories_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	counts := []*repository.CategoryCount{
		{Category: &entity.Category{ID: uuid.New(), Name: "Sports"}, ActivityCount: 12},
	}

	fx.activityRepo.EXPECT().CountActivitiesByCategory(ctx).Return(counts, nil)

	got, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, counts, got)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.categoryRepo.EXPECT().
		FindCategoryByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	got, err := fx.service.GetCategory(ctx, categoryID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCatalogService_GetActivityType_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	activityType := &entity.ActivityType{
		ID:   uuid.New(),
		Code: "team-sports",
		Name: "Team Sports",
	}

	fx.activityTypeRepo.EXPECT().
		FindActivityTypeByCode(ctx, "team-sports").
		Return(activityType, nil)

	got, err := fx.service.GetActivityType(ctx, "team-sports")

	require.NoError(t, err)
	assert.Equal(t, activityType, got)
}

func TestCatalogService_ListCities_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	counts := []*entity.CityCount{
		{City: "North Vancouver", Province: "BC", ActivityCount: 40},
		{City: "Burnaby", Province: "BC", ActivityCount: 12},
	}

	fx.activityRepo.EXPECT().CountActivitiesByCity(ctx).Return(counts, nil)

	got, err := fx.service.ListCities(ctx)

	require.NoError(t, err)
	assert.Equal(t, counts, got)
}

func TestCatalogService_ListLocations_Error(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.activityRepo.EXPECT().
		CountActivitiesByLocation(ctx).
		Return(nil, errors.New("connection reset"))

	got, err := fx.service.ListLocations(ctx)

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestCatalogService_GetProvider_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	providerID := uuid.New()

	fx.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(nil, repository.ErrProviderNotFound)

	got, err := fx.service.GetProvider(ctx, providerID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestCatalogService_GetLocation_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	location := &entity.Location{ID: uuid.New(), Name: "Delbrook Rec Centre", City: "North Vancouver"}

	fx.locationRepo.EXPECT().FindLocationByID(ctx, location.ID).Return(location, nil)

	got, err := fx.service.GetLocation(ctx, location.ID)

	require.NoError(t, err)
	assert.Equal(t, location, got)
}
