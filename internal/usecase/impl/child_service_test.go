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

// childServiceFixtures holds all test dependencies for child service tests.
type childServiceFixtures struct {
	service   usecase.ChildUsecase
	txManager *mockRepo.MockTransactionManager
	childRepo *mockRepo.MockChildRepository
}

func createTestChildService(t *testing.T) childServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	childRepo := mockRepo.NewMockChildRepository(t)

	service := NewChildService(ChildServiceParams{
		TxManager: txManager,
		ChildRepo: childRepo,
		Logger:    newDiscardLogger(),
	})

	return childServiceFixtures{
		service:   service,
		txManager: txManager,
		childRepo: childRepo,
	}
}

func TestChildService_CreateChild_Success(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	input := &usecase.CreateChildInput{
		UserID:    uuid.New(),
		Name:      "Maya",
		Interests: []string{"swimming", "art"},
	}

	fx.childRepo.EXPECT().
		CreateChild(ctx, mock.AnythingOfType("*entity.Child")).
		Run(func(ctx context.Context, child *entity.Child) {
			child.ID = uuid.New()
		}).
		Return(nil)

	child, err := fx.service.CreateChild(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.UserID, child.UserID)
	assert.Equal(t, "Maya", child.Name)
	assert.True(t, child.IsActive)
}

func TestChildService_GetChild_OwnedByAnotherUser(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()

	fx.childRepo.EXPECT().
		FindChildByID(ctx, childID).
		Return(&entity.Child{ID: childID, UserID: uuid.New()}, nil)

	child, err := fx.service.GetChild(ctx, userID, childID)

	require.Error(t, err)
	assert.Nil(t, child)
	// A foreign child reports not-found, same as a missing one.
	assert.True(t, errors.Is(err, domainerrors.ErrChildNotFound))
}

func TestChildService_UpdateChild_PartialFields(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()

	stored := &entity.Child{
		ID:        childID,
		UserID:    userID,
		Name:      "Maya",
		Gender:    "female",
		Interests: []string{"swimming"},
	}

	newName := "Maya Rose"
	input := &usecase.UpdateChildInput{
		UserID:  userID,
		ChildID: childID,
		Name:    &newName,
	}

	fx.childRepo.EXPECT().FindChildByID(ctx, childID).Return(stored, nil)
	fx.childRepo.EXPECT().
		UpdateChild(ctx, mock.AnythingOfType("*entity.Child")).
		Return(nil)

	child, err := fx.service.UpdateChild(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Maya Rose", child.Name)
	assert.Equal(t, "female", child.Gender)
	assert.Equal(t, []string{"swimming"}, child.Interests)
}

func TestChildService_DeleteChild_Success(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockChildRepo := mockRepo.NewMockChildRepository(t)

			mockFactory.EXPECT().NewChildRepository().Return(mockChildRepo)

			mockChildRepo.EXPECT().
				FindChildByID(ctx, childID).
				Return(&entity.Child{ID: childID, UserID: userID}, nil)
			mockChildRepo.EXPECT().DeleteChild(ctx, childID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteChild(ctx, userID, childID)

	require.NoError(t, err)
}

func TestChildService_DeleteChild_NotOwned(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockChildRepo := mockRepo.NewMockChildRepository(t)

			mockFactory.EXPECT().NewChildRepository().Return(mockChildRepo)

			mockChildRepo.EXPECT().
				FindChildByID(ctx, childID).
				Return(&entity.Child{ID: childID, UserID: uuid.New()}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteChild(ctx, userID, childID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChildNotFound))
}

func TestChildService_TrackActivity_Success(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()
	activityID := uuid.New()

	input := &usecase.TrackActivityInput{
		UserID:     userID,
		ChildID:    childID,
		ActivityID: activityID,
		Status:     entity.ChildActivityInterested,
		Notes:      "asked about this at dinner",
	}

	fx.childRepo.EXPECT().
		FindChildByID(ctx, childID).
		Return(&entity.Child{ID: childID, UserID: userID}, nil)
	fx.childRepo.EXPECT().
		LinkActivity(ctx, mock.AnythingOfType("*entity.ChildActivity")).
		Run(func(ctx context.Context, link *entity.ChildActivity) {
			link.ID = uuid.New()
		}).
		Return(nil)

	link, err := fx.service.TrackActivity(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, childID, link.ChildID)
	assert.Equal(t, activityID, link.ActivityID)
	assert.Equal(t, entity.ChildActivityInterested, link.Status)
}

func TestChildService_TrackActivity_InvalidStatus(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	input := &usecase.TrackActivityInput{
		UserID:     uuid.New(),
		ChildID:    uuid.New(),
		ActivityID: uuid.New(),
		Status:     entity.ChildActivityStatus("enrolled"),
	}

	link, err := fx.service.TrackActivity(ctx, input)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidActivityStatus))
}

func TestChildService_TrackActivity_Duplicate(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()

	input := &usecase.TrackActivityInput{
		UserID:     userID,
		ChildID:    childID,
		ActivityID: uuid.New(),
		Status:     entity.ChildActivityRegistered,
	}

	fx.childRepo.EXPECT().
		FindChildByID(ctx, childID).
		Return(&entity.Child{ID: childID, UserID: userID}, nil)
	fx.childRepo.EXPECT().
		LinkActivity(ctx, mock.AnythingOfType("*entity.ChildActivity")).
		Return(repository.ErrDuplicateChildActivity)

	link, err := fx.service.TrackActivity(ctx, input)

	require.Error(t, err)
	assert.Nil(t, link)
	assert.True(t, errors.Is(err, domainerrors.ErrChildActivityExists))
}

func TestChildService_UpdateActivityStatus_LinkNotFound(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()
	linkID := uuid.New()

	input := &usecase.UpdateActivityStatusInput{
		UserID:  userID,
		ChildID: childID,
		LinkID:  linkID,
		Status:  entity.ChildActivityCompleted,
	}

	fx.childRepo.EXPECT().
		FindChildByID(ctx, childID).
		Return(&entity.Child{ID: childID, UserID: userID}, nil)
	fx.childRepo.EXPECT().
		UpdateChildActivityStatus(ctx, linkID, entity.ChildActivityCompleted, "").
		Return(repository.ErrChildActivityNotFound)

	err := fx.service.UpdateActivityStatus(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChildActivityNotFound))
}

func TestChildService_ListChildActivities_Success(t *testing.T) {
	fx := createTestChildService(t)

	ctx := context.Background()
	userID := uuid.New()
	childID := uuid.New()
	links := []*entity.ChildActivity{
		{ID: uuid.New(), ChildID: childID, Status: entity.ChildActivityRegistered},
	}

	fx.childRepo.EXPECT().
		FindChildByID(ctx, childID).
		Return(&entity.Child{ID: childID, UserID: userID}, nil)
	fx.childRepo.EXPECT().FindChildActivities(ctx, childID).Return(links, nil)

	got, err := fx.service.ListChildActivities(ctx, userID, childID)

	require.NoError(t, err)
	assert.Equal(t, links, got)
}
