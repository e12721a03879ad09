package impl

import (
	"context"
	"testing"
	"time"

	"kidsactivity/config"
	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	mockRepo "kidsactivity/internal/mocks/repository"
	mockSvc "kidsactivity/internal/mocks/service"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sharingServiceFixtures holds all test dependencies for sharing service tests.
type sharingServiceFixtures struct {
	service        usecase.SharingUsecase
	txManager      *mockRepo.MockTransactionManager
	invitationRepo *mockRepo.MockInvitationRepository
	childRepo      *mockRepo.MockChildRepository
	userRepo       *mockRepo.MockUserRepository
	qrService      *mockSvc.MockQRCodeService
	mailer         *mockSvc.MockMailer
}

func createTestSharingService(t *testing.T) sharingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	childRepo := mockRepo.NewMockChildRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	mailer := mockSvc.NewMockMailer(t)

	cfg := &config.Config{
		Sharing: &config.SharingConfig{
			InvitationTTL:            7 * 24 * time.Hour,
			MaxChildrenPerInvitation: 5,
		},
	}

	service := NewSharingService(SharingServiceParams{
		TxManager:      txManager,
		InvitationRepo: invitationRepo,
		ChildRepo:      childRepo,
		UserRepo:       userRepo,
		QRService:      qrService,
		Mailer:         mailer,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})

	return sharingServiceFixtures{
		service:        service,
		txManager:      txManager,
		invitationRepo: invitationRepo,
		childRepo:      childRepo,
		userRepo:       userRepo,
		qrService:      qrService,
		mailer:         mailer,
	}
}

func TestSharingService_CreateInvitation_Success(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	childID := uuid.New()

	input := &usecase.CreateInvitationInput{
		InviterID:    inviterID,
		InviteeEmail: "Grandma@Example.com",
		Message:      "come see what the kids are up to",
		Children: []*usecase.ChildShareInput{
			{ChildID: childID, CanViewRegistrations: true},
		},
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, inviterID).
		Return(&entity.User{ID: inviterID, Email: "parent@example.com", Name: "Test Parent"}, nil)
	fx.childRepo.EXPECT().
		FindChildrenByIDs(ctx, []uuid.UUID{childID}).
		Return([]*entity.Child{{ID: childID, UserID: inviterID}}, nil)
	fx.invitationRepo.EXPECT().
		FindInvitationsByInviter(ctx, inviterID).
		Return([]*entity.Invitation{}, nil)
	fx.invitationRepo.EXPECT().
		CreateInvitation(ctx, mock.AnythingOfType("*entity.Invitation")).
		Run(func(ctx context.Context, invitation *entity.Invitation) {
			invitation.ID = uuid.New()
		}).
		Return(nil)
	fx.mailer.EXPECT().
		SendInvitation(ctx, mock.AnythingOfType("*service.InvitationMail")).
		Return(nil)

	invitation, err := fx.service.CreateInvitation(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "grandma@example.com", invitation.InviteeEmail)
	assert.Equal(t, entity.InvitationPending, invitation.Status)
	assert.Len(t, invitation.Token, 64)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), invitation.ExpiresAt, time.Minute)
	require.Len(t, invitation.Children, 1)
	assert.Equal(t, childID, invitation.Children[0].ChildID)
	assert.True(t, invitation.Children[0].CanViewRegistrations)
	assert.False(t, invitation.Children[0].CanViewNotes)
}

func TestSharingService_CreateInvitation_MailFailureIsNotFatal(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	childID := uuid.New()

	input := &usecase.CreateInvitationInput{
		InviterID:    inviterID,
		InviteeEmail: "friend@example.com",
		Children:     []*usecase.ChildShareInput{{ChildID: childID}},
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, inviterID).
		Return(&entity.User{ID: inviterID, Email: "parent@example.com"}, nil)
	fx.childRepo.EXPECT().
		FindChildrenByIDs(ctx, []uuid.UUID{childID}).
		Return([]*entity.Child{{ID: childID, UserID: inviterID}}, nil)
	fx.invitationRepo.EXPECT().
		FindInvitationsByInviter(ctx, inviterID).
		Return(nil, nil)
	fx.invitationRepo.EXPECT().
		CreateInvitation(ctx, mock.AnythingOfType("*entity.Invitation")).
		Return(nil)
	fx.mailer.EXPECT().
		SendInvitation(ctx, mock.AnythingOfType("*service.InvitationMail")).
		Return(errors.New("smtp unreachable"))

	invitation, err := fx.service.CreateInvitation(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, invitation)
}

func TestSharingService_CreateInvitation_SelfInvite(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()

	input := &usecase.CreateInvitationInput{
		InviterID:    inviterID,
		InviteeEmail: "Parent@Example.com",
		Children:     []*usecase.ChildShareInput{{ChildID: uuid.New()}},
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, inviterID).
		Return(&entity.User{ID: inviterID, Email: "parent@example.com"}, nil)

	invitation, err := fx.service.CreateInvitation(ctx, input)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfInvitation))
}

func TestSharingService_CreateInvitation_NoChildren(t *testing.T) {
	fx := createTestSharingService(t)

	invitation, err := fx.service.CreateInvitation(context.Background(), &usecase.CreateInvitationInput{
		InviterID:    uuid.New(),
		InviteeEmail: "friend@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSharingService_CreateInvitation_ForeignChild(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	childID := uuid.New()

	input := &usecase.CreateInvitationInput{
		InviterID:    inviterID,
		InviteeEmail: "friend@example.com",
		Children:     []*usecase.ChildShareInput{{ChildID: childID}},
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, inviterID).
		Return(&entity.User{ID: inviterID, Email: "parent@example.com"}, nil)
	fx.childRepo.EXPECT().
		FindChildrenByIDs(ctx, []uuid.UUID{childID}).
		Return([]*entity.Child{{ID: childID, UserID: uuid.New()}}, nil)

	invitation, err := fx.service.CreateInvitation(ctx, input)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrChildNotFound))
}

func TestSharingService_CreateInvitation_DuplicatePending(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	childID := uuid.New()

	input := &usecase.CreateInvitationInput{
		InviterID:    inviterID,
		InviteeEmail: "friend@example.com",
		Children:     []*usecase.ChildShareInput{{ChildID: childID}},
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, inviterID).
		Return(&entity.User{ID: inviterID, Email: "parent@example.com"}, nil)
	fx.childRepo.EXPECT().
		FindChildrenByIDs(ctx, []uuid.UUID{childID}).
		Return([]*entity.Child{{ID: childID, UserID: inviterID}}, nil)
	fx.invitationRepo.EXPECT().
		FindInvitationsByInviter(ctx, inviterID).
		Return([]*entity.Invitation{
			{
				InviteeEmail: "friend@example.com",
				Status:       entity.InvitationPending,
				ExpiresAt:    time.Now().Add(time.Hour),
			},
		}, nil)

	invitation, err := fx.service.CreateInvitation(ctx, input)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationExists))
}

func TestSharingService_AcceptInvitation_Success(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	invitationID := uuid.New()
	token := "accept-token"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInvitationRepository().Return(mockInvitationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInvitationRepo.EXPECT().
				FindInvitationByToken(ctx, token).
				Return(&entity.Invitation{
					ID:           invitationID,
					InviteeEmail: "invitee@example.com",
					Token:        token,
					Status:       entity.InvitationPending,
					ExpiresAt:    time.Now().Add(time.Hour),
				}, nil)
			mockUserRepo.EXPECT().
				FindUserByID(ctx, inviteeID).
				Return(&entity.User{ID: inviteeID, Email: "Invitee@Example.com"}, nil)
			mockInvitationRepo.EXPECT().
				UpdateInvitationStatus(ctx, invitationID, entity.InvitationPending, entity.InvitationAccepted, &inviteeID, mock.AnythingOfType("*time.Time")).
				Return(nil)

			return fn(mockFactory)
		})

	invitation, err := fx.service.AcceptInvitation(ctx, inviteeID, token)

	require.NoError(t, err)
	assert.Equal(t, entity.InvitationAccepted, invitation.Status)
	require.NotNil(t, invitation.InviteeID)
	assert.Equal(t, inviteeID, *invitation.InviteeID)
	assert.NotNil(t, invitation.AcceptedAt)
}

func TestSharingService_AcceptInvitation_LostRaceIsRejected(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	invitationID := uuid.New()
	token := "accept-token"

	// The invitation still reads pending, but the guarded transition reports
	// that a concurrent revoke or accept committed first.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInvitationRepository().Return(mockInvitationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInvitationRepo.EXPECT().
				FindInvitationByToken(ctx, token).
				Return(&entity.Invitation{
					ID:           invitationID,
					InviteeEmail: "invitee@example.com",
					Token:        token,
					Status:       entity.InvitationPending,
					ExpiresAt:    time.Now().Add(time.Hour),
				}, nil)
			mockUserRepo.EXPECT().
				FindUserByID(ctx, inviteeID).
				Return(&entity.User{ID: inviteeID, Email: "invitee@example.com"}, nil)
			mockInvitationRepo.EXPECT().
				UpdateInvitationStatus(ctx, invitationID, entity.InvitationPending, entity.InvitationAccepted, &inviteeID, mock.AnythingOfType("*time.Time")).
				Return(repository.ErrInvitationStatusConflict)

			return fn(mockFactory)
		})

	invitation, err := fx.service.AcceptInvitation(ctx, inviteeID, token)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotPending))
}

func TestSharingService_AcceptInvitation_Expired(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	invitationID := uuid.New()
	token := "expired-token"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInvitationRepository().Return(mockInvitationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInvitationRepo.EXPECT().
				FindInvitationByToken(ctx, token).
				Return(&entity.Invitation{
					ID:        invitationID,
					Token:     token,
					Status:    entity.InvitationPending,
					ExpiresAt: time.Now().Add(-time.Hour),
				}, nil)
			// The expired invitation is marked terminal before the error returns.
			mockInvitationRepo.EXPECT().
				UpdateInvitationStatus(ctx, invitationID, entity.InvitationPending, entity.InvitationExpired, (*uuid.UUID)(nil), (*time.Time)(nil)).
				Return(nil)

			return fn(mockFactory)
		})

	invitation, err := fx.service.AcceptInvitation(ctx, inviteeID, token)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationExpired))
}

func TestSharingService_AcceptInvitation_WrongInvitee(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	token := "accept-token"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInvitationRepository().Return(mockInvitationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInvitationRepo.EXPECT().
				FindInvitationByToken(ctx, token).
				Return(&entity.Invitation{
					ID:           uuid.New(),
					InviteeEmail: "invitee@example.com",
					Token:        token,
					Status:       entity.InvitationPending,
					ExpiresAt:    time.Now().Add(time.Hour),
				}, nil)
			mockUserRepo.EXPECT().
				FindUserByID(ctx, inviteeID).
				Return(&entity.User{ID: inviteeID, Email: "somebody.else@example.com"}, nil)

			return fn(mockFactory)
		})

	invitation, err := fx.service.AcceptInvitation(ctx, inviteeID, token)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationWrongInvitee))
}

func TestSharingService_AcceptInvitation_AlreadyAccepted(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	token := "accept-token"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewInvitationRepository().Return(mockInvitationRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockInvitationRepo.EXPECT().
				FindInvitationByToken(ctx, token).
				Return(&entity.Invitation{
					ID:        uuid.New(),
					Token:     token,
					Status:    entity.InvitationAccepted,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)

			return fn(mockFactory)
		})

	invitation, err := fx.service.AcceptInvitation(ctx, inviteeID, token)

	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotPending))
}

func TestSharingService_RevokeInvitation_AcceptedIsAllowed(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.Invitation{
			ID:        invitationID,
			InviterID: inviterID,
			Status:    entity.InvitationAccepted,
		}, nil)
	fx.invitationRepo.EXPECT().
		UpdateInvitationStatus(ctx, invitationID, entity.InvitationAccepted, entity.InvitationRevoked, (*uuid.UUID)(nil), (*time.Time)(nil)).
		Return(nil)

	err := fx.service.RevokeInvitation(ctx, inviterID, invitationID)

	require.NoError(t, err)
}

func TestSharingService_RevokeInvitation_NotOwner(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.Invitation{
			ID:        invitationID,
			InviterID: uuid.New(),
			Status:    entity.InvitationPending,
		}, nil)

	err := fx.service.RevokeInvitation(ctx, uuid.New(), invitationID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotFound))
}

func TestSharingService_DeclineInvitation_NotPending(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.Invitation{
			ID:           invitationID,
			InviteeEmail: "invitee@example.com",
			Status:       entity.InvitationRevoked,
		}, nil)
	fx.userRepo.EXPECT().
		FindUserByID(ctx, inviteeID).
		Return(&entity.User{ID: inviteeID, Email: "invitee@example.com"}, nil)

	err := fx.service.DeclineInvitation(ctx, inviteeID, invitationID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotPending))
}

func TestSharingService_InvitationQR_PendingOnly(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.Invitation{
			ID:        invitationID,
			InviterID: inviterID,
			Status:    entity.InvitationAccepted,
		}, nil)

	png, err := fx.service.InvitationQR(ctx, inviterID, invitationID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotPending))
}

func TestSharingService_InvitationQR_Success(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviterID := uuid.New()
	invitationID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindInvitationByID(ctx, invitationID).
		Return(&entity.Invitation{
			ID:        invitationID,
			InviterID: inviterID,
			Token:     "accept-token",
			Status:    entity.InvitationPending,
		}, nil)
	fx.qrService.EXPECT().
		GenerateInvitationQR("accept-token").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.InvitationQR(ctx, inviterID, invitationID)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestSharingService_ListSharedChildren_MergesGrantsAndStripsNotes(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()
	ownerID := uuid.New()
	childID := uuid.New()

	// Two accepted invitations grant access to the same child with different
	// flags; the merge is permissive.
	invitations := []*entity.Invitation{
		{
			ID:        uuid.New(),
			InviterID: ownerID,
			Status:    entity.InvitationAccepted,
			Children: []*entity.SharedChildRule{
				{ChildID: childID, CanViewRegistrations: true, CanViewNotes: false},
			},
		},
		{
			ID:        uuid.New(),
			InviterID: ownerID,
			Status:    entity.InvitationAccepted,
			Children: []*entity.SharedChildRule{
				{ChildID: childID, CanViewRegistrations: false, CanViewNotes: false},
			},
		},
	}

	fx.invitationRepo.EXPECT().
		FindAcceptedInvitationsForInvitee(ctx, inviteeID, mock.AnythingOfType("time.Time")).
		Return(invitations, nil)
	fx.childRepo.EXPECT().
		FindChildrenByIDs(ctx, []uuid.UUID{childID}).
		Return([]*entity.Child{{ID: childID, UserID: ownerID, Name: "Maya"}}, nil)
	fx.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Name: "Owner Parent"}, nil)
	fx.childRepo.EXPECT().
		FindChildActivities(ctx, childID).
		Return([]*entity.ChildActivity{
			{ID: uuid.New(), ChildID: childID, Notes: "private note"},
		}, nil)

	shared, err := fx.service.ListSharedChildren(ctx, inviteeID)

	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "Maya", shared[0].Child.Name)
	assert.Equal(t, "Owner Parent", shared[0].OwnerName)
	assert.True(t, shared[0].CanViewRegistrations)
	assert.False(t, shared[0].CanViewNotes)
	require.Len(t, shared[0].Activities, 1)
	// Notes are stripped when the grant does not cover them.
	assert.Empty(t, shared[0].Activities[0].Notes)
}

func TestSharingService_ListSharedChildren_Empty(t *testing.T) {
	fx := createTestSharingService(t)

	ctx := context.Background()
	inviteeID := uuid.New()

	fx.invitationRepo.EXPECT().
		FindAcceptedInvitationsForInvitee(ctx, inviteeID, mock.AnythingOfType("time.Time")).
		Return([]*entity.Invitation{}, nil)

	shared, err := fx.service.ListSharedChildren(ctx, inviteeID)

	require.NoError(t, err)
	assert.Empty(t, shared)
}
