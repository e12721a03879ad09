package handler

import (
	"context"
	"net/http"
	"testing"

	"kidsactivity/internal/domain/entity"
	mockUC "kidsactivity/internal/mocks/usecase"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSharingHandler_CreateInvitation_Success(t *testing.T) {
	uc := mockUC.NewMockSharingUsecase(t)
	h := NewSharingHandler(uc, newTestLogger())

	userID := uuid.New()
	childID := uuid.New()

	uc.EXPECT().
		CreateInvitation(mock.Anything, mock.AnythingOfType("*usecase.CreateInvitationInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.CreateInvitationInput) (*entity.Invitation, error) {
			assert.Equal(t, userID, input.InviterID)
			assert.Equal(t, "grandma@example.com", input.InviteeEmail)
			require.Len(t, input.Children, 1)
			assert.Equal(t, childID, input.Children[0].ChildID)
			assert.True(t, input.Children[0].CanViewRegistrations)

			return &entity.Invitation{ID: uuid.New(), InviterID: userID}, nil
		})

	c, rec := postJSONContext(t, "/api/v1/invitations",
		`{"invitee_email":"grandma@example.com","children":[{"child_id":"`+childID.String()+`","can_view_registrations":true}]}`)
	c.Set("userID", userID)

	require.NoError(t, h.CreateInvitation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSharingHandler_CreateInvitation_RejectsInvalidEmail(t *testing.T) {
	uc := mockUC.NewMockSharingUsecase(t)
	h := NewSharingHandler(uc, newTestLogger())

	childID := uuid.New()

	c, rec := postJSONContext(t, "/api/v1/invitations",
		`{"invitee_email":"grandma-at-example","children":[{"child_id":"`+childID.String()+`"}]}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.CreateInvitation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSharingHandler_CreateInvitation_RejectsEmptyChildren(t *testing.T) {
	uc := mockUC.NewMockSharingUsecase(t)
	h := NewSharingHandler(uc, newTestLogger())

	c, rec := postJSONContext(t, "/api/v1/invitations",
		`{"invitee_email":"grandma@example.com","children":[]}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.CreateInvitation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSharingHandler_AcceptInvitation_RejectsMissingToken(t *testing.T) {
	uc := mockUC.NewMockSharingUsecase(t)
	h := NewSharingHandler(uc, newTestLogger())

	c, rec := postJSONContext(t, "/api/v1/invitations/accept", `{}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.AcceptInvitation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
