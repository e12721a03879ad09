package handler

import (
	"log/slog"
	"net/http"

	"kidsactivity/internal/delivery/http/response"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SharingHandler serves the parent-to-parent sharing endpoints: invitations
// and the children shared with the caller.
type SharingHandler struct {
	uc     usecase.SharingUsecase
	logger *slog.Logger
}

// NewSharingHandler is the constructor for SharingHandler, injected by Fx.
func NewSharingHandler(uc usecase.SharingUsecase, logger *slog.Logger) *SharingHandler {
	return &SharingHandler{
		uc:     uc,
		logger: logger,
	}
}

// childShareRequest scopes an invitation to one child with access flags
type childShareRequest struct {
	ChildID              uuid.UUID `json:"child_id" validate:"required"`
	CanViewRegistrations bool      `json:"can_view_registrations"`
	CanViewNotes         bool      `json:"can_view_notes"`
}

// createInvitationRequest represents the request body for inviting another parent
type createInvitationRequest struct {
	InviteeEmail string               `json:"invitee_email" validate:"required,email"`
	Message      string               `json:"message"`
	Children     []*childShareRequest `json:"children" validate:"required,min=1,dive,required"`
}

// CreateInvitation handles issuing a sharing invitation to another parent.
func (h *SharingHandler) CreateInvitation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	children := make([]*usecase.ChildShareInput, 0, len(req.Children))
	for _, child := range req.Children {
		children = append(children, &usecase.ChildShareInput{
			ChildID:              child.ChildID,
			CanViewRegistrations: child.CanViewRegistrations,
			CanViewNotes:         child.CanViewNotes,
		})
	}

	invitation, err := h.uc.CreateInvitation(c.Request().Context(), &usecase.CreateInvitationInput{
		InviterID:    userID,
		InviteeEmail: req.InviteeEmail,
		Message:      req.Message,
		Children:     children,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, invitation, "Invitation created successfully")
}

// ListInvitations returns both directions of the caller's invitations.
func (h *SharingHandler) ListInvitations(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()

	sent, err := h.uc.ListSentInvitations(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	received, err := h.uc.ListReceivedInvitations(ctx, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	data := echo.Map{
		"sent":     sent,
		"received": received,
	}

	return response.Success(c, http.StatusOK, data, "Invitations retrieved successfully")
}

// acceptInvitationRequest represents the request body for accepting an invitation
type acceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// AcceptInvitation handles accepting an invitation by its token.
func (h *SharingHandler) AcceptInvitation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req acceptInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invitation, err := h.uc.AcceptInvitation(c.Request().Context(), userID, req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invitation, "Invitation accepted successfully")
}

// DeclineInvitation handles declining a received invitation.
func (h *SharingHandler) DeclineInvitation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	if err := h.uc.DeclineInvitation(c.Request().Context(), userID, invitationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Invitation declined successfully")
}

// RevokeInvitation handles withdrawing a sent invitation.
func (h *SharingHandler) RevokeInvitation(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	if err := h.uc.RevokeInvitation(c.Request().Context(), userID, invitationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Invitation revoked successfully")
}

// InvitationQR returns a PNG QR code encoding the invitation's accept link.
func (h *SharingHandler) InvitationQR(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	invitationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invitation ID")
	}

	png, err := h.uc.InvitationQR(c.Request().Context(), userID, invitationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListSharedChildren returns the children other parents have shared with the
// caller, honoring the per-child permission flags.
func (h *SharingHandler) ListSharedChildren(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	children, err := h.uc.ListSharedChildren(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, children, "Shared children retrieved successfully")
}
