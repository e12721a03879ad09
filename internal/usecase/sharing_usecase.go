package usecase

import (
	"context"

	"kidsactivity/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ChildShareInput scopes an invitation to one child with access flags.
type ChildShareInput struct {
	ChildID              uuid.UUID
	CanViewRegistrations bool
	CanViewNotes         bool
}

// CreateInvitationInput defines the data required to invite another parent.
type CreateInvitationInput struct {
	InviterID    uuid.UUID
	InviteeEmail string
	Message      string
	Children     []*ChildShareInput
}

// SharingUsecase defines the interface for activity-sharing operations:
// issuing invitations, answering them, and reading the children shared with
// the caller.
type SharingUsecase interface {
	CreateInvitation(ctx context.Context, input *CreateInvitationInput) (*entity.Invitation, error)
	ListSentInvitations(ctx context.Context, inviterID uuid.UUID) ([]*entity.Invitation, error)
	ListReceivedInvitations(ctx context.Context, inviteeID uuid.UUID) ([]*entity.Invitation, error)
	AcceptInvitation(ctx context.Context, inviteeID uuid.UUID, token string) (*entity.Invitation, error)
	DeclineInvitation(ctx context.Context, inviteeID uuid.UUID, invitationID uuid.UUID) error
	RevokeInvitation(ctx context.Context, inviterID uuid.UUID, invitationID uuid.UUID) error
	InvitationQR(ctx context.Context, inviterID uuid.UUID, invitationID uuid.UUID) ([]byte, error)
	ListSharedChildren(ctx context.Context, inviteeID uuid.UUID) ([]*entity.SharedChild, error)
}
