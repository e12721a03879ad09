package repository

import (
	"context"
	"time"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for invitation persistence.
var (
	// ErrInvitationNotFound is returned when an invitation is not found.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrDuplicateInvitation is returned when a pending invitation already
	// exists for the same inviter and invitee email.
	ErrDuplicateInvitation = errors.New("invitation already exists")
	// ErrInvitationStatusConflict is returned when a status transition finds
	// the row no longer in its expected state, i.e. a concurrent transition
	// won.
	ErrInvitationStatusConflict = errors.New("invitation status changed concurrently")
)

// InvitationRepository defines the interface for sharing-invitation
// database operations.
type InvitationRepository interface {
	// CreateInvitation persists a new invitation with its per-child rules.
	CreateInvitation(ctx context.Context, invitation *entity.Invitation) error

	// FindInvitationByID retrieves an invitation with its child rules.
	FindInvitationByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)

	// FindInvitationByToken retrieves an invitation by its accept token.
	FindInvitationByToken(ctx context.Context, token string) (*entity.Invitation, error)

	// FindInvitationsByInviter retrieves invitations sent by a user, newest first.
	FindInvitationsByInviter(ctx context.Context, inviterID uuid.UUID) ([]*entity.Invitation, error)

	// FindInvitationsForInvitee retrieves invitations addressed to a user,
	// matched by bound invitee ID or by email, newest first.
	FindInvitationsForInvitee(ctx context.Context, inviteeID uuid.UUID, email string) ([]*entity.Invitation, error)

	// FindAcceptedInvitationsForInvitee retrieves accepted, unexpired
	// invitations granting the invitee access at the given instant.
	FindAcceptedInvitationsForInvitee(ctx context.Context, inviteeID uuid.UUID, now time.Time) ([]*entity.Invitation, error)

	// UpdateInvitationStatus transitions an invitation from the given status;
	// acceptedAt and inviteeID are recorded when the transition is an
	// acceptance. The update is guarded on the expected current status and
	// returns ErrInvitationStatusConflict when a concurrent transition
	// already moved the row.
	UpdateInvitationStatus(ctx context.Context, id uuid.UUID, from, to entity.InvitationStatus, inviteeID *uuid.UUID, acceptedAt *time.Time) error
}
