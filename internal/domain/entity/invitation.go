package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus is the lifecycle state of a sharing invitation.
type InvitationStatus string

const (
	// InvitationPending has been issued but not yet answered.
	InvitationPending InvitationStatus = "pending"
	// InvitationAccepted grants the invitee access to the shared children.
	InvitationAccepted InvitationStatus = "accepted"
	// InvitationDeclined was rejected by the invitee.
	InvitationDeclined InvitationStatus = "declined"
	// InvitationRevoked was withdrawn by the inviter.
	InvitationRevoked InvitationStatus = "revoked"
	// InvitationExpired passed its ExpiresAt without being accepted.
	InvitationExpired InvitationStatus = "expired"
)

// Invitation lets one parent account share a subset of their children's
// activity data with another account, identified by email. Acceptance binds
// the invitee's user ID; access is scoped per child by permission flags and
// bounded by ExpiresAt.
type Invitation struct {
	ID           uuid.UUID          `json:"id"`
	InviterID    uuid.UUID          `json:"inviter_id"`
	InviteeEmail string             `json:"invitee_email"`
	InviteeID    *uuid.UUID         `json:"invitee_id,omitempty"` // Set once the invitee accepts.
	Token        string             `json:"-"`                    // Opaque accept token, unique, never serialized.
	Message      string             `json:"message,omitempty"`
	Status       InvitationStatus   `json:"status"`
	ExpiresAt    time.Time          `json:"expires_at"`
	AcceptedAt   *time.Time         `json:"accepted_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Children     []*SharedChildRule `json:"children,omitempty"`
}

// IsExpired reports whether the invitation has passed its deadline at now.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// SharedChildRule scopes an invitation to one child with per-field access.
type SharedChildRule struct {
	InvitationID         uuid.UUID `json:"invitation_id"`
	ChildID              uuid.UUID `json:"child_id"`
	CanViewRegistrations bool      `json:"can_view_registrations"`
	CanViewNotes         bool      `json:"can_view_notes"`
}

// SharedChild is a child visible to the caller through an accepted
// invitation, with the granted access flags applied.
type SharedChild struct {
	Child                *Child           `json:"child"`
	OwnerName            string           `json:"owner_name"`
	CanViewRegistrations bool             `json:"can_view_registrations"`
	CanViewNotes         bool             `json:"can_view_notes"`
	Activities           []*ChildActivity `json:"activities,omitempty"`
}
