package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationModel mirrors the 'invitations' table. Token carries the opaque
// accept secret and must never leave the persistence and sharing layers.
type InvitationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InviterID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	InviteeEmail string     `gorm:"type:varchar(255);not null;index"`
	InviteeID    *uuid.UUID `gorm:"type:uuid;index"`
	Token        string     `gorm:"type:varchar(128);not null;uniqueIndex"`
	Status       string     `gorm:"type:varchar(32);not null;default:'pending'"`
	Message      string     `gorm:"type:text"`
	ExpiresAt    time.Time  `gorm:"not null"`
	AcceptedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Children []*InvitationChildModel `gorm:"foreignKey:InvitationID"`
}

// TableName explicitly sets the table name for GORM.
func (InvitationModel) TableName() string {
	return "invitations"
}

// InvitationChildModel mirrors the 'invitation_children' table: the per-child
// visibility flags an invitation grants once accepted.
type InvitationChildModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InvitationID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitation_child_pair"`
	ChildID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitation_child_pair"`
	CanViewRegistrations bool      `gorm:"not null;default:true"`
	CanViewNotes         bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time

	Child *ChildModel `gorm:"foreignKey:ChildID"`
}

// TableName explicitly sets the table name for GORM.
func (InvitationChildModel) TableName() string {
	return "invitation_children"
}
