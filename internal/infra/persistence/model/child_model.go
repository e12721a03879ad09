package model

import (
	"time"

	"github.com/google/uuid"
)

// ChildModel mirrors the 'children' table. UserID references users.id (UUID).
// Interests is a comma-separated list, same encoding as activity days.
type ChildModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	DateOfBirth *time.Time `gorm:"type:date"`
	Gender      string     `gorm:"type:varchar(32)"`
	Interests   string     `gorm:"type:text"`
	IsActive    bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Activities []*ChildActivityModel `gorm:"foreignKey:ChildID"`
}

// TableName explicitly sets the table name for GORM.
func (ChildModel) TableName() string {
	return "children"
}

// ChildActivityModel mirrors the 'child_activities' table, linking a child to
// an activity with a registration status. One link per (child, activity) pair.
type ChildActivityModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ChildID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_child_activity_pair"`
	ActivityID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_child_activity_pair"`
	Status        string    `gorm:"type:varchar(32);not null;default:'interested'"`
	ScheduledDate *time.Time
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Activity *ActivityModel `gorm:"foreignKey:ActivityID"`
}

// TableName explicitly sets the table name for GORM.
func (ChildActivityModel) TableName() string {
	return "child_activities"
}
