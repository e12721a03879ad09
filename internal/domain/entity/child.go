package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChildActivityStatus tracks a child's relationship to one activity.
type ChildActivityStatus string

const (
	// ChildActivityInterested marks an activity a parent is considering.
	ChildActivityInterested ChildActivityStatus = "interested"
	// ChildActivityRegistered marks an activity the child is signed up for.
	ChildActivityRegistered ChildActivityStatus = "registered"
	// ChildActivityCompleted marks an activity the child finished.
	ChildActivityCompleted ChildActivityStatus = "completed"
	// ChildActivityCancelled marks a registration that was withdrawn.
	ChildActivityCancelled ChildActivityStatus = "cancelled"
)

// ValidChildActivityStatus reports whether s is one of the known states.
func ValidChildActivityStatus(s ChildActivityStatus) bool {
	switch s {
	case ChildActivityInterested, ChildActivityRegistered, ChildActivityCompleted, ChildActivityCancelled:
		return true
	}

	return false
}

// Child is a kid profile owned by a parent account.
type Child struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Interests   []string   `json:"interests,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ChildActivity links a child to an activity with a tracked status.
type ChildActivity struct {
	ID            uuid.UUID           `json:"id"`
	ChildID       uuid.UUID           `json:"child_id"`
	ActivityID    uuid.UUID           `json:"activity_id"`
	Status        ChildActivityStatus `json:"status"`
	ScheduledDate *time.Time          `json:"scheduled_date,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`

	Activity *Activity `json:"activity,omitempty"`
}
