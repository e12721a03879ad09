package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks one activity as saved by a user. A user can favorite an
// activity at most once; the store enforces the uniqueness.
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ActivityID uuid.UUID `json:"activity_id"`
	CreatedAt  time.Time `json:"created_at"`

	Activity *Activity `json:"activity,omitempty"`
}
