package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType is one entry in the curated topical taxonomy, distinct from
// the inferred Category classification. Example: "Swimming & Aquatics".
type ActivityType struct {
	ID           uuid.UUID          `json:"id"`
	Code         string             `json:"code"` // Stable slug used in filter params, e.g. "swimming-aquatics".
	Name         string             `json:"name"`
	DisplayOrder int                `json:"display_order"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Subtypes     []*ActivitySubtype `json:"subtypes,omitempty"`
}

// ActivitySubtype is a second-level taxonomy entry under an ActivityType.
// Example: "Learn to Swim" under "Swimming & Aquatics".
type ActivitySubtype struct {
	ID             uuid.UUID `json:"id"`
	ActivityTypeID uuid.UUID `json:"activity_type_id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	DisplayOrder   int       `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
