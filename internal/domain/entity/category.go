package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is an age/audience classification, e.g. "0-6 Parent Participation".
// Assignment to activities is inferred by the ingestion pipeline, not
// authoritative, so each link carries confidence metadata.
type Category struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	AgeMin         int       `json:"age_min"`
	AgeMax         int       `json:"age_max"`
	RequiresParent bool      `json:"requires_parent"`
	DisplayOrder   int       `json:"display_order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CategoryAssignment is the many-to-many link between an activity and a
// category, with provenance for the inferred assignment.
type CategoryAssignment struct {
	ActivityID uuid.UUID `json:"activity_id"`
	CategoryID uuid.UUID `json:"category_id"`
	Confidence float64   `json:"confidence"` // 0..1 score from the keyword rules.
	Source     string    `json:"source"`     // "rules", "manual", ...
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
}
