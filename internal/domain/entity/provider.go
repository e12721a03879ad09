package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the organization whose site publishes activities, typically a
// municipal recreation department.
type Provider struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	Region    string    `json:"region,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
