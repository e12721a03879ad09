package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical venue that hosts activities. The scraper cannot be
// trusted to keep name+address unique, so near-duplicate rows exist until
// reconciled by maintenance scripts.
type Location struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	Province   string    `json:"province,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	Facility   string    `json:"facility,omitempty"` // Facility type, e.g. "Pool", "Community Centre".
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CityCount is the number of searchable activities hosted in one city.
type CityCount struct {
	City          string `json:"city"`
	Province      string `json:"province,omitempty"`
	ActivityCount int64  `json:"activity_count"`
}
