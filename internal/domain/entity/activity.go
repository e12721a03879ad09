// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the registration state reported by the source system.
type RegistrationStatus string

const (
	// RegistrationOpen means spots can still be booked.
	RegistrationOpen RegistrationStatus = "Open"
	// RegistrationClosed means the source no longer accepts bookings.
	RegistrationClosed RegistrationStatus = "Closed"
	// RegistrationWaitlist means only the waiting list is open.
	RegistrationWaitlist RegistrationStatus = "Waitlist"
)

// Activity is a single scraped program session: one course offering with a
// schedule, cost and age eligibility, published by a Provider at a Location.
// Rows are created and refreshed by the ingestion pipeline; IsActive is flipped
// off when a row stops being observed at the source, never hard-deleted.
type Activity struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	Category           string             `json:"category,omitempty"`    // Free-text category from the source site.
	Subcategory        string             `json:"subcategory,omitempty"` // Free-text subcategory from the source site.
	ActivityTypeID     *uuid.UUID         `json:"activity_type_id,omitempty"`
	ActivitySubtypeID  *uuid.UUID         `json:"activity_subtype_id,omitempty"`
	AgeMin             int                `json:"age_min"`
	AgeMax             int                `json:"age_max"`
	Cost               float64            `json:"cost"`
	DaysOfWeek         []string           `json:"days_of_week,omitempty"`
	TimeStart          string             `json:"time_start,omitempty"` // "HH:MM" as scraped; not all sources provide it.
	TimeEnd            string             `json:"time_end,omitempty"`
	DateStart          *time.Time         `json:"date_start,omitempty"`
	DateEnd            *time.Time         `json:"date_end,omitempty"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	SpotsAvailable     int                `json:"spots_available"`
	TotalSpots         int                `json:"total_spots"`
	IsActive           bool               `json:"is_active"`
	ExternalID         string             `json:"external_id,omitempty"` // Source-system listing identifier.
	CourseID           string             `json:"course_id,omitempty"`   // Source-system course/barcode identifier.
	LocationID         *uuid.UUID         `json:"location_id,omitempty"`
	ProviderID         uuid.UUID          `json:"provider_id"`
	LastSeenAt         time.Time          `json:"last_seen_at"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	// Eagerly loaded relations for response shaping. Nil when not requested.
	Location   *Location   `json:"location,omitempty"`
	Provider   *Provider   `json:"provider,omitempty"`
	Categories []*Category `json:"categories,omitempty"`
}

// IsFull reports whether no spots remain.
func (a *Activity) IsFull() bool {
	return a.SpotsAvailable == 0
}

// IsClosed reports whether the activity can no longer be booked directly.
func (a *Activity) IsClosed() bool {
	return a.RegistrationStatus == RegistrationClosed || a.RegistrationStatus == RegistrationWaitlist
}

// ActivityGroup collapses multiple session rows sharing a name into one
// logical activity with a sessions sub-list.
type ActivityGroup struct {
	Name     string      `json:"name"`
	Sessions []*Activity `json:"sessions"`
}
