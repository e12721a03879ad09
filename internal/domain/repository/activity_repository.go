// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")
)

// ActivitySearchFilter is the normalized predicate built from the loosely
// typed query inputs. Nil pointer fields and empty slices mean unconstrained.
// Building the filter performs no I/O; translation to SQL belongs to the
// repository implementation.
type ActivitySearchFilter struct {
	// AgeMin/AgeMax select activities whose own [ageMin, ageMax] range
	// overlaps the requested range.
	AgeMin *int
	AgeMax *int

	// Inclusive bounds on the activity cost.
	CostMin *float64
	CostMax *float64

	Categories    []string    // Category names.
	ActivityTypes []string    // ActivityType codes.
	Subcategory   *string     // Free-text subcategory, exact match.
	LocationIDs   []uuid.UUID
	ProviderIDs   []uuid.UUID

	// Search matches case-insensitively as a substring of name or description.
	Search *string

	// DaysOfWeek keeps activities scheduled on at least one requested day.
	DaysOfWeek []string

	ExcludeClosed bool // Drop registrationStatus Closed/Waitlist.
	ExcludeFull   bool // Drop spotsAvailable == 0.

	// OnlyActive opts in to strict is_active filtering. Off by default:
	// ingested rows frequently carry stale active flags, so hiding them
	// silently loses data (see DESIGN.md).
	OnlyActive bool

	CreatedAfter    *time.Time
	UpdatedAfter    *time.Time
	StartDateAfter  *time.Time
	StartDateBefore *time.Time

	// Page is 1-indexed; Limit is already clamped by the caller.
	Page  int
	Limit int
}

// Offset returns the row offset implied by Page and Limit.
func (f *ActivitySearchFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}

	return (page - 1) * f.Limit
}

// CategoryCount pairs a category with its matching-activity count.
type CategoryCount struct {
	Category      *entity.Category
	ActivityCount int64
}

// ActivityTypeCount pairs a taxonomy type with its matching-activity count.
type ActivityTypeCount struct {
	ActivityType  *entity.ActivityType
	ActivityCount int64
}

// LocationCount pairs a location with its hosted-activity count.
type LocationCount struct {
	Location      *entity.Location
	ActivityCount int64
}

// ProviderCount pairs a provider with its published-activity count.
type ProviderCount struct {
	Provider      *entity.Provider
	ActivityCount int64
}

// ActivityRepository defines the interface for activity-related database operations.
type ActivityRepository interface {
	// SearchActivities returns one page of activities matching the filter
	// together with the total match count. The page lookup and the count run
	// concurrently; no transaction spans them, so the total can race with
	// concurrent ingestion writes.
	SearchActivities(ctx context.Context, filter *ActivitySearchFilter) ([]*entity.Activity, int64, error)

	// SearchAllActivities returns the entire filtered result set in start-date
	// order, ignoring the filter's pagination. Used by group-by-name mode,
	// which must paginate after grouping.
	SearchAllActivities(ctx context.Context, filter *ActivitySearchFilter) ([]*entity.Activity, error)

	// FindActivityByID retrieves a single activity with its location,
	// provider and categories loaded.
	FindActivityByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// CountActivitiesByCategory returns per-category activity counts in a
	// single aggregate round trip.
	CountActivitiesByCategory(ctx context.Context) ([]*CategoryCount, error)

	// CountActivitiesByType returns per-activity-type counts in a single
	// aggregate round trip.
	CountActivitiesByType(ctx context.Context) ([]*ActivityTypeCount, error)

	// CountActivitiesByCity returns per-city counts for locations that host
	// at least one activity.
	CountActivitiesByCity(ctx context.Context) ([]*entity.CityCount, error)

	// CountActivitiesByLocation returns per-location counts in a single
	// aggregate round trip.
	CountActivitiesByLocation(ctx context.Context) ([]*LocationCount, error)

	// CountActivitiesByProvider returns per-provider counts in a single
	// aggregate round trip.
	CountActivitiesByProvider(ctx context.Context) ([]*ProviderCount, error)
}
