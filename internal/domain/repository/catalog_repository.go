package repository

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrActivityTypeNotFound is returned when an activity type is not found.
	ErrActivityTypeNotFound = errors.New("activity type not found")
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrProviderNotFound is returned when a provider is not found.
	ErrProviderNotFound = errors.New("provider not found")
)

// CategoryRepository defines the interface for category reads.
type CategoryRepository interface {
	// FindAllCategories retrieves all categories in display order.
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryByID retrieves a category by its unique ID.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// ActivityTypeRepository defines the interface for taxonomy reads.
type ActivityTypeRepository interface {
	// FindAllActivityTypes retrieves all types with their subtypes nested,
	// both in display order.
	FindAllActivityTypes(ctx context.Context) ([]*entity.ActivityType, error)

	// FindActivityTypeByCode retrieves a type (with subtypes) by its slug code.
	FindActivityTypeByCode(ctx context.Context, code string) (*entity.ActivityType, error)
}

// LocationRepository defines the interface for venue reads.
type LocationRepository interface {
	// FindAllLocations retrieves all locations ordered by city then name.
	FindAllLocations(ctx context.Context) ([]*entity.Location, error)

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
}

// ProviderRepository defines the interface for provider reads.
type ProviderRepository interface {
	// FindAllProviders retrieves all providers ordered by name.
	FindAllProviders(ctx context.Context) ([]*entity.Provider, error)

	// FindProviderByID retrieves a provider by its unique ID.
	FindProviderByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
}
