package usecase

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/domain/repository"

	"github.com/google/uuid"
)

// CatalogUsecase defines the interface for the reference-data listings that
// power the app's filter pickers. Every listing carries activity counts so
// clients can grey out empty options.
type CatalogUsecase interface {
	ListCategories(ctx context.Context) ([]*repository.CategoryCount, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListActivityTypes(ctx context.Context) ([]*repository.ActivityTypeCount, error)
	GetActivityType(ctx context.Context, code string) (*entity.ActivityType, error)
	ListCities(ctx context.Context) ([]*entity.CityCount, error)
	ListLocations(ctx context.Context) ([]*repository.LocationCount, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	ListProviders(ctx context.Context) ([]*repository.ProviderCount, error)
	GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
}
