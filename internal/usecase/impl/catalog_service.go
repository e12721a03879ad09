package impl

import (
	"context"
	"log/slog"

	deliverycontext "kidsactivity/internal/delivery/context"
	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	activityRepo     repository.ActivityRepository
	categoryRepo     repository.CategoryRepository
	activityTypeRepo repository.ActivityTypeRepository
	locationRepo     repository.LocationRepository
	providerRepo     repository.ProviderRepository
	logger           *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ActivityRepo     repository.ActivityRepository
	CategoryRepo     repository.CategoryRepository
	ActivityTypeRepo repository.ActivityTypeRepository
	LocationRepo     repository.LocationRepository
	ProviderRepo     repository.ProviderRepository
	Logger           *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		activityRepo:     params.ActivityRepo,
		categoryRepo:     params.CategoryRepo,
		activityTypeRepo: params.ActivityTypeRepo,
		locationRepo:     params.LocationRepo,
		providerRepo:     params.ProviderRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns all categories with activity counts, one aggregate
// query instead of a count per category.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*repository.CategoryCount, error) {
	counts, err := srv.activityRepo.CountActivitiesByCategory(ctx)
	if err != nil {
		srv.log(ctx).Error("Category listing failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return counts, nil
}

// GetCategory retrieves a single category.
func (srv *catalogService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category lookup failed")
		}
		srv.log(ctx).Error("Category lookup failed", slog.Any("categoryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// ListActivityTypes returns the taxonomy with activity counts.
func (srv *catalogService) ListActivityTypes(ctx context.Context) ([]*repository.ActivityTypeCount, error) {
	counts, err := srv.activityRepo.CountActivitiesByType(ctx)
	if err != nil {
		srv.log(ctx).Error("Activity type listing failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list activity types")
	}

	return counts, nil
}

// GetActivityType retrieves a taxonomy type with its subtypes by slug code.
func (srv *catalogService) GetActivityType(ctx context.Context, code string) (*entity.ActivityType, error) {
	activityType, err := srv.activityTypeRepo.FindActivityTypeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrActivityTypeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "activity type lookup failed")
		}
		srv.log(ctx).Error("Activity type lookup failed", slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get activity type")
	}

	return activityType, nil
}

// ListCities returns the cities hosting activities, busiest first.
func (srv *catalogService) ListCities(ctx context.Context) ([]*entity.CityCount, error) {
	counts, err := srv.activityRepo.CountActivitiesByCity(ctx)
	if err != nil {
		srv.log(ctx).Error("City listing failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cities")
	}

	return counts, nil
}

// ListLocations returns all venues with activity counts.
func (srv *catalogService) ListLocations(ctx context.Context) ([]*repository.LocationCount, error) {
	counts, err := srv.activityRepo.CountActivitiesByLocation(ctx)
	if err != nil {
		srv.log(ctx).Error("Location listing failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list locations")
	}

	return counts, nil
}

// GetLocation retrieves a single venue.
func (srv *catalogService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "location lookup failed")
		}
		srv.log(ctx).Error("Location lookup failed", slog.Any("locationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get location")
	}

	return location, nil
}

// ListProviders returns all providers with activity counts.
func (srv *catalogService) ListProviders(ctx context.Context) ([]*repository.ProviderCount, error) {
	counts, err := srv.activityRepo.CountActivitiesByProvider(ctx)
	if err != nil {
		srv.log(ctx).Error("Provider listing failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list providers")
	}

	return counts, nil
}

// GetProvider retrieves a single provider.
func (srv *catalogService) GetProvider(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := srv.providerRepo.FindProviderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProviderNotFound, "provider lookup failed")
		}
		srv.log(ctx).Error("Provider lookup failed", slog.Any("providerID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get provider")
	}

	return provider, nil
}
