package postgres

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the domain.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAllCategories retrieves all categories in display order.
func (repo *categoryRepository) FindAllCategories(ctx context.Context) ([]*entity.Category, error) {
	var models []*model.CategoryModel

	err := repo.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(models))
	for _, categoryM := range models {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindCategoryByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// activityTypeRepository implements the domain.ActivityTypeRepository interface using GORM.
type activityTypeRepository struct {
	db *gorm.DB
}

// NewActivityTypeRepository is the constructor for activityTypeRepository.
func NewActivityTypeRepository(db *gorm.DB) repository.ActivityTypeRepository {
	return &activityTypeRepository{db: db}
}

// FindAllActivityTypes retrieves all types with their subtypes nested, both
// in display order.
func (repo *activityTypeRepository) FindAllActivityTypes(ctx context.Context) ([]*entity.ActivityType, error) {
	var models []*model.ActivityTypeModel

	err := repo.db.WithContext(ctx).
		Preload("Subtypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, name ASC")
		}).
		Order("display_order ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find activity types")
	}

	types := make([]*entity.ActivityType, 0, len(models))
	for _, typeM := range models {
		types = append(types, toActivityTypeDomain(typeM))
	}

	return types, nil
}

// FindActivityTypeByCode retrieves a type (with subtypes) by its slug code.
func (repo *activityTypeRepository) FindActivityTypeByCode(ctx context.Context, code string) (*entity.ActivityType, error) {
	var typeM model.ActivityTypeModel

	err := repo.db.WithContext(ctx).
		Preload("Subtypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, name ASC")
		}).
		Where("code = ?", code).
		First(&typeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity type by code")
	}

	return toActivityTypeDomain(&typeM), nil
}

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindAllLocations retrieves all locations ordered by city then name.
func (repo *locationRepository) FindAllLocations(ctx context.Context) ([]*entity.Location, error) {
	var models []*model.LocationModel

	err := repo.db.WithContext(ctx).
		Order("city ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations")
	}

	locations := make([]*entity.Location, 0, len(models))
	for _, locationM := range models {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// providerRepository implements the domain.ProviderRepository interface using GORM.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// FindAllProviders retrieves all providers ordered by name.
func (repo *providerRepository) FindAllProviders(ctx context.Context) ([]*entity.Provider, error) {
	var models []*model.ProviderModel

	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find providers")
	}

	providers := make([]*entity.Provider, 0, len(models))
	for _, providerM := range models {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// FindProviderByID retrieves a provider by its unique ID.
func (repo *providerRepository) FindProviderByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	var providerM model.ProviderModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&providerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by id")
	}

	return toProviderDomain(&providerM), nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:             data.ID,
		Name:           data.Name,
		AgeMin:         data.AgeMin,
		AgeMax:         data.AgeMax,
		RequiresParent: data.RequiresParent,
		DisplayOrder:   data.DisplayOrder,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toActivityTypeDomain converts a GORM ActivityTypeModel to a domain ActivityType entity.
func toActivityTypeDomain(data *model.ActivityTypeModel) *entity.ActivityType {
	if data == nil {
		return nil
	}

	subtypes := make([]*entity.ActivitySubtype, 0, len(data.Subtypes))
	for _, subtypeM := range data.Subtypes {
		subtypes = append(subtypes, &entity.ActivitySubtype{
			ID:             subtypeM.ID,
			ActivityTypeID: subtypeM.ActivityTypeID,
			Code:           subtypeM.Code,
			Name:           subtypeM.Name,
			DisplayOrder:   subtypeM.DisplayOrder,
			CreatedAt:      subtypeM.CreatedAt,
			UpdatedAt:      subtypeM.UpdatedAt,
		})
	}

	return &entity.ActivityType{
		ID:           data.ID,
		Code:         data.Code,
		Name:         data.Name,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Subtypes:     subtypes,
	}
}

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:         data.ID,
		Name:       data.Name,
		Address:    data.Address,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Facility:   data.Facility,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toProviderDomain converts a GORM ProviderModel to a domain Provider entity.
func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:        data.ID,
		Name:      data.Name,
		Website:   data.Website,
		Region:    data.Region,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
