// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
// It returns the repository as a domain.ActivityRepository interface, adhering to dependency inversion.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// SearchActivities returns one page of matching activities plus the total
// match count. Page find and count run concurrently on separate pool
// connections; there is no transaction spanning the two, so the total may
// drift by a row or two against concurrent ingestion writes. Acceptable for a
// browse listing, and it keeps the hot path at two short queries instead of a
// serialized pair.
func (repo *activityRepository) SearchActivities(ctx context.Context, filter *repository.ActivitySearchFilter) ([]*entity.Activity, int64, error) {
	var (
		models []*model.ActivityModel
		total  int64
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := repo.applyFilter(repo.db.WithContext(groupCtx), filter).
			Preload("Location").
			Preload("Provider").
			Preload("Categories").
			Order("date_start ASC NULLS LAST, id ASC").
			Limit(filter.Limit).
			Offset(filter.Offset()).
			Find(&models).Error
		if err != nil {
			return errors.Wrap(err, "failed to find activities")
		}

		return nil
	})

	group.Go(func() error {
		err := repo.applyFilter(repo.db.WithContext(groupCtx), filter).
			Count(&total).Error
		if err != nil {
			return errors.Wrap(err, "failed to count activities")
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "activity search failed")
	}

	return toActivityDomainList(models), total, nil
}

// SearchAllActivities returns the entire filtered result set in start-date
// order, ignoring Page and Limit. Grouping mode needs every session row
// before it can paginate over distinct names.
func (repo *activityRepository) SearchAllActivities(ctx context.Context, filter *repository.ActivitySearchFilter) ([]*entity.Activity, error) {
	var models []*model.ActivityModel

	err := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Preload("Location").
		Preload("Provider").
		Preload("Categories").
		Order("date_start ASC NULLS LAST, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "activity search failed")
	}

	return toActivityDomainList(models), nil
}

// FindActivityByID retrieves a single activity with its location, provider
// and categories loaded.
func (repo *activityRepository) FindActivityByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activityM model.ActivityModel

	err := repo.db.WithContext(ctx).
		Preload("Location").
		Preload("Provider").
		Preload("Categories").
		Where("id = ?", id).
		First(&activityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// applyFilter translates the normalized search filter into GORM conditions.
// Nil pointer fields and empty slices add no condition.
func (repo *activityRepository) applyFilter(db *gorm.DB, filter *repository.ActivitySearchFilter) *gorm.DB {
	query := db.Model(&model.ActivityModel{})

	// Age filtering is range overlap, not containment: an activity for ages
	// 3-5 matches a request for ages 4-10.
	if filter.AgeMin != nil {
		query = query.Where("age_max >= ?", *filter.AgeMin)
	}
	if filter.AgeMax != nil {
		query = query.Where("age_min <= ?", *filter.AgeMax)
	}

	if filter.CostMin != nil {
		query = query.Where("cost >= ?", *filter.CostMin)
	}
	if filter.CostMax != nil {
		query = query.Where("cost <= ?", *filter.CostMax)
	}

	// Category names match either the free-text column scraped from the
	// source or an inferred assignment in the join table.
	if len(filter.Categories) > 0 {
		assigned := repo.db.Model(&model.ActivityCategoryModel{}).
			Select("activity_categories.activity_id").
			Joins("JOIN categories ON categories.id = activity_categories.category_id").
			Where("categories.name IN ?", filter.Categories)
		query = query.Where("category IN ? OR id IN (?)", filter.Categories, assigned)
	}

	if len(filter.ActivityTypes) > 0 {
		typeIDs := repo.db.Model(&model.ActivityTypeModel{}).
			Select("id").
			Where("code IN ?", filter.ActivityTypes)
		query = query.Where("activity_type_id IN (?)", typeIDs)
	}

	if filter.Subcategory != nil {
		query = query.Where("subcategory = ?", *filter.Subcategory)
	}

	if len(filter.LocationIDs) > 0 {
		query = query.Where("location_id IN ?", filter.LocationIDs)
	}
	if len(filter.ProviderIDs) > 0 {
		query = query.Where("provider_id IN ?", filter.ProviderIDs)
	}

	if filter.Search != nil {
		pattern := "%" + escapeLike(*filter.Search) + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	// days_of_week is a CSV column; an activity matches when it runs on at
	// least one requested day.
	if len(filter.DaysOfWeek) > 0 {
		var (
			clauses []string
			args    []any
		)
		for _, day := range filter.DaysOfWeek {
			clauses = append(clauses, "days_of_week ILIKE ?")
			args = append(args, "%"+escapeLike(day)+"%")
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	if filter.ExcludeClosed {
		query = query.Where("registration_status NOT IN ?", []string{
			string(entity.RegistrationClosed),
			string(entity.RegistrationWaitlist),
		})
	}
	if filter.ExcludeFull {
		query = query.Where("spots_available > 0")
	}

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}

	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.UpdatedAfter != nil {
		query = query.Where("updated_at > ?", *filter.UpdatedAfter)
	}
	if filter.StartDateAfter != nil {
		query = query.Where("date_start >= ?", *filter.StartDateAfter)
	}
	if filter.StartDateBefore != nil {
		query = query.Where("date_start <= ?", *filter.StartDateBefore)
	}

	return query
}

// CountActivitiesByCategory returns per-category activity counts in a single
// aggregate round trip over the assignment join table.
func (repo *activityRepository) CountActivitiesByCategory(ctx context.Context) ([]*repository.CategoryCount, error) {
	var rows []struct {
		model.CategoryModel
		ActivityCount int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("categories.*, COUNT(activity_categories.activity_id) AS activity_count").
		Joins("LEFT JOIN activity_categories ON activity_categories.category_id = categories.id").
		Group("categories.id").
		Order("categories.display_order ASC, categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count activities by category")
	}

	counts := make([]*repository.CategoryCount, 0, len(rows))
	for i := range rows {
		counts = append(counts, &repository.CategoryCount{
			Category:      toCategoryDomain(&rows[i].CategoryModel),
			ActivityCount: rows[i].ActivityCount,
		})
	}

	return counts, nil
}

// CountActivitiesByType returns per-activity-type counts in a single
// aggregate round trip.
func (repo *activityRepository) CountActivitiesByType(ctx context.Context) ([]*repository.ActivityTypeCount, error) {
	var rows []struct {
		model.ActivityTypeModel
		ActivityCount int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ActivityTypeModel{}).
		Select("activity_types.*, COUNT(activities.id) AS activity_count").
		Joins("LEFT JOIN activities ON activities.activity_type_id = activity_types.id").
		Group("activity_types.id").
		Order("activity_types.display_order ASC, activity_types.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count activities by type")
	}

	counts := make([]*repository.ActivityTypeCount, 0, len(rows))
	for i := range rows {
		counts = append(counts, &repository.ActivityTypeCount{
			ActivityType:  toActivityTypeDomain(&rows[i].ActivityTypeModel),
			ActivityCount: rows[i].ActivityCount,
		})
	}

	return counts, nil
}

// CountActivitiesByCity returns per-city counts for cities hosting at least
// one activity, busiest first.
func (repo *activityRepository) CountActivitiesByCity(ctx context.Context) ([]*entity.CityCount, error) {
	var rows []*entity.CityCount

	err := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Select("locations.city AS city, MIN(locations.province) AS province, COUNT(activities.id) AS activity_count").
		Joins("JOIN locations ON locations.id = activities.location_id").
		Where("locations.city <> ''").
		Group("locations.city").
		Order("activity_count DESC, city ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count activities by city")
	}

	return rows, nil
}

// CountActivitiesByLocation returns per-location counts in a single
// aggregate round trip.
func (repo *activityRepository) CountActivitiesByLocation(ctx context.Context) ([]*repository.LocationCount, error) {
	var rows []struct {
		model.LocationModel
		ActivityCount int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("locations.*, COUNT(activities.id) AS activity_count").
		Joins("LEFT JOIN activities ON activities.location_id = locations.id").
		Group("locations.id").
		Order("locations.city ASC, locations.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count activities by location")
	}

	counts := make([]*repository.LocationCount, 0, len(rows))
	for i := range rows {
		counts = append(counts, &repository.LocationCount{
			Location:      toLocationDomain(&rows[i].LocationModel),
			ActivityCount: rows[i].ActivityCount,
		})
	}

	return counts, nil
}

// CountActivitiesByProvider returns per-provider counts in a single
// aggregate round trip.
func (repo *activityRepository) CountActivitiesByProvider(ctx context.Context) ([]*repository.ProviderCount, error) {
	var rows []struct {
		model.ProviderModel
		ActivityCount int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Select("providers.*, COUNT(activities.id) AS activity_count").
		Joins("LEFT JOIN activities ON activities.provider_id = providers.id").
		Group("providers.id").
		Order("providers.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count activities by provider")
	}

	counts := make([]*repository.ProviderCount, 0, len(rows))
	for i := range rows {
		counts = append(counts, &repository.ProviderCount{
			Provider:      toProviderDomain(&rows[i].ProviderModel),
			ActivityCount: rows[i].ActivityCount,
		})
	}

	return counts, nil
}

// escapeLike neutralizes LIKE metacharacters in user-supplied patterns.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	categories := make([]*entity.Category, 0, len(data.Categories))
	for _, categoryM := range data.Categories {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return &entity.Activity{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Category:           data.Category,
		Subcategory:        data.Subcategory,
		ActivityTypeID:     data.ActivityTypeID,
		ActivitySubtypeID:  data.ActivitySubtypeID,
		AgeMin:             data.AgeMin,
		AgeMax:             data.AgeMax,
		Cost:               data.Cost,
		DaysOfWeek:         splitCSV(data.DaysOfWeek),
		TimeStart:          data.TimeStart,
		TimeEnd:            data.TimeEnd,
		DateStart:          data.DateStart,
		DateEnd:            data.DateEnd,
		RegistrationStatus: entity.RegistrationStatus(data.RegistrationStatus),
		SpotsAvailable:     data.SpotsAvailable,
		TotalSpots:         data.TotalSpots,
		IsActive:           data.IsActive,
		ExternalID:         data.ExternalID,
		CourseID:           data.CourseID,
		LocationID:         data.LocationID,
		ProviderID:         data.ProviderID,
		LastSeenAt:         data.LastSeenAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Location:           toLocationDomain(data.Location),
		Provider:           toProviderDomain(data.Provider),
		Categories:         categories,
	}
}

// toActivityDomainList converts a slice of GORM models to domain entities.
func toActivityDomainList(data []*model.ActivityModel) []*entity.Activity {
	activities := make([]*entity.Activity, 0, len(data))
	for _, activityM := range data {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities
}

// splitCSV parses a comma-separated column into trimmed values.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

// joinCSV is the inverse of splitCSV for persistence.
func joinCSV(values []string) string {
	return strings.Join(values, ",")
}
