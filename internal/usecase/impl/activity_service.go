// Package impl contains the implementation of the application's business logic.
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

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService. It receives all dependencies as interfaces.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchActivities runs the filtered search in flat or grouped mode.
func (srv *activityService) SearchActivities(ctx context.Context, input *usecase.SearchActivitiesInput) (*usecase.SearchActivitiesOutput, error) {
	if input.GroupByName {
		return srv.searchGrouped(ctx, input.Filter)
	}

	activities, total, err := srv.activityRepo.SearchActivities(ctx, input.Filter)
	if err != nil {
		srv.log(ctx).Error("Activity search failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search activities")
	}

	return &usecase.SearchActivitiesOutput{
		Activities: activities,
		Pagination: buildPagination(input.Filter.Page, input.Filter.Limit, total),
	}, nil
}

// searchGrouped collapses session rows sharing a name into groups and
// paginates over distinct names. Grouping has to happen in memory: the page
// boundary falls between groups, not rows, so the repository returns the
// whole filtered set and the fold applies Page/Limit afterwards.
func (srv *activityService) searchGrouped(ctx context.Context, filter *repository.ActivitySearchFilter) (*usecase.SearchActivitiesOutput, error) {
	activities, err := srv.activityRepo.SearchAllActivities(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Grouped activity search failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search activities for grouping")
	}

	groups := groupActivitiesByName(activities)
	total := int64(len(groups))

	// Page over distinct names. The rows arrive in start-date order, so
	// first-seen group order is also start-date order.
	start := filter.Offset()
	if start > len(groups) {
		start = len(groups)
	}
	end := start + filter.Limit
	if end > len(groups) {
		end = len(groups)
	}

	return &usecase.SearchActivitiesOutput{
		Groups:     groups[start:end],
		Pagination: buildPagination(filter.Page, filter.Limit, total),
	}, nil
}

// GetActivity retrieves a single activity with its relations loaded.
func (srv *activityService) GetActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindActivityByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActivityNotFound, "activity lookup failed")
		}
		srv.log(ctx).Error("Activity lookup failed", slog.Any("activityID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get activity")
	}

	return activity, nil
}

// groupActivitiesByName folds session rows into groups keyed by exact name,
// preserving the first-seen order of names.
func groupActivitiesByName(activities []*entity.Activity) []*entity.ActivityGroup {
	groups := make([]*entity.ActivityGroup, 0)
	index := make(map[string]*entity.ActivityGroup)

	for _, activity := range activities {
		group, ok := index[activity.Name]
		if !ok {
			group = &entity.ActivityGroup{Name: activity.Name}
			index[activity.Name] = group
			groups = append(groups, group)
		}
		group.Sessions = append(group.Sessions, activity)
	}

	return groups
}

// buildPagination derives the page descriptor from a total match count.
func buildPagination(page, limit int, total int64) *usecase.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &usecase.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
