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

// childService implements the ChildUsecase interface.
type childService struct {
	txManager repository.TransactionManager
	childRepo repository.ChildRepository
	logger    *slog.Logger
}

// ChildServiceParams holds dependencies for childService, injected by Fx.
type ChildServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ChildRepo repository.ChildRepository
	Logger    *slog.Logger
}

// NewChildService is the constructor for childService. It receives all dependencies as interfaces.
func NewChildService(params ChildServiceParams) usecase.ChildUsecase {
	return &childService{
		txManager: params.TxManager,
		childRepo: params.ChildRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *childService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadOwnedChild fetches a child and verifies the acting user owns it.
// Missing and foreign children both surface as not-found so the endpoint
// does not reveal which child IDs exist.
func (srv *childService) loadOwnedChild(ctx context.Context, userID, childID uuid.UUID) (*entity.Child, error) {
	child, err := srv.childRepo.FindChildByID(ctx, childID)
	if err != nil {
		if errors.Is(err, repository.ErrChildNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChildNotFound, "child lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find child")
	}

	if child.UserID != userID {
		srv.log(ctx).Warn("Child access denied", slog.Any("userID", userID), slog.Any("childID", childID))

		return nil, errors.Wrap(domainerrors.ErrChildNotFound, "child does not belong to user")
	}

	return child, nil
}

// CreateChild persists a new child profile for the acting user.
func (srv *childService) CreateChild(ctx context.Context, input *usecase.CreateChildInput) (*entity.Child, error) {
	child := &entity.Child{
		UserID:      input.UserID,
		Name:        input.Name,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		Interests:   input.Interests,
		IsActive:    true,
	}

	if err := srv.childRepo.CreateChild(ctx, child); err != nil {
		srv.log(ctx).Error("Failed to create child", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create child")
	}

	srv.log(ctx).Debug("Child created", slog.Any("userID", input.UserID), slog.Any("childID", child.ID))

	return child, nil
}

// ListChildren returns the acting user's children.
func (srv *childService) ListChildren(ctx context.Context, userID uuid.UUID) ([]*entity.Child, error) {
	children, err := srv.childRepo.FindChildrenByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list children", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list children")
	}

	return children, nil
}

// GetChild retrieves one of the acting user's children.
func (srv *childService) GetChild(ctx context.Context, userID, childID uuid.UUID) (*entity.Child, error) {
	return srv.loadOwnedChild(ctx, userID, childID)
}

// UpdateChild applies the provided fields to an owned child profile.
func (srv *childService) UpdateChild(ctx context.Context, input *usecase.UpdateChildInput) (*entity.Child, error) {
	child, err := srv.loadOwnedChild(ctx, input.UserID, input.ChildID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		child.Name = *input.Name
	}
	if input.DateOfBirth != nil {
		child.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		child.Gender = *input.Gender
	}
	if input.Interests != nil {
		child.Interests = input.Interests
	}

	if err := srv.childRepo.UpdateChild(ctx, child); err != nil {
		srv.log(ctx).Error("Failed to update child", slog.Any("childID", input.ChildID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update child")
	}

	return child, nil
}

// DeleteChild removes an owned child profile together with its activity
// links. The ownership check and the two deletes run in one transaction so a
// concurrent delete cannot leave orphaned links.
func (srv *childService) DeleteChild(ctx context.Context, userID, childID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		childRepo := repoFactory.NewChildRepository()

		child, err := childRepo.FindChildByID(ctx, childID)
		if err != nil {
			if errors.Is(err, repository.ErrChildNotFound) {
				return errors.Wrap(domainerrors.ErrChildNotFound, "child lookup failed")
			}

			return errors.Wrap(err, "failed to find child")
		}
		if child.UserID != userID {
			return errors.Wrap(domainerrors.ErrChildNotFound, "child does not belong to user")
		}

		return childRepo.DeleteChild(ctx, childID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete child", slog.Any("childID", childID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete child")
	}

	srv.log(ctx).Info("Child deleted", slog.Any("userID", userID), slog.Any("childID", childID))

	return nil
}

// TrackActivity links an activity to an owned child.
func (srv *childService) TrackActivity(ctx context.Context, input *usecase.TrackActivityInput) (*entity.ChildActivity, error) {
	if !entity.ValidChildActivityStatus(input.Status) {
		return nil, errors.Wrap(domainerrors.ErrInvalidActivityStatus, "track activity failed")
	}

	if _, err := srv.loadOwnedChild(ctx, input.UserID, input.ChildID); err != nil {
		return nil, err
	}

	link := &entity.ChildActivity{
		ChildID:       input.ChildID,
		ActivityID:    input.ActivityID,
		Status:        input.Status,
		ScheduledDate: input.ScheduledDate,
		Notes:         input.Notes,
	}

	if err := srv.childRepo.LinkActivity(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateChildActivity) {
			return nil, errors.Wrap(domainerrors.ErrChildActivityExists, "track activity failed")
		}
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActivityNotFound, "track activity failed")
		}
		srv.log(ctx).Error("Failed to track activity", slog.Any("childID", input.ChildID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to track activity")
	}

	srv.log(ctx).Debug("Activity tracked", slog.Any("childID", input.ChildID), slog.Any("activityID", input.ActivityID))

	return link, nil
}

// ListChildActivities returns an owned child's tracked activities.
func (srv *childService) ListChildActivities(ctx context.Context, userID, childID uuid.UUID) ([]*entity.ChildActivity, error) {
	if _, err := srv.loadOwnedChild(ctx, userID, childID); err != nil {
		return nil, err
	}

	links, err := srv.childRepo.FindChildActivities(ctx, childID)
	if err != nil {
		srv.log(ctx).Error("Failed to list child activities", slog.Any("childID", childID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list child activities")
	}

	return links, nil
}

// UpdateActivityStatus transitions a tracked activity of an owned child.
func (srv *childService) UpdateActivityStatus(ctx context.Context, input *usecase.UpdateActivityStatusInput) error {
	if !entity.ValidChildActivityStatus(input.Status) {
		return errors.Wrap(domainerrors.ErrInvalidActivityStatus, "status update failed")
	}

	if _, err := srv.loadOwnedChild(ctx, input.UserID, input.ChildID); err != nil {
		return err
	}

	if err := srv.childRepo.UpdateChildActivityStatus(ctx, input.LinkID, input.Status, input.Notes); err != nil {
		if errors.Is(err, repository.ErrChildActivityNotFound) {
			return errors.Wrap(domainerrors.ErrChildActivityNotFound, "status update failed")
		}
		srv.log(ctx).Error("Failed to update activity status", slog.Any("linkID", input.LinkID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update activity status")
	}

	return nil
}
