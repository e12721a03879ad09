package postgres

import (
	"context"

	"kidsactivity/internal/domain/entity"
	domainerrors "kidsactivity/internal/domain/errors"
	"kidsactivity/internal/domain/repository"
	"kidsactivity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// childRepository implements the domain.ChildRepository interface using GORM.
type childRepository struct {
	db *gorm.DB
}

// NewChildRepository is the constructor for childRepository.
func NewChildRepository(db *gorm.DB) repository.ChildRepository {
	return &childRepository{db: db}
}

// CreateChild persists a new child profile.
func (repo *childRepository) CreateChild(ctx context.Context, child *entity.Child) error {
	childM := fromChildDomain(child)

	if err := repo.db.WithContext(ctx).Create(childM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required child information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create child")
	}

	child.ID = childM.ID
	child.CreatedAt = childM.CreatedAt
	child.UpdatedAt = childM.UpdatedAt

	return nil
}

// FindChildByID retrieves a child by its unique ID.
func (repo *childRepository) FindChildByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	var childM model.ChildModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&childM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChildNotFound
		}

		return nil, errors.Wrap(err, "failed to find child by id")
	}

	return toChildDomain(&childM), nil
}

// FindChildrenByUser retrieves all children owned by a user, oldest profile first.
func (repo *childRepository) FindChildrenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Child, error) {
	var models []*model.ChildModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find children by user")
	}

	return toChildDomainList(models), nil
}

// FindChildrenByIDs retrieves the children whose IDs are in the set.
func (repo *childRepository) FindChildrenByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Child, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []*model.ChildModel

	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find children by ids")
	}

	return toChildDomainList(models), nil
}

// UpdateChild persists changes to a child profile.
func (repo *childRepository) UpdateChild(ctx context.Context, child *entity.Child) error {
	childM := fromChildDomain(child)

	if err := repo.db.WithContext(ctx).Save(childM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update child")
	}

	child.UpdatedAt = childM.UpdatedAt

	return nil
}

// DeleteChild removes a child profile and its activity links. Callers run
// this through the transaction manager so both deletes commit together.
func (repo *childRepository) DeleteChild(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("child_id = ?", id).
		Delete(&model.ChildActivityModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete child activity links")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChildModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete child")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChildNotFound
	}

	return nil
}

// LinkActivity creates a child-activity link with an initial status.
func (repo *childRepository) LinkActivity(ctx context.Context, link *entity.ChildActivity) error {
	linkM := fromChildActivityDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateChildActivity
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrActivityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link activity to child")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindChildActivities retrieves a child's activity links, newest first, with
// the activity rows loaded.
func (repo *childRepository) FindChildActivities(ctx context.Context, childID uuid.UUID) ([]*entity.ChildActivity, error) {
	var models []*model.ChildActivityModel

	err := repo.db.WithContext(ctx).
		Preload("Activity").
		Preload("Activity.Location").
		Preload("Activity.Provider").
		Where("child_id = ?", childID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find child activities")
	}

	links := make([]*entity.ChildActivity, 0, len(models))
	for _, linkM := range models {
		links = append(links, toChildActivityDomain(linkM))
	}

	return links, nil
}

// UpdateChildActivityStatus transitions a link to a new status and replaces
// its notes.
func (repo *childRepository) UpdateChildActivityStatus(ctx context.Context, linkID uuid.UUID, status entity.ChildActivityStatus, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChildActivityModel{}).
		Where("id = ?", linkID).
		Updates(map[string]any{
			"status": string(status),
			"notes":  notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update child activity status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChildActivityNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toChildDomain converts a GORM ChildModel to a domain Child entity.
func toChildDomain(data *model.ChildModel) *entity.Child {
	if data == nil {
		return nil
	}

	return &entity.Child{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		DateOfBirth: data.DateOfBirth,
		Gender:      data.Gender,
		Interests:   splitCSV(data.Interests),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toChildDomainList converts a slice of GORM models to domain entities.
func toChildDomainList(data []*model.ChildModel) []*entity.Child {
	children := make([]*entity.Child, 0, len(data))
	for _, childM := range data {
		children = append(children, toChildDomain(childM))
	}

	return children
}

// fromChildDomain converts a domain Child entity to a GORM ChildModel.
func fromChildDomain(data *entity.Child) *model.ChildModel {
	if data == nil {
		return nil
	}

	return &model.ChildModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		DateOfBirth: data.DateOfBirth,
		Gender:      data.Gender,
		Interests:   joinCSV(data.Interests),
		IsActive:    data.IsActive,
	}
}

// toChildActivityDomain converts a GORM ChildActivityModel to a domain entity.
func toChildActivityDomain(data *model.ChildActivityModel) *entity.ChildActivity {
	if data == nil {
		return nil
	}

	return &entity.ChildActivity{
		ID:            data.ID,
		ChildID:       data.ChildID,
		ActivityID:    data.ActivityID,
		Status:        entity.ChildActivityStatus(data.Status),
		ScheduledDate: data.ScheduledDate,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Activity:      toActivityDomain(data.Activity),
	}
}

// fromChildActivityDomain converts a domain ChildActivity to a GORM model.
func fromChildActivityDomain(data *entity.ChildActivity) *model.ChildActivityModel {
	if data == nil {
		return nil
	}

	return &model.ChildActivityModel{
		ID:            data.ID,
		ChildID:       data.ChildID,
		ActivityID:    data.ActivityID,
		Status:        string(data.Status),
		ScheduledDate: data.ScheduledDate,
		Notes:         data.Notes,
	}
}
