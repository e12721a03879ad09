package repository

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for child persistence.
var (
	// ErrChildNotFound is returned when a child is not found.
	ErrChildNotFound = errors.New("child not found")
	// ErrChildActivityNotFound is returned when a child-activity link is not found.
	ErrChildActivityNotFound = errors.New("child activity not found")
	// ErrDuplicateChildActivity is returned when a child is already linked to an activity.
	ErrDuplicateChildActivity = errors.New("child already linked to activity")
)

// ChildRepository defines the interface for child-profile database operations.
type ChildRepository interface {
	// CreateChild persists a new child profile.
	CreateChild(ctx context.Context, child *entity.Child) error

	// FindChildByID retrieves a child by its unique ID.
	FindChildByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)

	// FindChildrenByUser retrieves all children owned by a user.
	FindChildrenByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Child, error)

	// FindChildrenByIDs retrieves the children whose IDs are in the set.
	FindChildrenByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Child, error)

	// UpdateChild persists changes to a child profile.
	UpdateChild(ctx context.Context, child *entity.Child) error

	// DeleteChild removes a child profile and its activity links.
	DeleteChild(ctx context.Context, id uuid.UUID) error

	// LinkActivity creates a child-activity link with an initial status.
	LinkActivity(ctx context.Context, link *entity.ChildActivity) error

	// FindChildActivities retrieves a child's activity links, newest first,
	// with the activity rows loaded.
	FindChildActivities(ctx context.Context, childID uuid.UUID) ([]*entity.ChildActivity, error)

	// UpdateChildActivityStatus transitions a link to a new status and
	// replaces its notes.
	UpdateChildActivityStatus(ctx context.Context, linkID uuid.UUID, status entity.ChildActivityStatus, notes string) error
}
