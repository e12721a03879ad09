package usecase

import (
	"context"
	"time"

	"kidsactivity/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateChildInput defines the data required to create a child profile.
type CreateChildInput struct {
	UserID      uuid.UUID
	Name        string
	DateOfBirth *time.Time
	Gender      string
	Interests   []string
}

// UpdateChildInput defines the mutable child profile fields. Nil pointers
// leave the stored value untouched.
type UpdateChildInput struct {
	UserID      uuid.UUID
	ChildID     uuid.UUID
	Name        *string
	DateOfBirth *time.Time
	Gender      *string
	Interests   []string
}

// TrackActivityInput links an activity to a child with an initial status.
type TrackActivityInput struct {
	UserID        uuid.UUID
	ChildID       uuid.UUID
	ActivityID    uuid.UUID
	Status        entity.ChildActivityStatus
	ScheduledDate *time.Time
	Notes         string
}

// UpdateActivityStatusInput transitions a tracked activity.
type UpdateActivityStatusInput struct {
	UserID  uuid.UUID
	ChildID uuid.UUID
	LinkID  uuid.UUID
	Status  entity.ChildActivityStatus
	Notes   string
}

// ChildUsecase defines the interface for child-profile business operations.
// Every operation verifies that the acting user owns the child profile.
type ChildUsecase interface {
	CreateChild(ctx context.Context, input *CreateChildInput) (*entity.Child, error)
	ListChildren(ctx context.Context, userID uuid.UUID) ([]*entity.Child, error)
	GetChild(ctx context.Context, userID, childID uuid.UUID) (*entity.Child, error)
	UpdateChild(ctx context.Context, input *UpdateChildInput) (*entity.Child, error)
	DeleteChild(ctx context.Context, userID, childID uuid.UUID) error
	TrackActivity(ctx context.Context, input *TrackActivityInput) (*entity.ChildActivity, error)
	ListChildActivities(ctx context.Context, userID, childID uuid.UUID) ([]*entity.ChildActivity, error)
	UpdateActivityStatus(ctx context.Context, input *UpdateActivityStatusInput) error
}
