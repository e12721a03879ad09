// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SearchActivitiesInput carries a normalized search filter plus the response
// shaping flags that do not affect the SQL predicate.
type SearchActivitiesInput struct {
	Filter *repository.ActivitySearchFilter

	// GroupByName collapses session rows sharing a name into one group and
	// paginates over distinct names instead of rows.
	GroupByName bool
}

// --- Output DTOs ---

// Pagination describes the page returned by a listing operation.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// SearchActivitiesOutput returns one page of search results. Exactly one of
// Activities or Groups is populated, depending on the grouping flag.
type SearchActivitiesOutput struct {
	Activities []*entity.Activity
	Groups     []*entity.ActivityGroup
	Pagination *Pagination
}

// ActivityUsecase defines the interface for activity search operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ActivityUsecase interface {
	SearchActivities(ctx context.Context, input *SearchActivitiesInput) (*SearchActivitiesOutput, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
}
