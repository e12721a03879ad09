package handler

import (
	"log/slog"
	"net/http"
	"time"

	"kidsactivity/internal/delivery/http/response"
	"kidsactivity/internal/domain/entity"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChildHandler serves the child-profile endpoints. Ownership checks live in
// the usecase layer; handlers only translate HTTP to inputs.
type ChildHandler struct {
	uc     usecase.ChildUsecase
	logger *slog.Logger
}

// NewChildHandler is the constructor for ChildHandler, injected by Fx.
func NewChildHandler(uc usecase.ChildUsecase, logger *slog.Logger) *ChildHandler {
	return &ChildHandler{
		uc:     uc,
		logger: logger,
	}
}

// createChildRequest represents the request body for creating a child profile
type createChildRequest struct {
	Name        string     `json:"name" validate:"required"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      string     `json:"gender"`
	Interests   []string   `json:"interests"`
}

// CreateChild handles the child profile creation request.
func (h *ChildHandler) CreateChild(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createChildRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid child input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	child, err := h.uc.CreateChild(c.Request().Context(), &usecase.CreateChildInput{
		UserID:      userID,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Interests:   req.Interests,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, child, "Child created successfully")
}

// ListChildren handles the listing of the caller's children.
func (h *ChildHandler) ListChildren(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	children, err := h.uc.ListChildren(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, children, "Children retrieved successfully")
}

// GetChild handles the single child profile lookup.
func (h *ChildHandler) GetChild(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid child ID")
	}

	child, err := h.uc.GetChild(c.Request().Context(), userID, childID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, child, "Child retrieved successfully")
}

type updateChildRequest struct {
	Name        *string    `json:"name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender"`
	Interests   []string   `json:"interests"`
}

// UpdateChild handles the partial update of a child profile.
func (h *ChildHandler) UpdateChild(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid child ID")
	}

	var req updateChildRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid child input")
	}

	child, err := h.uc.UpdateChild(c.Request().Context(), &usecase.UpdateChildInput{
		UserID:      userID,
		ChildID:     childID,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Interests:   req.Interests,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, child, "Child updated successfully")
}

// DeleteChild handles the child profile deletion request.
func (h *ChildHandler) DeleteChild(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid child ID")
	}

	if err := h.uc.DeleteChild(c.Request().Context(), userID, childID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Child deleted successfully")
}

// trackActivityRequest represents the request body for tracking an activity
type trackActivityRequest struct {
	ActivityID    uuid.UUID  `json:"activity_id" validate:"required"`
	Status        string     `json:"status" validate:"required"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         string     `json:"notes"`
}

// TrackActivity links an activity to a child with an initial status.
func (h *ChildHandler) TrackActivity(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid child ID")
	}

	var req trackActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	link, err := h.uc.TrackActivity(c.Request().Context(), &usecase.TrackActivityInput{
		UserID:        userID,
		ChildID:       childID,
		ActivityID:    req.ActivityID,
		Status:        entity.ChildActivityStatus(req.Status),
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, link, "Activity tracked successfully")
}

// ListChildActivities lists the activities tracked for a child.
func (h *ChildHandler) ListChildActivities(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid child ID")
	}

	links, err := h.uc.ListChildActivities(c.Request().Context(), userID, childID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, links, "Child activities retrieved successfully")
}

// updateActivityStatusRequest represents the request body for a status transition
type updateActivityStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// UpdateActivityStatus transitions a tracked activity's status.
func (h *ChildHandler) UpdateActivityStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	childID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid child ID")
	}

	linkID, err := uuid.Parse(c.Param("linkID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity link ID")
	}

	var req updateActivityStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err = h.uc.UpdateActivityStatus(c.Request().Context(), &usecase.UpdateActivityStatusInput{
		UserID:  userID,
		ChildID: childID,
		LinkID:  linkID,
		Status:  entity.ChildActivityStatus(req.Status),
		Notes:   req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activity status updated successfully")
}
