package handler

import (
	"log/slog"
	"net/http"

	"kidsactivity/internal/delivery/http/response"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler serves the saved-activity endpoints.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddFavorite handles saving an activity for the caller.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	activityID, err := uuid.Parse(c.Param("activityID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), userID, activityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added successfully")
}

// RemoveFavorite handles removing a saved activity.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	activityID, err := uuid.Parse(c.Param("activityID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), userID, activityID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

// ListFavorites handles listing the caller's saved activities.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}
