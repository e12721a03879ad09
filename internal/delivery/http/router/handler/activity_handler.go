package handler

import (
	"log/slog"
	"net/http"

	"kidsactivity/config"
	"kidsactivity/internal/delivery/http/response"
	"kidsactivity/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler serves the activity search endpoints.
type ActivityHandler struct {
	uc     usecase.ActivityUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase, cfg *config.Config, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// SearchActivities handles the filtered activity listing request.
func (h *ActivityHandler) SearchActivities(c echo.Context) error {
	input := &usecase.SearchActivitiesInput{
		Filter:      parseActivityFilter(c, h.cfg.Search),
		GroupByName: boolParam(c, false, "group_by_name"),
	}

	output, err := h.uc.SearchActivities(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	data := echo.Map{
		"pagination": output.Pagination,
		"grouped":    input.GroupByName,
	}
	if input.GroupByName {
		data["groups"] = output.Groups
	} else {
		data["activities"] = output.Activities
	}

	return response.Success(c, http.StatusOK, data, "Activities retrieved successfully")
}

// GetActivity handles the single-activity lookup request.
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid activity ID")
	}

	activity, err := h.uc.GetActivity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activity, "Activity retrieved successfully")
}
