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

// CatalogHandler serves the reference-data listings behind the app's filter
// pickers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories handles the category listing request.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// GetCategory handles the single-category lookup request.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	category, err := h.uc.GetCategory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category retrieved successfully")
}

// ListActivityTypes handles the activity-type listing request.
func (h *CatalogHandler) ListActivityTypes(c echo.Context) error {
	types, err := h.uc.ListActivityTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, types, "Activity types retrieved successfully")
}

// GetActivityType handles the single activity-type lookup by code.
func (h *CatalogHandler) GetActivityType(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_CODE", "Activity type code is required")
	}

	activityType, err := h.uc.GetActivityType(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activityType, "Activity type retrieved successfully")
}

// ListCities handles the city listing request.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	cities, err := h.uc.ListCities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "Cities retrieved successfully")
}

// ListLocations handles the location listing request.
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	locations, err := h.uc.ListLocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// GetLocation handles the single-location lookup request.
func (h *CatalogHandler) GetLocation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	location, err := h.uc.GetLocation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location retrieved successfully")
}

// ListProviders handles the provider listing request.
func (h *CatalogHandler) ListProviders(c echo.Context) error {
	providers, err := h.uc.ListProviders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, providers, "Providers retrieved successfully")
}

// GetProvider handles the single-provider lookup request.
func (h *CatalogHandler) GetProvider(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid provider ID")
	}

	provider, err := h.uc.GetProvider(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provider, "Provider retrieved successfully")
}
