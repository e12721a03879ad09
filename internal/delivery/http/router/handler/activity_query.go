package handler

import (
	"strconv"
	"strings"
	"time"

	"kidsactivity/config"
	"kidsactivity/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Fallback paging bounds when the search config section is absent.
const (
	fallbackDefaultLimit = 50
	fallbackMaxLimit     = 500
)

// parseActivityFilter translates the request's query string into a normalized
// search filter. Parameter names are canonical snake_case; the extra names
// passed per field are the enumerated legacy aliases kept for older clients.
// Malformed values are treated as absent, never as an error.
func parseActivityFilter(c echo.Context, search *config.SearchConfig) *repository.ActivitySearchFilter {
	filter := &repository.ActivitySearchFilter{
		AgeMin:          intParam(c, "age_min"),
		AgeMax:          intParam(c, "age_max"),
		CostMin:         floatParam(c, "cost_min"),
		CostMax:         floatParam(c, "cost_max"),
		Categories:      csvParam(c, "categories"),
		ActivityTypes:   csvParam(c, "activity_types", "activityType"),
		Subcategory:     textParam(c, "subcategory"),
		LocationIDs:     uuidListParam(c, "locations", "location", "locationIds", "locationId"),
		ProviderIDs:     uuidListParam(c, "providers"),
		Search:          textParam(c, "q", "search"),
		DaysOfWeek:      csvParam(c, "days_of_week"),
		ExcludeClosed:   boolParam(c, false, "exclude_closed", "hide_closed_activities"),
		ExcludeFull:     boolParam(c, false, "exclude_full", "hide_full_activities"),
		CreatedAfter:    timeParam(c, "created_after"),
		UpdatedAfter:    timeParam(c, "updated_after"),
		StartDateAfter:  timeParam(c, "start_date_after"),
		StartDateBefore: timeParam(c, "start_date_before"),
	}

	// Active-flag filtering is opt-in. include_inactive is the inverted
	// legacy spelling: include_inactive=false means active rows only.
	if v, ok := boolValue(c, "only_active"); ok {
		filter.OnlyActive = v
	} else if v, ok := boolValue(c, "include_inactive"); ok {
		filter.OnlyActive = !v
	}

	filter.Page, filter.Limit = pageParams(c, search)

	return filter
}

// pageParams returns the 1-indexed page and the clamped page size.
func pageParams(c echo.Context, search *config.SearchConfig) (int, int) {
	defaultLimit, maxLimit := fallbackDefaultLimit, fallbackMaxLimit
	if search != nil {
		if search.DefaultLimit > 0 {
			defaultLimit = search.DefaultLimit
		}
		if search.MaxLimit > 0 {
			maxLimit = search.MaxLimit
		}
	}

	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v >= 1 {
		page = v
	}

	limit := defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v >= 1 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// rawParam returns the first non-empty value among the given parameter names.
func rawParam(c echo.Context, names ...string) (string, bool) {
	for _, name := range names {
		if v := strings.TrimSpace(c.QueryParam(name)); v != "" {
			return v, true
		}
	}

	return "", false
}

func intParam(c echo.Context, names ...string) *int {
	raw, ok := rawParam(c, names...)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &v
}

func floatParam(c echo.Context, names ...string) *float64 {
	raw, ok := rawParam(c, names...)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &v
}

func textParam(c echo.Context, names ...string) *string {
	raw, ok := rawParam(c, names...)
	if !ok {
		return nil
	}

	return &raw
}

// boolValue reports whether any of the named parameters carries a parseable
// boolean, and its value.
func boolValue(c echo.Context, names ...string) (bool, bool) {
	raw, ok := rawParam(c, names...)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}

	return v, true
}

func boolParam(c echo.Context, fallback bool, names ...string) bool {
	if v, ok := boolValue(c, names...); ok {
		return v
	}

	return fallback
}

// csvParam splits the first matching parameter on commas, dropping empty
// entries.
func csvParam(c echo.Context, names ...string) []string {
	raw, ok := rawParam(c, names...)
	if !ok {
		return nil
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}

	return values
}

// uuidListParam parses a CSV of UUIDs, skipping malformed entries.
func uuidListParam(c echo.Context, names ...string) []uuid.UUID {
	var ids []uuid.UUID
	for _, part := range csvParam(c, names...) {
		if id, err := uuid.Parse(part); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

// timeParam accepts RFC 3339 timestamps and plain dates.
func timeParam(c echo.Context, names ...string) *time.Time {
	raw, ok := rawParam(c, names...)
	if !ok {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}

	return nil
}
