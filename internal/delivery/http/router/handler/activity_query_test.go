package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"kidsactivity/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, query url.Values) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities?"+query.Encode(), nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func testSearchConfig() *config.SearchConfig {
	return &config.SearchConfig{DefaultLimit: 50, MaxLimit: 500}
}

func TestParseActivityFilter_Defaults(t *testing.T) {
	c := queryContext(t, url.Values{})

	filter := parseActivityFilter(c, testSearchConfig())

	assert.Nil(t, filter.AgeMin)
	assert.Nil(t, filter.AgeMax)
	assert.Nil(t, filter.CostMin)
	assert.Nil(t, filter.CostMax)
	assert.Nil(t, filter.Search)
	assert.Empty(t, filter.Categories)
	assert.Empty(t, filter.LocationIDs)
	assert.False(t, filter.ExcludeClosed)
	assert.False(t, filter.ExcludeFull)
	assert.False(t, filter.OnlyActive)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, 0, filter.Offset())
}

func TestParseActivityFilter_FullQuery(t *testing.T) {
	locationID := uuid.New()
	providerID := uuid.New()

	q := url.Values{}
	q.Set("age_min", "3")
	q.Set("age_max", "7")
	q.Set("cost_min", "10.5")
	q.Set("cost_max", "120")
	q.Set("categories", "Swimming, Arts & Crafts")
	q.Set("activity_types", "team-sports,camps")
	q.Set("subcategory", "watercolour")
	q.Set("locations", locationID.String())
	q.Set("providers", providerID.String())
	q.Set("q", "lego")
	q.Set("days_of_week", "Mon,Wed,")
	q.Set("exclude_closed", "true")
	q.Set("exclude_full", "true")
	q.Set("only_active", "true")
	q.Set("start_date_after", "2026-09-01")
	q.Set("start_date_before", "2026-12-31T23:59:59Z")
	q.Set("page", "3")
	q.Set("limit", "20")
	c := queryContext(t, q)

	filter := parseActivityFilter(c, testSearchConfig())

	require.NotNil(t, filter.AgeMin)
	require.NotNil(t, filter.AgeMax)
	assert.Equal(t, 3, *filter.AgeMin)
	assert.Equal(t, 7, *filter.AgeMax)
	require.NotNil(t, filter.CostMin)
	require.NotNil(t, filter.CostMax)
	assert.Equal(t, 10.5, *filter.CostMin)
	assert.Equal(t, 120.0, *filter.CostMax)
	assert.Equal(t, []string{"Swimming", "Arts & Crafts"}, filter.Categories)
	assert.Equal(t, []string{"team-sports", "camps"}, filter.ActivityTypes)
	require.NotNil(t, filter.Subcategory)
	assert.Equal(t, "watercolour", *filter.Subcategory)
	assert.Equal(t, []uuid.UUID{locationID}, filter.LocationIDs)
	assert.Equal(t, []uuid.UUID{providerID}, filter.ProviderIDs)
	require.NotNil(t, filter.Search)
	assert.Equal(t, "lego", *filter.Search)
	assert.Equal(t, []string{"Mon", "Wed"}, filter.DaysOfWeek)
	assert.True(t, filter.ExcludeClosed)
	assert.True(t, filter.ExcludeFull)
	assert.True(t, filter.OnlyActive)
	require.NotNil(t, filter.StartDateAfter)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *filter.StartDateAfter)
	require.NotNil(t, filter.StartDateBefore)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, 40, filter.Offset())
}

func TestParseActivityFilter_LegacyAliases(t *testing.T) {
	locationID := uuid.New()

	q := url.Values{}
	q.Set("activityType", "swimming")
	q.Set("locationId", locationID.String())
	q.Set("search", "ballet")
	q.Set("hide_closed_activities", "true")
	q.Set("hide_full_activities", "1")
	c := queryContext(t, q)

	filter := parseActivityFilter(c, testSearchConfig())

	assert.Equal(t, []string{"swimming"}, filter.ActivityTypes)
	assert.Equal(t, []uuid.UUID{locationID}, filter.LocationIDs)
	require.NotNil(t, filter.Search)
	assert.Equal(t, "ballet", *filter.Search)
	assert.True(t, filter.ExcludeClosed)
	assert.True(t, filter.ExcludeFull)
}

func TestParseActivityFilter_CanonicalNameWinsOverAlias(t *testing.T) {
	q := url.Values{}
	q.Set("activity_types", "camps")
	q.Set("activityType", "swimming")
	c := queryContext(t, q)

	filter := parseActivityFilter(c, testSearchConfig())

	assert.Equal(t, []string{"camps"}, filter.ActivityTypes)
}

func TestParseActivityFilter_MalformedValuesAreUnconstrained(t *testing.T) {
	q := url.Values{}
	q.Set("age_min", "five")
	q.Set("cost_max", "cheap")
	q.Set("locations", "not-a-uuid")
	q.Set("exclude_closed", "yes-please")
	q.Set("created_after", "last tuesday")
	q.Set("page", "-2")
	q.Set("limit", "zero")
	c := queryContext(t, q)

	filter := parseActivityFilter(c, testSearchConfig())

	assert.Nil(t, filter.AgeMin)
	assert.Nil(t, filter.CostMax)
	assert.Empty(t, filter.LocationIDs)
	assert.False(t, filter.ExcludeClosed)
	assert.Nil(t, filter.CreatedAfter)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 50, filter.Limit)
}

func TestParseActivityFilter_IncludeInactiveAlias(t *testing.T) {
	q := url.Values{}
	q.Set("include_inactive", "false")
	c := queryContext(t, q)

	filter := parseActivityFilter(c, testSearchConfig())

	assert.True(t, filter.OnlyActive)

	q.Set("include_inactive", "true")
	filter = parseActivityFilter(queryContext(t, q), testSearchConfig())

	assert.False(t, filter.OnlyActive)
}

func TestParseActivityFilter_LimitClamping(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "10000")
	c := queryContext(t, q)

	filter := parseActivityFilter(c, testSearchConfig())

	assert.Equal(t, 500, filter.Limit)
}
