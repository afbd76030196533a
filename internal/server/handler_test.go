package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-de-haas/haas.mortgage/internal/calculation"
	"github.com/alex-de-haas/haas.mortgage/internal/domain"
	dec "github.com/alex-de-haas/haas.mortgage/pkg/decimal"
)

func mustMoney(t *testing.T, s string) dec.Money {
	t.Helper()
	m, err := dec.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestRouter(t *testing.T) (*MemoryCache, http.Handler) {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	cache := NewMemoryCache()
	handler := NewHandler(calculation.NewEngine(), cache, logger)
	return cache, NewRouter(handler, logger)
}

const scheduleBody = `{
	"principal": 315000,
	"annual_rate_percent": 3.54,
	"term_months": 360,
	"start_month": "2025-12"
}`

func TestHealth(t *testing.T) {
	_, router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestSchedule(t *testing.T) {
	_, router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(scheduleBody)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 360)

	first := resp.Rows[0]
	assert.True(t, first.PlannedInterest.Equal(mustMoney(t, "929.25")))
	assert.True(t, first.PlannedPrincipal.Equal(mustMoney(t, "875")))
	assert.True(t, first.BalanceAfter.Equal(mustMoney(t, "314125")))
	assert.Equal(t, 360, resp.Totals.Months)
}

func TestSchedule_TermYears(t *testing.T) {
	_, router := newTestRouter(t)
	body := `{"principal": 315000, "annual_rate_percent": 3.54, "term_years": 30, "start_month": "2025-12"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 360, resp.Totals.Months)
}

func TestSchedule_WithOverrides(t *testing.T) {
	_, router := newTestRouter(t)
	body := `{
		"principal": 315000,
		"annual_rate_percent": 3.54,
		"term_months": 360,
		"start_month": "2025-12",
		"overrides": {"1": 0}
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Rows)
	assert.True(t, resp.Rows[0].ActualPayment.IsZero())
	assert.True(t, resp.Rows[0].Shortfall.IsPositive())
	assert.True(t, resp.Rows[0].BalanceAfter.Equal(mustMoney(t, "315000")))
}

func TestSchedule_DegenerateLoanYieldsEmptySchedule(t *testing.T) {
	_, router := newTestRouter(t)
	body := `{"principal": 0, "annual_rate_percent": 3.54, "term_months": 360, "start_month": "2025-12"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp scheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Rows)
	assert.Equal(t, 0, resp.Totals.Months)
}

func TestSchedule_InvalidBody(t *testing.T) {
	_, router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader("not json")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSchedule_InvalidStartMonth(t *testing.T) {
	_, router := newTestRouter(t)
	body := `{"principal": 315000, "annual_rate_percent": 3.54, "term_months": 360, "start_month": "soon"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSchedule_CacheHit(t *testing.T) {
	cache, router := newTestRouter(t)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(scheduleBody)))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Empty(t, first.Header().Get("X-Cache"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(scheduleBody)))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	// One entry per distinct request
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	assert.Len(t, cache.data, 1)
}

func TestCompare(t *testing.T) {
	_, router := newTestRouter(t)
	body := `{
		"principal": 315000,
		"annual_rate_percent": 3.54,
		"term_months": 360,
		"start_month": "2025-12",
		"extra_monthly": 500
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/schedule/compare", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.ScenarioSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 360, summary.Base.Months)
	assert.Less(t, summary.Totals.Months, 360)
	assert.True(t, summary.InterestSaved.IsPositive())
	assert.Positive(t, summary.MonthsSaved)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("key", "value"))
	got, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}
