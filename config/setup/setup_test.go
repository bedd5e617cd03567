package setup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"orgchart/config"
	"orgchart/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitApp_WithSeed(t *testing.T) {
	application, err := InitApp("../../seed/durian.yml", 0, testLogger())
	require.NoError(t, err)

	charts := application.ChartService.ListCharts()
	require.Len(t, charts, 1)
	assert.Equal(t, "Durian", charts[0].Name)
	assert.Equal(t, 5, charts[0].Headcount)
	assert.Equal(t, 6, charts[0].TotalEmployees)
}

func TestInitApp_MissingSeed(t *testing.T) {
	_, err := InitApp("does-not-exist.yml", 0, testLogger())
	assert.Error(t, err)
}

func TestInitApp_SeedOverLimit(t *testing.T) {
	// The seed lists six entries.
	_, err := InitApp("../../seed/durian.yml", 5, testLogger())
	assert.ErrorIs(t, err, services.ErrChartTooLarge)
}

func TestInitApp_WithoutSeed(t *testing.T) {
	application, err := InitApp("", 0, testLogger())
	require.NoError(t, err)
	assert.Empty(t, application.ChartService.ListCharts())
}

func TestServerStack(t *testing.T) {
	config.AppConfig = &config.Config{
		Port:               "0",
		Env:                "test",
		CORSOrigins:        "*",
		RateLimitPerMinute: 100,
		MaxChartEntries:    1000,
	}

	logger := testLogger()
	application, err := InitApp("../../seed/durian.yml", config.AppConfig.MaxChartEntries, logger)
	require.NoError(t, err)

	app := NewFiberApp(logger)
	ApplyMiddleware(app, logger)
	RegisterRoutes(app, application)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/charts", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Charts []struct {
			ID             string   `json:"id"`
			Roots          []string `json:"roots"`
			TotalEmployees int      `json:"total_employees"`
		} `json:"charts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Charts, 1)
	assert.Equal(t, 6, body.Charts[0].TotalEmployees)

	chart := body.Charts[0]
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/charts/"+chart.ID+"/employees/"+chart.Roots[0]+"/earning-over?amount=2000000", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/unknown", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomErrorHandler(t *testing.T) {
	config.AppConfig = &config.Config{Env: "test", CORSOrigins: "*", RateLimitPerMinute: 100}

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	app := NewFiberApp(logger)
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestID", "req-1")
		return c.Next()
	})
	app.Get("/charts/:id/fail/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "missing":
			return fmt.Errorf("lookup: %w", services.ErrChartNotFound)
		case "manager":
			return services.ErrManagerNotFound
		case "employee":
			return services.ErrEmployeeNotFound
		case "cycle":
			return services.ErrWouldCreateCycle
		case "large":
			return fmt.Errorf("attach: %w", services.ErrChartTooLarge)
		case "teapot":
			return fiber.NewError(fiber.StatusTeapot, "short and stout")
		default:
			return errors.New("disk on fire")
		}
	})

	tests := []struct {
		kind           string
		expectedStatus int
		expectedError  string
		expectedLevel  string
	}{
		{"missing", http.StatusNotFound, "Chart not found", "WARN"},
		{"manager", http.StatusNotFound, "Manager not found", "WARN"},
		{"employee", http.StatusNotFound, "Employee not found", "WARN"},
		{"cycle", http.StatusConflict, "Attachment would create a reporting cycle", "WARN"},
		{"large", http.StatusUnprocessableEntity, "Chart would exceed the maximum number of entries", "WARN"},
		{"teapot", http.StatusTeapot, "short and stout", "WARN"},
		{"other", http.StatusInternalServerError, "Internal server error", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			logs.Reset()

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/charts/chart-7/fail/"+tt.kind, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.expectedError, body["error"])
			assert.Equal(t, "req-1", body["request_id"])

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "chart-7", entry["chart_id"])
			assert.Equal(t, float64(tt.expectedStatus), entry["status"])
		})
	}
}
