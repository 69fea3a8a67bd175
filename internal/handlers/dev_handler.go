package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"wealthway/internal/models"
	"wealthway/internal/services"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampler services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampler services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{sampler: sampler}
}

// SeedTransactions fills the ledger with realistic sample transactions
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 50, max: 500)
//   - days: Number of days of history to generate (default: 90, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
//
// Error Responses:
//   - 500: Internal server error
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	count := getIntQueryParam(c, "count", 50)
	if count < 1 {
		count = 1
	}
	if count > 500 {
		count = 500
	}

	days := getIntQueryParam(c, "days", 90)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	to := models.Today()
	from := to.AddDays(-days)

	created, err := h.sampler.Seed(count, from, to)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample data generated successfully",
		"transactions_created": len(created),
		"date_range": map[string]string{
			"start": from.String(),
			"end":   to.String(),
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
