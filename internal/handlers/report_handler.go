package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wealthway/internal/dto"
	"wealthway/internal/errors"
	"wealthway/internal/models"
	"wealthway/internal/services"
)

// ReportHandler handles aggregation endpoints over the ledger
type ReportHandler struct {
	ledger services.LedgerServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(ledger services.LedgerServiceInterface) *ReportHandler {
	return &ReportHandler{ledger: ledger}
}

// GetSummary returns income/expense/balance totals for a date range
// @Summary Range totals
// @Description Sum income, expense and balance over an inclusive date range; without a range the whole ledger is summed
// @Tags Reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse "Totals"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Start date after end date"
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c echo.Context) error {
	start, end, hasRange, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if !hasRange {
		start, end = ledgerBounds(h.ledger.All())
	}

	summary, err := h.ledger.Totals(start, end)
	if err != nil {
		if err == services.ErrInvalidRange {
			return SendError(c, errors.ValidationInvalidRange)
		}
		return SendSystemError(c, err)
	}

	response := dto.SummaryResponse{Summary: summary}
	if hasRange {
		response.StartDate = start.String()
		response.EndDate = end.String()
	}
	return c.JSON(http.StatusOK, response)
}

// GetCategoryBreakdown returns expense totals grouped by category
// @Summary Expense breakdown
// @Description Group expense totals by category over an inclusive date range, largest first
// @Tags Reports
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CategoryBreakdownResponse "Category totals"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Start date after end date"
// @Router /reports/categories [get]
func (h *ReportHandler) GetCategoryBreakdown(c echo.Context) error {
	start, end, hasRange, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	if !hasRange {
		start, end = ledgerBounds(h.ledger.All())
	}

	categories, err := h.ledger.CategoryBreakdown(start, end)
	if err != nil {
		if err == services.ErrInvalidRange {
			return SendError(c, errors.ValidationInvalidRange)
		}
		return SendSystemError(c, err)
	}

	response := dto.CategoryBreakdownResponse{Categories: categories}
	if hasRange {
		response.StartDate = start.String()
		response.EndDate = end.String()
	}
	return c.JSON(http.StatusOK, response)
}

// ledgerBounds returns a range covering every transaction. An empty ledger
// collapses to a single day so downstream range checks stay valid.
func ledgerBounds(transactions []models.Transaction) (models.Date, models.Date) {
	if len(transactions) == 0 {
		today := models.Today()
		return today, today
	}
	low, high := transactions[0].Date, transactions[0].Date
	for _, tx := range transactions[1:] {
		if tx.Date.Before(low) {
			low = tx.Date
		}
		if tx.Date.After(high) {
			high = tx.Date
		}
	}
	return low, high
}
