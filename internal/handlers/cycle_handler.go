package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wealthway/internal/dto"
	"wealthway/internal/errors"
	"wealthway/internal/models"
	"wealthway/internal/services"
)

// CycleHandler handles billing cycle and settings endpoints
type CycleHandler struct {
	ledger services.LedgerServiceInterface
}

// NewCycleHandler creates a new cycle handler
func NewCycleHandler(ledger services.LedgerServiceInterface) *CycleHandler {
	return &CycleHandler{ledger: ledger}
}

// GetCurrentCycle returns the billing cycle containing the anchor date
// @Summary Current billing cycle
// @Description Compute the billing cycle containing the anchor date (default today) from the stored start day
// @Tags Cycle
// @Produce json
// @Param anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.CycleResponse "Cycle interval"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid anchor date"
// @Router /cycle/current [get]
func (h *CycleHandler) GetCurrentCycle(c echo.Context) error {
	anchor, err := parseAnchorDate(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.CycleResponse{
		Cycle:         h.ledger.CurrentCycle(anchor),
		CycleStartDay: h.ledger.CycleStartDay(),
	})
}

// GetPreviousCycle returns the billing cycle before the one containing the anchor
// @Summary Previous billing cycle
// @Description Compute the cycle immediately before the one containing the anchor date; the two are adjacent
// @Tags Cycle
// @Produce json
// @Param anchor query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.CycleResponse "Cycle interval"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid anchor date"
// @Router /cycle/previous [get]
func (h *CycleHandler) GetPreviousCycle(c echo.Context) error {
	anchor, err := parseAnchorDate(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.CycleResponse{
		Cycle:         h.ledger.PreviousCycle(anchor),
		CycleStartDay: h.ledger.CycleStartDay(),
	})
}

// GetCycleStartDay returns the stored billing cycle start day
// @Summary Get cycle start day
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.CycleStartDayResponse "Stored start day"
// @Router /settings/cycle-start-day [get]
func (h *CycleHandler) GetCycleStartDay(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CycleStartDayResponse{
		CycleStartDay: h.ledger.CycleStartDay(),
	})
}

// UpdateCycleStartDay stores a new billing cycle start day
// @Summary Update cycle start day
// @Description Store a new billing cycle start day; days past 28 are rejected so every month contains the start day
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateCycleStartDayRequest true "New start day"
// @Success 200 {object} dto.CycleStartDayResponse "Stored start day"
// @Failure 400 {object} errors.ErrorResponse "SETTINGS_001 - Day outside 1-28"
// @Router /settings/cycle-start-day [put]
func (h *CycleHandler) UpdateCycleStartDay(c echo.Context) error {
	var req dto.UpdateCycleStartDayRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.ledger.SetCycleStartDay(req.CycleStartDay); err != nil {
		if err == services.ErrInvalidCycleStartDay {
			return SendError(c, errors.SettingsInvalidCycleStartDay)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CycleStartDayResponse{
		CycleStartDay: req.CycleStartDay,
		Message:       "Cycle start day updated",
	})
}

// ListCategories returns the fixed category vocabulary per transaction type
// @Summary List categories
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.CategoryListResponse "Category vocabulary"
// @Router /categories [get]
func (h *CycleHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Income:  models.IncomeCategories(),
		Expense: models.ExpenseCategories(),
	})
}
