package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wealthway/internal/dto"
	"wealthway/internal/errors"
	"wealthway/internal/models"
	"wealthway/internal/services"
)

// AdviceHandler handles the AI advisory endpoint
type AdviceHandler struct {
	ledger  services.LedgerServiceInterface
	advisor services.AdvisorServiceInterface
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(ledger services.LedgerServiceInterface, advisor services.AdvisorServiceInterface) *AdviceHandler {
	return &AdviceHandler{ledger: ledger, advisor: advisor}
}

// GetAdvice generates an advisory paragraph over a scope of transactions
// @Summary Spending advice
// @Description Generate one paragraph of spending advice from the transactions in the requested range; generation failures fall back to a static message, never an error
// @Tags Advice
// @Accept json
// @Produce json
// @Param request body dto.AdviceRequest true "Range scope; both dates empty means the whole ledger"
// @Success 200 {object} dto.AdviceResponse "Advisory text"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Start date after end date"
// @Router /advice [post]
func (h *AdviceHandler) GetAdvice(c echo.Context) error {
	var req dto.AdviceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if (req.StartDate == "") != (req.EndDate == "") {
		return SendError(c, errors.ValidationInvalidDate,
			errors.WithDetails("start_date and end_date must be provided together"))
	}

	transactions := h.ledger.All()
	if req.StartDate != "" {
		start, _ := models.ParseDate(req.StartDate)
		end, _ := models.ParseDate(req.EndDate)

		filtered, err := h.ledger.FilterByRange(start, end)
		if err != nil {
			if err == services.ErrInvalidRange {
				return SendError(c, errors.ValidationInvalidRange)
			}
			return SendSystemError(c, err)
		}
		transactions = filtered
	}

	advice := h.advisor.Advise(c.Request().Context(), transactions, models.Today())
	return c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}

// GetLatestAdvice returns the most recently accepted advisory text
// @Summary Latest spending advice
// @Description Return the advice most recently accepted by the advisor without triggering a new generation
// @Tags Advice
// @Produce json
// @Success 200 {object} dto.AdviceResponse "Advisory text"
// @Failure 404 {object} errors.ErrorResponse "ADVICE_002 - No advice generated yet"
// @Router /advice/latest [get]
func (h *AdviceHandler) GetLatestAdvice(c echo.Context) error {
	advice := h.advisor.LastAdvice()
	if advice == "" {
		return SendError(c, errors.AdviceNotFound)
	}
	return c.JSON(http.StatusOK, dto.AdviceResponse{Advice: advice})
}
