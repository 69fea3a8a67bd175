package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"wealthway/internal/dto"
	"wealthway/internal/errors"
	"wealthway/internal/models"
	"wealthway/internal/services"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledger services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// ListTransactions retrieves the ledger, optionally filtered to a date range
// @Summary List transactions
// @Description Retrieve transactions in insertion order (newest first), optionally filtered to an inclusive date range
// @Tags Transactions
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.TransactionListResponse "Transaction list"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Start date after end date"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	start, end, hasRange, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	response := dto.TransactionListResponse{}
	if hasRange {
		filtered, err := h.ledger.FilterByRange(start, end)
		if err != nil {
			if err == services.ErrInvalidRange {
				return SendError(c, errors.ValidationInvalidRange)
			}
			return SendSystemError(c, err)
		}
		response.Transactions = filtered
		response.StartDate = start.String()
		response.EndDate = end.String()
	} else {
		response.Transactions = h.ledger.All()
	}
	response.Count = len(response.Transactions)

	return c.JSON(http.StatusOK, response)
}

// CreateTransaction records a new transaction at the head of the ledger
// @Summary Create transaction
// @Description Record a new income or expense transaction; fractional amounts are floored to integer minor units
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction payload"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload or TRANSACTION_002 - Invalid amount"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Category not valid for type"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !models.IsValidCategoryForType(req.Category, req.Type) {
		return SendError(c, errors.TransactionInvalidCategory)
	}

	tx, err := req.ToTransaction()
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}

	created, err := h.ledger.Create(tx)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{
		Transaction: created,
		Message:     "Transaction recorded",
	})
}

// UpdateTransaction replaces the mutable fields of an existing transaction
// @Summary Update transaction
// @Description Replace the fields of an existing transaction; its position in the ledger and its id are kept
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.TransactionRequest true "Transaction payload"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid id or TRANSACTION_002 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_005 - Category not valid for type"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !models.IsValidCategoryForType(req.Category, req.Type) {
		return SendError(c, errors.TransactionInvalidCategory)
	}

	tx, err := req.ToTransaction()
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount, errors.WithDetails(err.Error()))
	}
	tx.ID = id

	updated, err := h.ledger.Update(tx)
	if err != nil {
		if err == services.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{
		Transaction: updated,
		Message:     "Transaction updated",
	})
}

// DeleteTransaction removes a transaction after explicit confirmation
// @Summary Delete transaction
// @Description Remove a transaction by id; requires confirm=true to guard against accidental deletion
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} handlers.SuccessResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid id"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_003 - Confirmation missing"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if c.QueryParam("confirm") != "true" {
		return SendError(c, errors.TransactionConfirmationRequired)
	}

	if err := h.ledger.Delete(id); err != nil {
		if err == services.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}
