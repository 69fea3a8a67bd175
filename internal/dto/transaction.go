package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"wealthway/internal/models"
)

var ErrInvalidAmount = errors.New("amount must be a non-negative number")

// Transaction Request DTOs

// TransactionRequest represents the payload for creating or updating a
// transaction. Amount arrives as a string and is floored to integer minor
// units; fractional input is never round-tripped back to the client.
type TransactionRequest struct {
	Date     string `json:"date" validate:"required,calendar_date"`
	Amount   string `json:"amount" validate:"required"`
	Category string `json:"category" validate:"required,min=1,max=100"`
	Memo     string `json:"memo" validate:"max=255"`
	Type     string `json:"type" validate:"required,transaction_type"`
}

// ParseAmount converts the submitted amount string to integer minor units,
// flooring any fractional part.
func (r *TransactionRequest) ParseAmount() (int64, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if amount.IsNegative() {
		return 0, ErrInvalidAmount
	}
	return amount.Floor().IntPart(), nil
}

// ToTransaction builds a domain transaction from the request.
// The date must already have passed validation.
func (r *TransactionRequest) ToTransaction() (models.Transaction, error) {
	amount, err := r.ParseAmount()
	if err != nil {
		return models.Transaction{}, err
	}
	date, err := models.ParseDate(r.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		Date:     date,
		Amount:   amount,
		Category: r.Category,
		Memo:     r.Memo,
		Type:     r.Type,
	}, nil
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
	Message     string             `json:"message,omitempty"`
}

// TransactionListResponse represents a filtered list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	StartDate    string               `json:"start_date,omitempty"`
	EndDate      string               `json:"end_date,omitempty"`
}
