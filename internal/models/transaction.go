package models

import (
	"errors"

	"github.com/google/uuid"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrCategoryRequired       = errors.New("transaction category is required")
)

// Transaction is a single income or expense record.
//
// Amount is an integer in the smallest currency unit; fractional input
// is floored at entry time, never here. Category is expected to belong
// to the vocabulary for Type, but the model does not re-check that
// after creation: vocabulary membership is a boundary concern.
type Transaction struct {
	ID       uuid.UUID `json:"id"`
	Date     Date      `json:"date"`
	Amount   int64     `json:"amount"`
	Category string    `json:"category"`
	Memo     string    `json:"memo"`
	Type     string    `json:"type"`
}

// Validate checks the structural invariants of a transaction.
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	if t.Category == "" {
		return ErrCategoryRequired
	}
	return nil
}

// IsIncome reports whether the transaction is an income record.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction is an expense record.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsValidTransactionType checks if the transaction type is valid.
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
