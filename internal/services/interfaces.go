package services

import (
	"context"
	"time"

	"wealthway/internal/models"

	"github.com/google/uuid"
)

// LedgerServiceInterface defines the contract for transaction ledger operations
type LedgerServiceInterface interface {
	All() []models.Transaction
	Create(tx models.Transaction) (models.Transaction, error)
	Update(tx models.Transaction) (models.Transaction, error)
	Delete(id uuid.UUID) error
	FilterByRange(start, end models.Date) ([]models.Transaction, error)
	Totals(start, end models.Date) (models.TotalsSummary, error)
	CategoryBreakdown(start, end models.Date) ([]models.CategoryTotal, error)
	CycleStartDay() int
	SetCycleStartDay(day int) error
	CurrentCycle(anchor models.Date) models.CycleRange
	PreviousCycle(anchor models.Date) models.CycleRange
}

// AdviceGeneratorInterface produces advisory text from a prepared prompt
type AdviceGeneratorInterface interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AdvisorServiceInterface defines the contract for spending advice generation
type AdvisorServiceInterface interface {
	Advise(ctx context.Context, transactions []models.Transaction, today models.Date) string
	LastAdvice() string
}

// SampleDataServiceInterface generates realistic ledger data for development
type SampleDataServiceInterface interface {
	GenerateTransactions(count int, from, to models.Date) []models.Transaction
	Seed(count int, from, to models.Date) ([]models.Transaction, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
