package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"wealthway/internal/cycle"
	"wealthway/internal/models"
	"wealthway/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidRange         = errors.New("start date is after end date")
	ErrInvalidCycleStartDay = errors.New("cycle start day must be between 1 and 28")
)

// transactionEnvelope wraps the persisted transaction list with a schema
// version so the payload format can evolve.
type transactionEnvelope struct {
	Version      int                  `json:"version"`
	Transactions []models.Transaction `json:"transactions"`
}

const transactionSchemaVersion = 1

type ledgerService struct {
	mu            sync.RWMutex
	store         repositories.BlobRepositoryInterface
	metrics       MetricsRecorderInterface
	logger        *slog.Logger
	transactions  []models.Transaction
	cycleStartDay int
}

// NewLedgerService loads persisted state and returns a ready ledger.
// A missing blob means a fresh install and is not an error; a corrupt
// blob is.
func NewLedgerService(store repositories.BlobRepositoryInterface, metrics MetricsRecorderInterface) (LedgerServiceInterface, error) {
	s := &ledgerService{
		store:         store,
		metrics:       metrics,
		logger:        slog.Default().With("service", "ledger"),
		cycleStartDay: cycle.DefaultStartDay,
	}

	if err := s.loadTransactions(); err != nil {
		return nil, err
	}
	if err := s.loadCycleStartDay(); err != nil {
		return nil, err
	}

	s.logger.Info("ledger loaded",
		"transactions", len(s.transactions),
		"cycle_start_day", s.cycleStartDay)

	return s, nil
}

func (s *ledgerService) loadTransactions() error {
	data, err := s.store.Load(repositories.BlobKeyTransactions)
	if err != nil {
		if errors.Is(err, repositories.ErrBlobNotFound) {
			s.transactions = []models.Transaction{}
			return nil
		}
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	var envelope transactionEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Version > 0 {
		s.transactions = envelope.Transactions
		if s.transactions == nil {
			s.transactions = []models.Transaction{}
		}
		return nil
	}

	// Older deployments stored a bare transaction array.
	var legacy []models.Transaction
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("failed to decode transactions blob: %w", err)
	}
	s.transactions = legacy
	return nil
}

func (s *ledgerService) loadCycleStartDay() error {
	data, err := s.store.Load(repositories.BlobKeyCycleStartDay)
	if err != nil {
		if errors.Is(err, repositories.ErrBlobNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load cycle start day: %w", err)
	}

	day, err := strconv.Atoi(string(data))
	if err != nil || !cycle.IsValidStartDay(day) {
		s.logger.Warn("ignoring invalid stored cycle start day", "value", string(data))
		return nil
	}

	s.cycleStartDay = day
	return nil
}

// persistTransactions writes the full transaction list. Callers must hold
// the write lock.
func (s *ledgerService) persistTransactions() error {
	envelope := transactionEnvelope{
		Version:      transactionSchemaVersion,
		Transactions: s.transactions,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	if err := s.store.Save(repositories.BlobKeyTransactions, data); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}
	return nil
}

// All returns every transaction, newest first.
func (s *ledgerService) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Create validates and stores a new transaction at the head of the list.
func (s *ledgerService) Create(tx models.Transaction) (models.Transaction, error) {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}

	if err := tx.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)

	if err := s.persistTransactions(); err != nil {
		s.transactions = s.transactions[1:]
		return models.Transaction{}, err
	}

	s.metrics.IncrementCounter("ledger.transaction.created", map[string]string{"type": tx.Type})
	s.metrics.RecordProcessingTime("ledger.persist", time.Since(start))
	s.metrics.RecordGauge("ledger.size", float64(len(s.transactions)), nil)
	s.logger.Info("transaction created", "id", tx.ID, "type", tx.Type, "amount", tx.Amount)

	return tx, nil
}

// Update replaces the stored transaction with the same ID.
func (s *ledgerService) Update(tx models.Transaction) (models.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.transactions {
		if existing.ID == tx.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Transaction{}, ErrTransactionNotFound
	}

	previous := s.transactions[idx]
	s.transactions[idx] = tx

	if err := s.persistTransactions(); err != nil {
		s.transactions[idx] = previous
		return models.Transaction{}, err
	}

	s.metrics.IncrementCounter("ledger.transaction.updated", map[string]string{"type": tx.Type})
	s.logger.Info("transaction updated", "id", tx.ID)

	return tx, nil
}

// Delete removes the transaction with the given ID.
func (s *ledgerService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.transactions {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTransactionNotFound
	}

	removed := s.transactions[idx]
	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)

	if err := s.persistTransactions(); err != nil {
		s.transactions = append(s.transactions[:idx], append([]models.Transaction{removed}, s.transactions[idx:]...)...)
		return err
	}

	s.metrics.IncrementCounter("ledger.transaction.deleted", map[string]string{"type": removed.Type})
	s.metrics.RecordGauge("ledger.size", float64(len(s.transactions)), nil)
	s.logger.Info("transaction deleted", "id", id)

	return nil
}

// FilterByRange returns transactions dated within [start, end] inclusive,
// preserving stored order.
func (s *ledgerService) FilterByRange(start, end models.Date) ([]models.Transaction, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]models.Transaction, 0)
	for _, tx := range s.transactions {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// Totals sums income and expense over [start, end] inclusive. Balance is
// income minus expense and may be negative.
func (s *ledgerService) Totals(start, end models.Date) (models.TotalsSummary, error) {
	filtered, err := s.FilterByRange(start, end)
	if err != nil {
		return models.TotalsSummary{}, err
	}

	var summary models.TotalsSummary
	for _, tx := range filtered {
		if tx.IsIncome() {
			summary.Income += tx.Amount
		} else {
			summary.Expense += tx.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary, nil
}

// CategoryBreakdown returns per-category expense totals over [start, end],
// ordered by descending total. Categories with no spending are omitted.
func (s *ledgerService) CategoryBreakdown(start, end models.Date) ([]models.CategoryTotal, error) {
	filtered, err := s.FilterByRange(start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, tx := range filtered {
		if tx.IsExpense() {
			totals[tx.Category] += tx.Amount
		}
	}

	breakdown := make([]models.CategoryTotal, 0, len(totals))
	for _, category := range models.ExpenseCategories() {
		if total, ok := totals[category]; ok {
			breakdown = append(breakdown, models.CategoryTotal{Category: category, Total: total})
			delete(totals, category)
		}
	}
	// Categories outside the standard vocabulary sort last.
	for category, total := range totals {
		breakdown = append(breakdown, models.CategoryTotal{Category: category, Total: total})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})
	return breakdown, nil
}

// CycleStartDay returns the configured billing cycle start day.
func (s *ledgerService) CycleStartDay() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cycleStartDay
}

// SetCycleStartDay updates and persists the billing cycle start day.
func (s *ledgerService) SetCycleStartDay(day int) error {
	if !cycle.IsValidStartDay(day) {
		return ErrInvalidCycleStartDay
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.cycleStartDay
	s.cycleStartDay = day

	if err := s.store.Save(repositories.BlobKeyCycleStartDay, []byte(strconv.Itoa(day))); err != nil {
		s.cycleStartDay = previous
		return fmt.Errorf("failed to persist cycle start day: %w", err)
	}

	s.metrics.IncrementCounter("ledger.cycle_start_day.updated", nil)
	s.logger.Info("cycle start day updated", "day", day)

	return nil
}

// CurrentCycle returns the billing cycle containing anchor.
func (s *ledgerService) CurrentCycle(anchor models.Date) models.CycleRange {
	start, end := cycle.Range(anchor, s.CycleStartDay())
	return models.CycleRange{Start: start, End: end}
}

// PreviousCycle returns the billing cycle immediately before the one
// containing anchor.
func (s *ledgerService) PreviousCycle(anchor models.Date) models.CycleRange {
	current := s.CurrentCycle(anchor)
	start, end := cycle.Previous(current.Start, s.CycleStartDay())
	return models.CycleRange{Start: start, End: end}
}
