package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"wealthway/internal/models"
)

const (
	// FallbackNoTransactions is returned when there is nothing to analyze.
	FallbackNoTransactions = "There are no transactions to analyze yet. Record some income and expenses first, then ask again."
	// FallbackUnavailable is returned when advice generation fails for any reason.
	FallbackUnavailable = "Advice is unavailable right now. Please try again in a moment."
)

type advisorService struct {
	generator AdviceGeneratorInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
	timeout   time.Duration

	// generation implements latest-wins: a completion whose generation is
	// no longer current is discarded instead of overwriting lastAdvice.
	generation atomic.Uint64
	mu         sync.Mutex
	lastAdvice string
}

// NewAdvisorService creates a new AdvisorServiceInterface instance
func NewAdvisorService(generator AdviceGeneratorInterface, metrics MetricsRecorderInterface, timeout time.Duration) AdvisorServiceInterface {
	return &advisorService{
		generator: generator,
		metrics:   metrics,
		logger:    slog.Default().With("service", "advisor"),
		timeout:   timeout,
	}
}

// Advise produces one paragraph of spending advice for the given
// transactions. It never returns an error: failures and empty input map to
// static fallback text.
func (s *advisorService) Advise(ctx context.Context, transactions []models.Transaction, today models.Date) string {
	if len(transactions) == 0 {
		return FallbackNoTransactions
	}

	gen := s.generation.Add(1)
	prompt := buildAdvicePrompt(transactions, today)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	advice, err := s.generator.Generate(ctx, prompt)
	s.metrics.RecordProcessingTime("advisor.generate", time.Since(start))

	if err != nil || strings.TrimSpace(advice) == "" {
		s.metrics.IncrementCounter("advisor.request", map[string]string{"status": "failed"})
		s.logger.Warn("advice generation failed", "error", err)
		return FallbackUnavailable
	}

	s.metrics.IncrementCounter("advisor.request", map[string]string{"status": "success"})

	if s.generation.Load() == gen {
		s.mu.Lock()
		s.lastAdvice = advice
		s.mu.Unlock()
	}

	return advice
}

// LastAdvice returns the most recently accepted advice, empty if none.
func (s *advisorService) LastAdvice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAdvice
}

// buildAdvicePrompt condenses transactions into per-type category totals so
// the model sees aggregates rather than raw rows.
func buildAdvicePrompt(transactions []models.Transaction, today models.Date) string {
	type key struct {
		txType   string
		category string
	}

	totals := make(map[key]int64)
	order := make([]key, 0)
	for _, tx := range transactions {
		k := key{txType: tx.Type, category: tx.Category}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += tx.Amount
	}

	var b strings.Builder
	b.WriteString("You are a personal finance advisor. Today is ")
	b.WriteString(today.String())
	b.WriteString(".\n")
	b.WriteString("Here are the user's aggregated transactions for the selected period:\n")
	for _, k := range order {
		fmt.Fprintf(&b, "- %s / %s: %d\n", k.txType, k.category, totals[k])
	}
	b.WriteString("Write one short paragraph of practical advice about this spending pattern. Be specific and encouraging, and do not use bullet points.")
	return b.String()
}
