package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wealthway/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubGenerator returns canned responses for advisor tests.
type stubGenerator struct {
	generate func(ctx context.Context, prompt string) (string, error)
	prompts  []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.generate(ctx, prompt)
}

type AdvisorServiceTestSuite struct {
	suite.Suite
}

func TestAdvisorServiceSuite(t *testing.T) {
	suite.Run(t, new(AdvisorServiceTestSuite))
}

func (s *AdvisorServiceTestSuite) sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:       uuid.New(),
			Date:     models.NewDate(2024, time.June, 1),
			Amount:   500,
			Category: models.CategoryFood,
			Type:     models.TransactionTypeExpense,
		},
		{
			ID:       uuid.New(),
			Date:     models.NewDate(2024, time.June, 2),
			Amount:   1500,
			Category: models.CategoryFood,
			Type:     models.TransactionTypeExpense,
		},
		{
			ID:       uuid.New(),
			Date:     models.NewDate(2024, time.June, 25),
			Amount:   300000,
			Category: models.CategorySalary,
			Type:     models.TransactionTypeIncome,
		},
	}
}

func (s *AdvisorServiceTestSuite) TestAdvise_EmptyInput() {
	gen := &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "should not be called", nil
	}}
	advisor := NewAdvisorService(gen, noopMetrics{}, time.Second)

	advice := advisor.Advise(context.Background(), nil, models.NewDate(2024, time.June, 15))

	s.Equal(FallbackNoTransactions, advice)
	s.Empty(gen.prompts, "generator must not be invoked for empty input")
}

func (s *AdvisorServiceTestSuite) TestAdvise_Success() {
	gen := &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "Spend less on food.", nil
	}}
	advisor := NewAdvisorService(gen, noopMetrics{}, time.Second)

	advice := advisor.Advise(context.Background(), s.sampleTransactions(), models.NewDate(2024, time.June, 15))

	s.Equal("Spend less on food.", advice)
	s.Equal("Spend less on food.", advisor.LastAdvice())
}

func (s *AdvisorServiceTestSuite) TestAdvise_PromptAggregatesCategories() {
	gen := &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "ok", nil
	}}
	advisor := NewAdvisorService(gen, noopMetrics{}, time.Second)

	advisor.Advise(context.Background(), s.sampleTransactions(), models.NewDate(2024, time.June, 15))

	s.Require().Len(gen.prompts, 1)
	prompt := gen.prompts[0]
	s.Contains(prompt, "2024-06-15")
	s.Contains(prompt, "expense / Food: 2000", "amounts for the same type and category must be summed")
	s.Contains(prompt, "income / Salary: 300000")
	s.NotContains(prompt, "Food: 500", "raw rows must not leak into the prompt")
}

func (s *AdvisorServiceTestSuite) TestAdvise_GeneratorError() {
	gen := &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "", errors.New("upstream unavailable")
	}}
	advisor := NewAdvisorService(gen, noopMetrics{}, time.Second)

	advice := advisor.Advise(context.Background(), s.sampleTransactions(), models.NewDate(2024, time.June, 15))

	s.Equal(FallbackUnavailable, advice)
	s.Empty(advisor.LastAdvice())
}

func (s *AdvisorServiceTestSuite) TestAdvise_BlankCompletion() {
	gen := &stubGenerator{generate: func(context.Context, string) (string, error) {
		return "   \n", nil
	}}
	advisor := NewAdvisorService(gen, noopMetrics{}, time.Second)

	advice := advisor.Advise(context.Background(), s.sampleTransactions(), models.NewDate(2024, time.June, 15))
	s.Equal(FallbackUnavailable, advice)
}

func (s *AdvisorServiceTestSuite) TestAdvise_StaleCompletionDiscarded() {
	var advisor AdvisorServiceInterface

	calls := 0
	gen := &stubGenerator{}
	gen.generate = func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls == 1 {
			// A newer request finishes while this one is still in flight.
			newer := advisor.Advise(ctx, s.sampleTransactions(), models.NewDate(2024, time.June, 16))
			s.Equal("fresh advice", newer)
			return "stale advice", nil
		}
		return "fresh advice", nil
	}
	advisor = NewAdvisorService(gen, noopMetrics{}, time.Second)

	result := advisor.Advise(context.Background(), s.sampleTransactions(), models.NewDate(2024, time.June, 15))

	s.Equal("stale advice", result)
	s.Equal("fresh advice", advisor.LastAdvice(), "the older completion must not overwrite newer advice")
}
