package services

import (
	"math/rand"
	"time"

	"wealthway/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

type sampleDataService struct {
	ledger LedgerServiceInterface
	faker  *gofakeit.Faker
	rng    *rand.Rand
}

const expenseShare = 0.80

// NewSampleDataService creates a generator of realistic ledger data for
// development seeding.
func NewSampleDataService(ledger LedgerServiceInterface) SampleDataServiceInterface {
	seed := time.Now().UnixNano()
	return &sampleDataService{
		ledger: ledger,
		faker:  gofakeit.New(uint64(seed)),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// GenerateTransactions produces count transactions dated within [from, to].
func (s *sampleDataService) GenerateTransactions(count int, from, to models.Date) []models.Transaction {
	if count <= 0 || to.Before(from) {
		return []models.Transaction{}
	}

	spanDays := 0
	for d := from; d.Before(to); d = d.AddDays(1) {
		spanDays++
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		date := from.AddDays(s.rng.Intn(spanDays + 1))

		var tx models.Transaction
		if s.rng.Float64() < expenseShare {
			tx = s.generateExpense(date)
		} else {
			tx = s.generateIncome(date)
		}
		transactions = append(transactions, tx)
	}

	return transactions
}

// Seed generates transactions and records them through the ledger.
func (s *sampleDataService) Seed(count int, from, to models.Date) ([]models.Transaction, error) {
	generated := s.GenerateTransactions(count, from, to)

	created := make([]models.Transaction, 0, len(generated))
	for _, tx := range generated {
		stored, err := s.ledger.Create(tx)
		if err != nil {
			return created, err
		}
		created = append(created, stored)
	}
	return created, nil
}

func (s *sampleDataService) generateExpense(date models.Date) models.Transaction {
	category := s.pickExpenseCategory()
	minAmount, maxAmount := expenseAmountRange(category)

	return models.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Amount:   minAmount + s.rng.Int63n(maxAmount-minAmount+1),
		Category: category,
		Memo:     s.expenseMemo(category),
		Type:     models.TransactionTypeExpense,
	}
}

func (s *sampleDataService) generateIncome(date models.Date) models.Transaction {
	category := s.pickIncomeCategory()
	minAmount, maxAmount := incomeAmountRange(category)

	return models.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Amount:   minAmount + s.rng.Int63n(maxAmount-minAmount+1),
		Category: category,
		Memo:     s.incomeMemo(category),
		Type:     models.TransactionTypeIncome,
	}
}

// pickExpenseCategory uses a weighted distribution so everyday categories
// dominate the generated data.
func (s *sampleDataService) pickExpenseCategory() string {
	roll := s.rng.Float64()
	switch {
	case roll < 0.35:
		return models.CategoryFood
	case roll < 0.50:
		return models.CategoryDailyGoods
	case roll < 0.62:
		return models.CategoryTransportation
	case roll < 0.74:
		return models.CategoryHobbiesLeisure
	case roll < 0.84:
		return models.CategoryHousingUtilities
	case roll < 0.91:
		return models.CategoryHealthMedical
	case roll < 0.96:
		return models.CategoryEducation
	default:
		return models.CategoryOther
	}
}

func (s *sampleDataService) pickIncomeCategory() string {
	roll := s.rng.Float64()
	switch {
	case roll < 0.70:
		return models.CategorySalary
	case roll < 0.80:
		return models.CategorySideJob
	case roll < 0.90:
		return models.CategoryBonus
	case roll < 0.95:
		return models.CategoryInvestment
	default:
		return models.CategoryWindfall
	}
}

func expenseAmountRange(category string) (int64, int64) {
	ranges := map[string][2]int64{
		models.CategoryFood:             {400, 6000},
		models.CategoryHousingUtilities: {3000, 90000},
		models.CategoryTransportation:   {150, 4000},
		models.CategoryHobbiesLeisure:   {500, 15000},
		models.CategoryDailyGoods:       {200, 5000},
		models.CategoryHealthMedical:    {800, 12000},
		models.CategoryEducation:        {1000, 20000},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 300, 8000
}

func incomeAmountRange(category string) (int64, int64) {
	ranges := map[string][2]int64{
		models.CategorySalary:     {180000, 450000},
		models.CategoryBonus:      {100000, 800000},
		models.CategoryInvestment: {1000, 60000},
		models.CategorySideJob:    {5000, 80000},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 1000, 50000
}

func (s *sampleDataService) expenseMemo(category string) string {
	switch category {
	case models.CategoryFood:
		return s.faker.Lunch()
	case models.CategoryDailyGoods:
		return s.faker.ProductName()
	case models.CategoryTransportation:
		return s.faker.CarModel()
	case models.CategoryHobbiesLeisure:
		return s.faker.Hobby()
	case models.CategoryHousingUtilities:
		return "Utility bill"
	case models.CategoryHealthMedical:
		return "Clinic visit"
	case models.CategoryEducation:
		return s.faker.BookTitle()
	default:
		return s.faker.ProductName()
	}
}

func (s *sampleDataService) incomeMemo(category string) string {
	switch category {
	case models.CategorySalary:
		return "Monthly salary - " + s.faker.Company()
	case models.CategoryBonus:
		return "Bonus - " + s.faker.Company()
	case models.CategorySideJob:
		return s.faker.JobTitle()
	case models.CategoryInvestment:
		return "Dividend"
	default:
		return "Misc income"
	}
}
