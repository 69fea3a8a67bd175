package models

// Fixed category vocabulary, scoped per transaction type.
// Each list is ordered for display and ends with the catch-all Other.
const (
	CategoryFood             = "Food"
	CategoryHousingUtilities = "Housing & Utilities"
	CategoryTransportation   = "Transportation"
	CategoryHobbiesLeisure   = "Hobbies & Leisure"
	CategoryDailyGoods       = "Daily Goods & Clothing"
	CategoryHealthMedical    = "Health & Medical"
	CategoryEducation        = "Education"

	CategorySalary     = "Salary"
	CategoryBonus      = "Bonus"
	CategoryInvestment = "Investment"
	CategoryWindfall   = "Windfall"
	CategorySideJob    = "Side Job"

	CategoryOther = "Other"
)

// ExpenseCategories returns the fixed expense vocabulary in display order.
func ExpenseCategories() []string {
	return []string{
		CategoryFood,
		CategoryHousingUtilities,
		CategoryTransportation,
		CategoryHobbiesLeisure,
		CategoryDailyGoods,
		CategoryHealthMedical,
		CategoryEducation,
		CategoryOther,
	}
}

// IncomeCategories returns the fixed income vocabulary in display order.
func IncomeCategories() []string {
	return []string{
		CategorySalary,
		CategoryBonus,
		CategoryInvestment,
		CategoryWindfall,
		CategorySideJob,
		CategoryOther,
	}
}

// CategoriesForType returns the vocabulary for the given transaction type.
// An unknown type yields an empty list.
func CategoriesForType(transactionType string) []string {
	switch transactionType {
	case TransactionTypeIncome:
		return IncomeCategories()
	case TransactionTypeExpense:
		return ExpenseCategories()
	default:
		return nil
	}
}

// IsValidCategoryForType checks a category against its type's vocabulary.
func IsValidCategoryForType(category, transactionType string) bool {
	for _, valid := range CategoriesForType(transactionType) {
		if category == valid {
			return true
		}
	}
	return false
}
