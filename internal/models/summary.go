package models

// TotalsSummary aggregates a filtered transaction set by type.
type TotalsSummary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// CategoryTotal is one group in the expense-by-category breakdown.
// Groups are emitted in first-occurrence order of the category.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// CycleRange is an inclusive calendar-date interval of one billing cycle.
type CycleRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}
