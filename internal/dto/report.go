package dto

import "wealthway/internal/models"

// Report Response DTOs

// SummaryResponse represents the income/expense/balance totals for a range
type SummaryResponse struct {
	Summary   models.TotalsSummary `json:"summary"`
	StartDate string               `json:"start_date,omitempty"`
	EndDate   string               `json:"end_date,omitempty"`
}

// CategoryBreakdownResponse represents expense totals grouped by category
type CategoryBreakdownResponse struct {
	Categories []models.CategoryTotal `json:"categories"`
	StartDate  string                 `json:"start_date,omitempty"`
	EndDate    string                 `json:"end_date,omitempty"`
}

// CycleResponse represents one billing cycle interval
type CycleResponse struct {
	Cycle         models.CycleRange `json:"cycle"`
	CycleStartDay int               `json:"cycle_start_day"`
}

// CategoryListResponse represents the fixed category vocabulary per type
type CategoryListResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}
