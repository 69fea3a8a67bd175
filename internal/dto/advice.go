package dto

// Advice Request DTOs

// AdviceRequest scopes the transactions the advisory text is generated from.
// Both dates empty means the whole ledger.
type AdviceRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,calendar_date"`
	EndDate   string `json:"end_date" validate:"omitempty,calendar_date"`
}

// Advice Response DTOs

// AdviceResponse carries the advisory paragraph for the requested range
type AdviceResponse struct {
	Advice string `json:"advice"`
}
