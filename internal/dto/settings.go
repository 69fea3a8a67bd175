package dto

// Settings Request DTOs

// UpdateCycleStartDayRequest represents the payload for changing the billing
// cycle start day. Days past 28 are rejected so every cycle starts on a day
// that exists in every month.
type UpdateCycleStartDayRequest struct {
	CycleStartDay int `json:"cycle_start_day" validate:"required,cycle_start_day"`
}

// Settings Response DTOs

// CycleStartDayResponse represents the stored billing cycle start day
type CycleStartDayResponse struct {
	CycleStartDay int    `json:"cycle_start_day"`
	Message       string `json:"message,omitempty"`
}
