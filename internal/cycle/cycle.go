// Package cycle computes billing-cycle date ranges. A cycle always
// begins on a fixed day-of-month between 1 and 28; the upper bound
// exists so a cycle start never lands on a day a month might not have.
package cycle

import (
	"wealthway/internal/models"
)

const (
	// MinStartDay and MaxStartDay bound the configurable cycle start day.
	MinStartDay = 1
	MaxStartDay = 28

	// DefaultStartDay makes a cycle coincide with the calendar month.
	DefaultStartDay = 1
)

// IsValidStartDay reports whether day is a usable cycle start day.
func IsValidStartDay(day int) bool {
	return day >= MinStartDay && day <= MaxStartDay
}

// Range returns the inclusive [start, end] interval of the cycle
// containing anchor, for a cycle beginning on startDay of some month.
//
// When the anchor's day is before startDay the cycle started in the
// previous month. The end is the day before startDay in the month after
// the start; for startDay 1 that is day 0 of the next-next month, which
// normalizes to the last calendar day of the start month.
func Range(anchor models.Date, startDay int) (models.Date, models.Date) {
	startMonth := anchor.Month
	if anchor.Day < startDay {
		startMonth--
	}

	start := models.NewDate(anchor.Year, startMonth, startDay)
	end := models.NewDate(start.Year, start.Month+1, startDay-1)

	return start, end
}

// Previous returns the cycle immediately before the one starting at
// currentStart. Re-anchoring on the day before the current start keeps
// consecutive cycles adjacent with no gap or overlap, regardless of
// month length.
func Previous(currentStart models.Date, startDay int) (models.Date, models.Date) {
	return Range(currentStart.AddDays(-1), startDay)
}
