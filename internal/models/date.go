package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical wire format for calendar dates.
// Zero-padded ISO formatting keeps the string order identical to the
// calendar order, which the range filter depends on.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Date is a calendar date without a time-of-day or timezone component.
// It is always built from local year/month/day values, never from an
// epoch timestamp, so boundaries never shift near midnight.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized date. Out-of-range components roll over
// the same way time.Date does: day 0 of month M resolves to the last
// day of month M-1, month 13 to January of the next year, and so on.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf extracts the calendar date from a time value using its own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// String returns the canonical YYYY-MM-DD representation.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date as local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Compare returns -1, 0, or 1 as d is before, equal to, or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInt(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInt(int(d.Month), int(other.Month))
	default:
		return compareInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
