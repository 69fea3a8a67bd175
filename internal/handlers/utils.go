package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"wealthway/internal/models"
)

var (
	errMalformedDate = errors.New("dates must use the YYYY-MM-DD format")
	errHalfOpenRange = errors.New("start_date and end_date must be provided together")
)

// parseDateRange reads the optional start_date/end_date query parameters.
// Both absent means no range filter. A half-open pair or a malformed date
// is rejected before any service call.
func parseDateRange(c echo.Context) (start, end models.Date, hasRange bool, err error) {
	startStr := c.QueryParam("start_date")
	endStr := c.QueryParam("end_date")

	if startStr == "" && endStr == "" {
		return models.Date{}, models.Date{}, false, nil
	}
	if startStr == "" || endStr == "" {
		return models.Date{}, models.Date{}, false, errHalfOpenRange
	}

	start, err = models.ParseDate(startStr)
	if err != nil {
		return models.Date{}, models.Date{}, false, errMalformedDate
	}
	end, err = models.ParseDate(endStr)
	if err != nil {
		return models.Date{}, models.Date{}, false, errMalformedDate
	}
	return start, end, true, nil
}

// parseAnchorDate reads the optional anchor query parameter, defaulting to
// today's local date.
func parseAnchorDate(c echo.Context) (models.Date, error) {
	anchorStr := c.QueryParam("anchor")
	if anchorStr == "" {
		return models.Today(), nil
	}
	anchor, err := models.ParseDate(anchorStr)
	if err != nil {
		return models.Date{}, errMalformedDate
	}
	return anchor, nil
}
