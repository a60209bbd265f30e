package dto

import (
	"strconv"

	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/errs"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Filter carries the typed query parameters of the product listing endpoint.
// Month is 0 when the month filter is absent.
type Filter struct {
	Search  string
	Page    int
	PerPage int
	Month   int
}

// ParseMonth validates a raw month query value. required distinguishes the
// statistics endpoints, which demand a month, from the listing endpoint where
// it is an optional filter.
func ParseMonth(raw string, required bool) (int, error) {
	if raw == "" {
		if required {
			return 0, errs.ErrMonthRequired
		}

		return 0, nil
	}

	month, err := strconv.Atoi(raw)
	if err != nil || month < 1 || month > 12 {
		return 0, errs.ErrInvalidMonth
	}

	return month, nil
}

// ParseFilter performs the single validation pass for the listing endpoint.
// Page and per_page fall back to their defaults when absent or not a positive
// integer; a malformed month is rejected before any query runs.
func ParseFilter(search, page, perPage, month string) (Filter, error) {
	monthNum, err := ParseMonth(month, false)
	if err != nil {
		return Filter{}, err
	}

	return Filter{
		Search:  search,
		Page:    parsePositiveInt(page, DefaultPage),
		PerPage: parsePositiveInt(perPage, DefaultPerPage),
		Month:   monthNum,
	}, nil
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
