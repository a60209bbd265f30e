package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")

	ErrInvalidMonth  = errors.New("Invalid month parameter. Please provide a value between 1 and 12.")
	ErrMonthRequired = errors.New("Month parameter is required")

	ErrNoProducts   = errors.New("No products available")
	ErrNoItemsFound = errors.New("No items found for the selected month")

	ErrNoUpstreamData = errors.New("No product available")
	ErrInsertFailed   = errors.New("Failed to insert data into database")

	ErrFetchProducts      = errors.New("Failed to fetch products from database")
	ErrFetchStatistics    = errors.New("Failed to fetch statistics from the database")
	ErrFetchSalesStats    = errors.New("Failed to fetch sales statistics")
	ErrFetchCategoryStats = errors.New("Failed to fetch category statistics")
	ErrFetchCombinedStats = errors.New("Failed to fetch combined statistics")
)

var errorMap = map[error]int{
	ErrInternalServer:     ErrStatusInternalServer,
	ErrInvalidMonth:       ErrStatusClient,
	ErrMonthRequired:      ErrStatusClient,
	ErrNoProducts:         ErrStatusNotFound,
	ErrNoItemsFound:       ErrStatusNotFound,
	ErrNoUpstreamData:     ErrStatusClient,
	ErrInsertFailed:       ErrStatusInternalServer,
	ErrFetchProducts:      ErrStatusInternalServer,
	ErrFetchStatistics:    ErrStatusInternalServer,
	ErrFetchSalesStats:    ErrStatusInternalServer,
	ErrFetchCategoryStats: ErrStatusInternalServer,
	ErrFetchCombinedStats: ErrStatusInternalServer,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}

	return errStatusCode
}
