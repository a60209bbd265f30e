package dto

import (
	"testing"

	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		Name          string
		Raw           string
		Required      bool
		ExpectedMonth int
		ExpectedErr   error
	}{
		{Name: "valid month", Raw: "3", Required: true, ExpectedMonth: 3},
		{Name: "upper bound", Raw: "12", Required: true, ExpectedMonth: 12},
		{Name: "lower bound", Raw: "1", Required: true, ExpectedMonth: 1},
		{Name: "missing but required", Raw: "", Required: true, ExpectedErr: errs.ErrMonthRequired},
		{Name: "missing and optional", Raw: "", Required: false, ExpectedMonth: 0},
		{Name: "zero", Raw: "0", Required: true, ExpectedErr: errs.ErrInvalidMonth},
		{Name: "above range", Raw: "13", Required: true, ExpectedErr: errs.ErrInvalidMonth},
		{Name: "negative", Raw: "-2", Required: false, ExpectedErr: errs.ErrInvalidMonth},
		{Name: "not a number", Raw: "march", Required: true, ExpectedErr: errs.ErrInvalidMonth},
		{Name: "decimal", Raw: "3.5", Required: false, ExpectedErr: errs.ErrInvalidMonth},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			month, err := ParseMonth(tc.Raw, tc.Required)

			if tc.ExpectedErr != nil {
				require.ErrorIs(t, err, tc.ExpectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedMonth, month)
		})
	}
}

func TestParseFilter(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		filter, err := ParseFilter("", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, Filter{Page: DefaultPage, PerPage: DefaultPerPage}, filter)
	})

	t.Run("all params set", func(t *testing.T) {
		filter, err := ParseFilter("shirt", "2", "25", "7")

		require.NoError(t, err)
		assert.Equal(t, Filter{Search: "shirt", Page: 2, PerPage: 25, Month: 7}, filter)
	})

	t.Run("non-numeric pagination falls back", func(t *testing.T) {
		filter, err := ParseFilter("", "abc", "-5", "")

		require.NoError(t, err)
		assert.Equal(t, DefaultPage, filter.Page)
		assert.Equal(t, DefaultPerPage, filter.PerPage)
	})

	t.Run("invalid month rejected", func(t *testing.T) {
		_, err := ParseFilter("", "1", "10", "13")

		require.ErrorIs(t, err, errs.ErrInvalidMonth)
	})
}
