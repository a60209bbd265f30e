package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceBucketsOrder(t *testing.T) {
	require.Len(t, PriceBuckets, 10)

	expected := []string{
		"0 - 100",
		"101 - 200",
		"201 - 300",
		"301 - 400",
		"401 - 500",
		"501 - 600",
		"601 - 700",
		"701 - 800",
		"801 - 900",
		"901 - above",
	}

	for i, bucket := range PriceBuckets {
		assert.Equal(t, expected[i], bucket.Label)
	}
}

func TestBucketLabel(t *testing.T) {
	testCases := []struct {
		Name     string
		Price    float64
		Expected string
	}{
		{Name: "zero price", Price: 0, Expected: "0 - 100"},
		{Name: "lowest bucket upper bound", Price: 100, Expected: "0 - 100"},
		{Name: "just above lowest bucket", Price: 100.01, Expected: "101 - 200"},
		{Name: "second bucket", Price: 150, Expected: "101 - 200"},
		{Name: "last bounded bucket upper bound", Price: 900, Expected: "801 - 900"},
		{Name: "first open-ended price", Price: 901, Expected: "901 - above"},
		{Name: "far above all bounds", Price: 12345.67, Expected: "901 - above"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, BucketLabel(tc.Price))
		})
	}
}
