package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceBounds(t *testing.T) {
	cases := []struct {
		text string
		min  int
		max  int
	}{
		{"₹3,500 - ₹4,200", 3500, 4200},
		{"₹1,200 - ₹1,800", 1200, 1800},
		{"₹2,000 - ₹5,000", 2000, 5000},
		{"₹8,500 - ₹10,000", 8500, 10000},
		{"Rs 999", 999, 999},
		{"1500-2500", 1500, 2500},
		{"around ₹2,000", 2000, 2000},
	}

	for _, tc := range cases {
		minPrice, maxPrice, err := PriceBounds(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.min, minPrice, tc.text)
		assert.Equal(t, tc.max, maxPrice, tc.text)
	}
}

func TestPriceBoundsNoDigits(t *testing.T) {
	for _, text := range []string{"", "price on request", "₹ - ₹"} {
		_, _, err := PriceBounds(text)
		assert.ErrorIs(t, err, ErrNoPrice, text)
	}
}

func TestPriceBoundsCommaOutsideNumber(t *testing.T) {
	// A trailing comma ends the number instead of joining the next one.
	minPrice, maxPrice, err := PriceBounds("₹1,200, or ₹1,800")
	require.NoError(t, err)
	assert.Equal(t, 1200, minPrice)
	assert.Equal(t, 1800, maxPrice)
}

func TestMinPriceFromRange(t *testing.T) {
	minPrice, err := MinPriceFromRange("₹2,500 - ₹3,000")
	require.NoError(t, err)
	assert.Equal(t, 2500, minPrice)

	_, err = MinPriceFromRange("TBD")
	assert.ErrorIs(t, err, ErrNoPrice)
}
