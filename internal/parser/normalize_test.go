package parser

import (
	"testing"

	"github.com/maltedev/flipkart-scraper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		hasError bool
	}{
		{name: "rupee symbol with comma", text: "₹12,999", expected: 12999},
		{name: "indian digit grouping", text: "₹1,49,900", expected: 149900},
		{name: "plain digits", text: "499", expected: 499},
		{name: "surrounding text", text: "Deal price: ₹999 only", expected: 999},
		{name: "no digits", text: "Free", hasError: true},
		{name: "empty", text: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParsePrice(tt.text)
			if tt.hasError {
				assert.ErrorIs(t, err, ErrMalformedPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		hasError bool
	}{
		{name: "plain decimal", text: "4.3", expected: 4.3},
		{name: "integer", text: "5", expected: 5},
		{name: "star suffix", text: "4.3★", expected: 4.3},
		{name: "padded", text: " 3.9 ", expected: 3.9},
		{name: "non numeric", text: "six", hasError: true},
		{name: "above five", text: "5.8", hasError: true},
		{name: "empty", text: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseRating(tt.text)
			if tt.hasError {
				assert.ErrorIs(t, err, ErrMalformedRating)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, value, 0.0001)
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		hasError bool
	}{
		{name: "ratings suffix", text: "1,234 Ratings & 567 Reviews", expected: 1234},
		{name: "plain", text: "42", expected: 42},
		{name: "no digits", text: "many", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseCount(tt.text)
			if tt.hasError {
				assert.ErrorIs(t, err, ErrMalformedCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestParseShareURL(t *testing.T) {
	u, err := ParseShareURL(" https://dl.flipkart.com/dl/x/p/itm1?pid=ABC ")
	require.NoError(t, err)
	assert.Equal(t, "https://dl.flipkart.com/dl/x/p/itm1?pid=ABC", u)

	_, err = ParseShareURL("/relative/path")
	assert.ErrorIs(t, err, ErrMalformedURL)

	_, err = ParseShareURL("javascript:void(0)")
	assert.ErrorIs(t, err, ErrMalformedURL)
}

func TestDetectAvailability(t *testing.T) {
	assert.Equal(t, models.OutOfStock, DetectAvailability(true))
	assert.Equal(t, models.InStock, DetectAvailability(false))
}
