package gst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gstbill/internal/gst"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "Indian Rupee One Only"},
		{19, "Indian Rupee Nineteen Only"},
		{20, "Indian Rupee Twenty Only"},
		{45, "Indian Rupee Forty Five Only"},
		{100, "Indian Rupee One Hundred Only"},
		{118, "Indian Rupee One Hundred Eighteen Only"},
		{999, "Indian Rupee Nine Hundred Ninety Nine Only"},
		{1000, "Indian Rupee One Thousand Only"},
		{1180, "Indian Rupee One Thousand One Hundred Eighty Only"},
		{99999, "Indian Rupee Ninety Nine Thousand Nine Hundred Ninety Nine Only"},
		// Indian grouping: 100000 is one lakh, never "hundred thousand".
		{100000, "Indian Rupee One Lakh Only"},
		{250000, "Indian Rupee Two Lakh Fifty Thousand Only"},
		{10000000, "Indian Rupee One Crore Only"},
		{12345678, "Indian Rupee One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Only"},
		{913183, "Indian Rupee Nine Lakh Thirteen Thousand One Hundred Eighty Three Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, gst.AmountInWords(tc.amount), "amount %v", tc.amount)
	}
}

func TestAmountInWords_LargeAmounts(t *testing.T) {
	// The crore group recurses through the full Indian decomposition, so
	// amounts of thousands of crores and beyond stay in vocabulary.
	cases := []struct {
		amount float64
		want   string
	}{
		{2000000000, "Indian Rupee Two Hundred Crore Only"},
		{20000000000, "Indian Rupee Two Thousand Crore Only"},
		{25000000000, "Indian Rupee Two Thousand Five Hundred Crore Only"},
		{12345678901, "Indian Rupee One Thousand Two Hundred Thirty Four Crore Fifty Six Lakh Seventy Eight Thousand Nine Hundred One Only"},
		{100000000000000, "Indian Rupee One Crore Crore Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, gst.AmountInWords(tc.amount), "amount %v", tc.amount)
	}
}

func TestAmountInWords_PaiseRounding(t *testing.T) {
	// Nearest rupee, not truncation.
	assert.Equal(t, "Indian Rupee Two Only", gst.AmountInWords(1.50))
	assert.Equal(t, "Indian Rupee One Only", gst.AmountInWords(1.49))
	assert.Equal(t, "Zero Rupees Only", gst.AmountInWords(0.4))
}

func TestAmountInWords_InvalidInput(t *testing.T) {
	assert.Equal(t, gst.InvalidAmountSentinel, gst.AmountInWords(-5))
	assert.Equal(t, gst.InvalidAmountSentinel, gst.AmountInWords(math.NaN()))
	assert.Equal(t, gst.InvalidAmountSentinel, gst.AmountInWords(math.Inf(1)))
	assert.Equal(t, gst.InvalidAmountSentinel, gst.AmountInWords(math.Inf(-1)))
}
