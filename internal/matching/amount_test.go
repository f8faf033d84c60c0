package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "lakhs with unit word", input: "50 Lakhs", want: 5000000, ok: true},
		{name: "single lakh", input: "1 Lakh", want: 100000, ok: true},
		{name: "crore", input: "1 Crore", want: 10000000, ok: true},
		{name: "fractional crore", input: "1.5 Crore", want: 15000000, ok: true},
		{name: "k suffix", input: "750k", want: 750000, ok: true},
		{name: "m suffix", input: "2m", want: 2000000, ok: true},
		{name: "plain number", input: "850000", want: 850000, ok: true},
		{name: "number with commas", input: "8,50,000", want: 850000, ok: true},
		{name: "decimal", input: "12.5 Lakhs", want: 1250000, ok: true},
		{name: "empty", input: "", want: 0, ok: false},
		{name: "no digits", input: "abc", want: 0, ok: false},
		{name: "negotiable text", input: "price on request", want: 0, ok: false},
		{name: "literal zero", input: "0", want: 0, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParseAmountUnitIsExclusive(t *testing.T) {
	// "lakh" contains a bare "k"; only the lakh multiplier may apply.
	got, ok := ParseAmount("50 Lakhs")
	assert.True(t, ok)
	assert.InDelta(t, 5000000, got, 0.001)
}

func TestPriceCategory(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		ok     bool
		want   string
	}{
		{name: "just under 10L", amount: 999999, ok: true, want: BandUnder10L},
		{name: "exactly 10L", amount: 1000000, ok: true, want: Band10L25L},
		{name: "mid band", amount: 1800000, ok: true, want: Band10L25L},
		{name: "exactly 25L", amount: 2500000, ok: true, want: Band25L50L},
		{name: "exactly 50L", amount: 5000000, ok: true, want: Band50L1Cr},
		{name: "exactly 1Cr", amount: 10000000, ok: true, want: BandAbove1Cr},
		{name: "well above 1Cr", amount: 35000000, ok: true, want: BandAbove1Cr},
		{name: "parsed zero is a band", amount: 0, ok: true, want: BandUnder10L},
		{name: "unparsable is unknown", amount: 0, ok: false, want: BandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceCategory(tt.amount, tt.ok))
		})
	}
}
