package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationMatches(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "shared token", a: "Baneshwor Road", b: "New Baneshwor", want: true},
		{name: "substring token", a: "Koramangala", b: "Koramangala 5th Block", want: true},
		{name: "case insensitive", a: "LAZIMPAT", b: "lazimpat heights", want: true},
		{name: "no overlap", a: "Thamel", b: "Patan", want: false},
		{name: "short tokens ignored", a: "st rd", b: "st marks", want: false},
		{name: "empty left", a: "", b: "Baneshwor", want: false},
		{name: "empty right", a: "Baneshwor", b: "", want: false},
		{name: "both empty", a: "", b: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationMatches(tt.a, tt.b))
		})
	}
}

func TestAreaMatches(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "within 20 percent", a: "1000 sq ft", b: "1150 sq ft", want: true},
		{name: "exactly 20 percent", a: "1000", b: "1200", want: true},
		{name: "beyond 20 percent", a: "1000 sq ft", b: "1300 sq ft", want: false},
		{name: "identical", a: "500", b: "500", want: true},
		{name: "denominator is first argument", a: "1200", b: "1000", want: true},
		{name: "asymmetric near boundary", a: "1000", b: "1250", want: false},
		{name: "reversed passes under first denominator", a: "1250", b: "1000", want: true},
		{name: "text before number", a: "approx 1000 sqft", b: "1100", want: true},
		{name: "no number left", a: "big", b: "1000", want: false},
		{name: "zero area", a: "0", b: "100", want: false},
		{name: "empty", a: "", b: "1000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AreaMatches(tt.a, tt.b))
		})
	}
}
