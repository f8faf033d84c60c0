package matching

import (
	"strconv"
	"strings"
)

// Price bands. Two unknown bands never count as equal for scoring.
const (
	BandUnknown  = "unknown"
	BandUnder10L = "under-10L"
	Band10L25L   = "10L-25L"
	Band25L50L   = "25L-50L"
	Band50L1Cr   = "50L-1Cr"
	BandAbove1Cr = "above-1Cr"
)

// ParseAmount converts a human-written price or budget string ("50 Lakhs",
// "1.2 Crore", "750k") into a numeric value. ok is false when no number
// can be extracted; callers must keep that distinct from a parsed zero.
func ParseAmount(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	cleaned := stripAmount(strings.ToLower(value))
	num, ok := parseLeadingFloat(cleaned)
	if !ok {
		return 0, false
	}

	// Unit detection runs on the original text, not the stripped literal.
	// One unit per value: "lakh" contains a bare "k", so the chain is
	// exclusive.
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "lakh"):
		num *= 100000
	case strings.Contains(lower, "crore"):
		num *= 10000000
	case strings.Contains(lower, "k"):
		num *= 1000
	case strings.Contains(lower, "m"):
		num *= 1000000
	}

	return num, true
}

// stripAmount drops everything except digits, the decimal point and the
// unit letters k, l, m.
func stripAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == 'k' || r == 'l' || r == 'm' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseLeadingFloat parses the numeric literal at the start of s, ignoring
// any trailing unit letters left over from stripping.
func parseLeadingFloat(s string) (float64, bool) {
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 || s[:end] == "." {
		return 0, false
	}
	num, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// PriceCategory buckets an amount into a coarse band. Thresholds are
// exclusive on the upper end of each band, so exactly 1,000,000 falls in
// 10L-25L. A missing amount yields BandUnknown.
func PriceCategory(amount float64, ok bool) string {
	if !ok {
		return BandUnknown
	}
	switch {
	case amount < 1000000:
		return BandUnder10L
	case amount < 2500000:
		return Band10L25L
	case amount < 5000000:
		return Band25L50L
	case amount < 10000000:
		return Band50L1Cr
	default:
		return BandAbove1Cr
	}
}
