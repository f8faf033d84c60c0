package matching

import "strings"

// LocationMatches reports whether two addresses plausibly name the same
// area: any token of 3+ characters from one side appearing as a substring
// of (or containing) a token from the other. Empty input on either side is
// no match, not an error.
func LocationMatches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	wordsA := significantWords(a)
	wordsB := significantWords(b)

	for _, wa := range wordsA {
		for _, wb := range wordsB {
			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				return true
			}
		}
	}
	return false
}

func significantWords(s string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	words := fields[:0]
	for _, f := range fields {
		if len(f) >= 3 {
			words = append(words, f)
		}
	}
	return words
}

// AreaMatches reports whether two land sizes are within 20% of each other.
// The relative difference is taken against the first argument, so the
// comparison is asymmetric on purpose.
func AreaMatches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	areaA, okA := firstNumber(a)
	areaB, okB := firstNumber(b)
	if !okA || !okB || areaA == 0 || areaB == 0 {
		return false
	}

	diff := areaA - areaB
	if diff < 0 {
		diff = -diff
	}
	return diff/areaA <= 0.2
}

// firstNumber extracts the first numeric literal (digits and a decimal
// point) from a free-text size like "1000 sq ft".
func firstNumber(s string) (float64, bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	return parseLeadingFloat(s[start:])
}
