package convo

import (
	"strconv"
	"strings"
)

// NormalizePrice strips currency formatting from a raw price string and
// parses it as a positive integer. Negative, zero and non-numeric inputs
// report ok=false.
func NormalizePrice(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	negative := strings.HasPrefix(s, "-")

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil || negative || n <= 0 {
		return 0, false
	}
	return n, true
}

// PositiveInt parses the leading integer of a string ("3 bedrooms" -> 3).
// Anything without a positive leading integer reports ok=false.
func PositiveInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// IntOrZero parses the leading integer of a string, defaulting to zero
// when absent or unparseable. Used for the optional numeric draft fields.
func IntOrZero(raw string) int {
	if n, ok := PositiveInt(raw); ok {
		return n
	}
	return 0
}
