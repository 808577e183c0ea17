// Package skccnum parses SKCC member numbers. Numbers on the air carry tier
// suffixes and endorsement multipliers ("12345", "12345C", "12345Tx2",
// "12345Sx10"); award counting always keys on the base numeric part.
package skccnum

import "regexp"

var leadingDigits = regexp.MustCompile(`^(\d+)`)

// Base extracts the numeric member number from a full exchange string.
// Returns "" when no leading digits are present.
func Base(skcc string) string {
	s := firstField(skcc)
	if s == "" {
		return ""
	}
	return leadingDigits.FindString(s)
}

// Valid reports whether the string carries a usable member number.
func Valid(skcc string) bool {
	return Base(skcc) != ""
}

// Suffix returns the tier letter following the base number: 'C', 'T' or 'S',
// or 0 when the number carries no tier suffix.
func Suffix(skcc string) byte {
	s := firstField(skcc)
	base := leadingDigits.FindString(s)
	if base == "" || len(s) == len(base) {
		return 0
	}
	switch c := s[len(base)]; c {
	case 'C', 'T', 'S', 'c', 't', 's':
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		return c
	}
	return 0
}

// firstField trims whitespace and returns the first whitespace-separated
// token ("12345 Tx2" -> "12345").
func firstField(s string) string {
	start := 0
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	end := start
	for end < len(s) && s[end] != ' ' && s[end] != '\t' {
		end++
	}
	return s[start:end]
}
