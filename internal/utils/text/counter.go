// Package text provides small helpers for measuring user-supplied strings.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode code points in s.
// Names and titles are measured in characters, not bytes, so that
// "Zürich" and "Zurich" have the same length.
//
// Examples:
//
//	CountRunes("Vogue")   // 5
//	CountRunes("Café")    // 4
//	CountRunes("")        // 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// LengthBetween reports whether s has between min and max code points, inclusive.
func LengthBetween(s string, min, max int) bool {
	n := CountRunes(s)
	return n >= min && n <= max
}
