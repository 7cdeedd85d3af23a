/*
* Utility functions for formatting output.
 */
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Print string with max length, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-1] + "…"
}

// Formats an integer with thousands separators, e.g. 1234567 -> "1,234,567".
func Number(n int) string {
	s := strconv.Itoa(n)

	start := 0
	if n < 0 {
		start = 1
	}

	var build strings.Builder
	build.WriteString(s[:start])

	for i, digit := range s[start:] {
		if i > 0 && (len(s)-start-i)%3 == 0 {
			build.WriteRune(',')
		}

		build.WriteRune(digit)
	}

	return build.String()
}

// Formats an impact score for display. One decimal place.
func Score(value float64) string {
	return fmt.Sprintf("%.1f", value)
}
