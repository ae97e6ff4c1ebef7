// Package duration converts between clock-style duration text and whole seconds.
//
// Accepted input is "mm:ss" or "hh:mm:ss" with non-negative integer fields.
// Fields are not range-checked, so "90:00" is 5400 seconds. Anything else
// parses to zero; callers that care can use [ParseChecked] to tell a real
// zero apart from malformed text.
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse returns the number of seconds in text, or 0 when text is malformed.
func Parse(text string) int {
	secs, _ := ParseChecked(text)
	return secs
}

// ParseChecked is like Parse but also reports whether text was well formed.
func ParseChecked(text string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, false
		}
		if total > (math.MaxInt-n)/60 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// Format renders seconds as "hh:mm:ss". Hours are padded to two digits but
// never truncated. Negative values render as "00:00:00".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
