package grammar

import (
	"strconv"
	"strings"
	"time"

	"github.com/SpenserCai/wetext/internal/runeset"
)

// Shared rendering helpers. Renderers return ("", false) to reject a
// structurally matched span; the helpers below follow the same
// convention.

// splitAmount splits a written amount into integer and fractional digit
// strings. Fullwidth digits are folded to ASCII and group commas are
// stripped from the integer part. At most one decimal point is allowed
// and both present parts must be pure digits.
func splitAmount(s string) (intPart, fracPart string, ok bool) {
	s = runeset.NormalizeDigits(s)
	intPart = s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if fracPart == "" || strings.ContainsAny(fracPart, ".,") {
			return "", "", false
		}
	}
	intPart = strings.ReplaceAll(intPart, ",", "")
	if intPart == "" {
		return "", "", false
	}
	for _, r := range intPart + fracPart {
		if !runeset.IsASCIIDigit(r) {
			return "", "", false
		}
	}
	return intPart, fracPart, true
}

// parseIntDigits parses an ASCII digit string, tolerating leading zeros.
func parseIntDigits(s string) (int64, bool) {
	s = runeset.NormalizeDigits(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatInt renders an int64 in decimal.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// hasLeadingZero reports whether a digit string starts with a redundant
// zero ("007" but not "0").
func hasLeadingZero(s string) bool {
	return len(s) > 1 && s[0] == '0'
}

// padTwo left-pads a digit string to two characters.
func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// calendarValid reports whether year/month/day name a real calendar
// date. A zero year means "unknown" and skips the day-of-month overflow
// check a leap year would need.
func calendarValid(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	y := year
	if y == 0 {
		y = 2000 // leap year, permissive for day 29 in February
	}
	t := time.Date(y, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Month() == time.Month(month) && t.Day() == day
}

// clockValid reports whether hour/minute/second form a valid clock
// reading. Hour 24 is accepted in written input.
func clockValid(hour, minute, second int) bool {
	return hour >= 0 && hour <= 24 && minute >= 0 && minute <= 59 && second >= 0 && second <= 59
}
