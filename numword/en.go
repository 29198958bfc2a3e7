package numword

import (
	"strings"

	ntw "moul.io/number-to-words"
)

// maxEnAbs bounds English cardinal conversion. number-to-words covers far
// more, but the grammars never tag longer digit runs.
const maxEnAbs = 999_999_999_999

var enDigits = [10]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// enOrdinalIrregular maps cardinal final words to irregular ordinal forms.
var enOrdinalIrregular = map[string]string{
	"one":    "first",
	"two":    "second",
	"three":  "third",
	"five":   "fifth",
	"eight":  "eighth",
	"nine":   "ninth",
	"twelve": "twelfth",
}

// CardinalEn returns the English cardinal reading of n,
// e.g. 123 → "one hundred twenty-three".
// Returns "" when |n| exceeds the supported range.
func CardinalEn(n int64) string {
	if n > maxEnAbs || n < -maxEnAbs {
		return ""
	}
	if n < 0 {
		return "negative " + ntw.IntegerToEnUs(int(-n))
	}
	return ntw.IntegerToEnUs(int(n))
}

// OrdinalEn returns the English ordinal reading of n,
// e.g. 15 → "fifteenth", 23 → "twenty-third".
func OrdinalEn(n int64) string {
	cardinal := CardinalEn(n)
	if cardinal == "" || n < 0 {
		return ""
	}
	return ordinalizeEn(cardinal)
}

// ordinalizeEn rewrites the final word of a cardinal phrase to its ordinal
// form, honoring hyphenated tens ("twenty-three" → "twenty-third").
func ordinalizeEn(cardinal string) string {
	cut := strings.LastIndexAny(cardinal, " -")
	head, last := "", cardinal
	if cut >= 0 {
		head, last = cardinal[:cut+1], cardinal[cut+1:]
	}
	if irr, ok := enOrdinalIrregular[last]; ok {
		return head + irr
	}
	if strings.HasSuffix(last, "y") {
		return head + strings.TrimSuffix(last, "y") + "ieth"
	}
	return head + last + "th"
}

// YearEn returns the conventional English reading of a calendar year:
// pairwise for most years ("nineteen ninety-nine", "twenty twenty-four"),
// "X thousand" forms for 2000..2009, cardinal below 1000.
func YearEn(y int) string {
	switch {
	case y < 1000:
		return CardinalEn(int64(y))
	case y%1000 == 0:
		return CardinalEn(int64(y/1000)) + " thousand"
	case y >= 2000 && y < 2010:
		return "two thousand " + CardinalEn(int64(y%100))
	}
	hi := CardinalEn(int64(y / 100))
	lo := y % 100
	if lo == 0 {
		return hi + " hundred"
	}
	if lo < 10 {
		return hi + " oh " + enDigits[lo]
	}
	return hi + " " + CardinalEn(int64(lo))
}

// DigitsEn returns the digit-by-digit reading of an ASCII digit string,
// e.g. "007" → "zero zero seven". Non-digit runes are dropped.
func DigitsEn(s string) string {
	words := make([]string, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			words = append(words, enDigits[r-'0'])
		}
	}
	return strings.Join(words, " ")
}
