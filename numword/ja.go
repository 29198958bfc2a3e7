package numword

import "strings"

// Japanese numeral tables. The value reading omits 一 before 十, 百, and 千
// (百二十三, not 一百二十三) but keeps it before 万 and 億.
var (
	jaDigits    = [10]string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	jaSmallUnit = [4]string{"", "十", "百", "千"}
	jaGroupUnit = [4]string{"", "万", "億", "兆"}
)

var jaDigitValue = map[rune]int{
	'〇': 0, '零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var jaUnitValue = map[rune]int64{
	'十': 10, '百': 100, '千': 1000, '万': 10_000, '億': 100_000_000, '兆': 1_000_000_000_000,
}

const (
	jaZero     = "〇"
	jaNegative = "マイナス"
	jaPoint    = "点"
)

// ConvertJa returns the Japanese value reading of n, e.g. 123 → 百二十三.
// Zero returns 〇. Negative numbers are prefixed with マイナス.
// Returns "" when |n| exceeds 10^16-1.
func ConvertJa(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n == 0 {
		return jaZero
	}

	var b strings.Builder
	if n < 0 {
		b.WriteString(jaNegative)
		n = -n
	}

	var groups [4]int64
	count := 0
	for i := 0; n > 0; i++ {
		groups[i] = n % 10_000
		n /= 10_000
		count = i + 1
	}

	for i := count - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		b.WriteString(jaGroup4(g, i > 0))
		b.WriteString(jaGroupUnit[i])
	}
	return b.String()
}

// jaGroup4 renders n in [1, 9999]. grouped marks that a group unit
// (万/億/兆) follows, which forces 一 for a bare group value of 1 (一万).
func jaGroup4(n int64, grouped bool) string {
	if n == 1 && grouped {
		return jaDigits[1]
	}
	var b strings.Builder
	for pos := 3; pos >= 0; pos-- {
		unit := int64(1)
		for i := 0; i < pos; i++ {
			unit *= 10
		}
		d := (n / unit) % 10
		if d == 0 {
			continue
		}
		// 一 is dropped before 十, 百, 千.
		if d != 1 || pos == 0 {
			b.WriteString(jaDigits[d])
		}
		b.WriteString(jaSmallUnit[pos])
	}
	return b.String()
}

// DigitsJa returns the digit-by-digit reading of an ASCII digit string,
// e.g. "2024" → 二〇二四. Non-digit runes are passed through unchanged.
func DigitsJa(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(jaDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseJa parses a Japanese value reading into an integer, e.g.
// 百二十三 → 123. A bare magnitude implies 1 (百 → 100).
// Returns ok=false for digit-style sequences (二〇二四) or any rune
// outside the numeral tables.
func ParseJa(s string) (int64, bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0, false
	}
	if len(rs) == 1 && (rs[0] == '〇' || rs[0] == '零') {
		return 0, true
	}

	var total, section, number int64
	lastWasDigit := false
	for _, r := range rs {
		switch {
		case r == '〇' || r == '零':
			return 0, false // digit-style zero never appears in a value reading
		case jaDigitValue[r] != 0:
			if lastWasDigit {
				return 0, false
			}
			number = int64(jaDigitValue[r])
			lastWasDigit = true
		case r == '十' || r == '百' || r == '千':
			u := jaUnitValue[r]
			if number == 0 {
				number = 1
			}
			section += number * u
			number = 0
			lastWasDigit = false
		case r == '万' || r == '億' || r == '兆':
			u := jaUnitValue[r]
			part := section + number
			if part == 0 {
				if total == 0 {
					return 0, false
				}
				total *= u
			} else {
				total += part * u
			}
			section = 0
			number = 0
			lastWasDigit = false
		default:
			return 0, false
		}
	}

	v := total + section + number
	if v == 0 {
		return 0, false
	}
	return v, true
}

// ParseDigitsJa parses a digit-style sequence (〇一..九, 零 accepted)
// into its ASCII digit string, e.g. 二〇二四 → "2024".
func ParseDigitsJa(s string) (string, bool) {
	var b strings.Builder
	n := 0
	for _, r := range s {
		d, ok := jaDigitValue[r]
		if !ok {
			return "", false
		}
		b.WriteByte(byte('0' + d))
		n++
	}
	if n == 0 {
		return "", false
	}
	return b.String(), true
}

// IsJaNumeral reports whether r can appear in a Japanese number phrase.
func IsJaNumeral(r rune) bool {
	if _, ok := jaDigitValue[r]; ok {
		return true
	}
	_, ok := jaUnitValue[r]
	return ok
}

// IsJaDigitWord reports whether r is a single-digit word (〇一..九).
func IsJaDigitWord(r rune) bool {
	_, ok := jaDigitValue[r]
	return ok
}
