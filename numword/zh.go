package numword

import "strings"

// Chinese numeral tables. The value reading uses positional magnitudes
// (十 百 千) inside four-digit groups and group units (万 亿 万亿) between
// them. The digit readings map one rune per digit.
var (
	zhDigits    = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	zhTelDigits = [10]string{"零", "幺", "二", "三", "四", "五", "六", "七", "八", "九"}
	zhSmallUnit = [4]string{"", "十", "百", "千"}
	zhGroupUnit = [4]string{"", "万", "亿", "万亿"}
)

// zhDigitValue maps a numeral rune to its digit value for digit-reading
// parses. 幺 is the telephone-style 1.
var zhDigitValue = map[rune]int{
	'零': 0, '〇': 0, '一': 1, '幺': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// zhValueDigit maps digit runes usable inside a value reading.
// 两 is an accepted spoken variant of 2 and never generated.
var zhValueDigit = map[rune]int64{
	'一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

// zhUnitValue maps magnitude runes to their multipliers.
var zhUnitValue = map[rune]int64{
	'十': 10, '百': 100, '千': 1000, '万': 10_000, '亿': 100_000_000,
}

const (
	zhZero     = "零"
	zhNegative = "负"
	zhPoint    = "点"
)

// ConvertZh returns the Chinese value reading of n, e.g. 123 → 一百二十三.
// Zero returns 零. Negative numbers are prefixed with 负.
// Returns "" when |n| exceeds 10^16-1.
func ConvertZh(n int64) string {
	if n > maxAbs || n < -maxAbs {
		return ""
	}
	if n == 0 {
		return zhZero
	}

	var b strings.Builder
	if n < 0 {
		b.WriteString(zhNegative)
		n = -n
	}

	b.WriteString(zhGroups(n))
	return b.String()
}

// zhGroups renders a positive n by four-digit groups, high to low,
// inserting 零 between a group and a smaller following group.
func zhGroups(n int64) string {
	var groups [4]int64
	count := 0
	for i := 0; n > 0; i++ {
		groups[i] = n % 10_000
		n /= 10_000
		count = i + 1
	}

	var b strings.Builder
	needZero := false
	for i := count - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			if b.Len() > 0 {
				needZero = true
			}
			continue
		}
		if needZero || (b.Len() > 0 && g < 1000) {
			b.WriteString(zhZero)
		}
		// 10..19 contracts 一十 to 十, but only at the very front
		// of the whole number (十五万, not 一十五万).
		b.WriteString(zhGroup4(g, b.Len() == 0))
		b.WriteString(zhGroupUnit[i])
		needZero = false
	}
	return b.String()
}

// zhGroup4 renders n in [1, 9999] with 千/百/十 magnitudes and internal 零.
// leading contracts 一十X to 十X for n in [10, 19].
func zhGroup4(n int64, leading bool) string {
	var b strings.Builder
	zero := false
	for pos := 3; pos >= 0; pos-- {
		unit := int64(1)
		for i := 0; i < pos; i++ {
			unit *= 10
		}
		d := (n / unit) % 10
		if d == 0 {
			if b.Len() > 0 {
				zero = true
			}
			continue
		}
		if zero {
			b.WriteString(zhZero)
			zero = false
		}
		if !(leading && pos == 1 && d == 1 && n < 20) {
			b.WriteString(zhDigits[d])
		}
		b.WriteString(zhSmallUnit[pos])
	}
	return b.String()
}

// DigitsZh returns the digit-by-digit reading of an ASCII digit string.
// With telephone=true the digit 1 reads 幺 (the phone-number convention);
// otherwise it reads 一. Non-digit runes are passed through unchanged, so
// callers may feed strings that embed separators.
func DigitsZh(s string, telephone bool) string {
	table := &zhDigits
	if telephone {
		table = &zhTelDigits
	}
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(table[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseZh parses a Chinese value reading into an integer, e.g.
// 一百二十三 → 123. Accepts 两 for 2 and a leading 负 sign.
// Returns ok=false for empty input, digit-style sequences (二零二四),
// or any rune outside the numeral tables.
func ParseZh(s string) (int64, bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0, false
	}

	negative := false
	if rs[0] == '负' {
		negative = true
		rs = rs[1:]
		if len(rs) == 0 {
			return 0, false
		}
	}

	if len(rs) == 1 && rs[0] == '零' {
		return 0, true
	}

	var total, section, number int64
	lastWasDigit := false
	for _, r := range rs {
		switch {
		case r == '零':
			// 零 is a placeholder between magnitudes: 一千零五.
			if lastWasDigit {
				return 0, false
			}
		case zhValueDigit[r] != 0:
			if lastWasDigit {
				return 0, false // two digits without a magnitude: digit reading
			}
			number = zhValueDigit[r]
			lastWasDigit = true
		case r == '十' || r == '百' || r == '千':
			u := zhUnitValue[r]
			if number == 0 {
				if r != '十' {
					return 0, false // bare 百/千 without a digit
				}
				number = 1
			}
			section += number * u
			number = 0
			lastWasDigit = false
		case r == '万' || r == '亿':
			u := zhUnitValue[r]
			part := section + number
			if part == 0 {
				// Compound magnitude: 一万亿 parses as (一万)×亿.
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
	if negative {
		v = -v
	}
	return v, true
}

// ParseDigitsZh parses a digit-style sequence (零一二...九 plus 幺 and 〇)
// into its ASCII digit string, e.g. 幺二三 → "123".
// Returns ok=false when any rune is not a digit word.
func ParseDigitsZh(s string) (string, bool) {
	var b strings.Builder
	n := 0
	for _, r := range s {
		d, ok := zhDigitValue[r]
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

// IsZhNumeral reports whether r can appear in a Chinese number phrase
// (digits, 幺, 两, magnitudes, or the 负 sign).
func IsZhNumeral(r rune) bool {
	if _, ok := zhDigitValue[r]; ok {
		return true
	}
	if _, ok := zhUnitValue[r]; ok {
		return true
	}
	return r == '两' || r == '负'
}

// IsZhDigitWord reports whether r is a single-digit word (零〇幺一..九).
func IsZhDigitWord(r rune) bool {
	_, ok := zhDigitValue[r]
	return ok
}
