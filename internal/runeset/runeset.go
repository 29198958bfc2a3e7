// Package runeset provides rune classification shared by the tokenizer and
// the per-language grammars.
//
// Classification covers the scripts the engine normalizes: ASCII and
// fullwidth digits, CJK Unified Ideographs, Hiragana, and Katakana.
// Fullwidth digits (U+FF10..U+FF19) are treated as digits everywhere so that
// mixed-width input matches the same rules as ASCII input.
//
// All functions are safe for concurrent use.
package runeset

// IsASCIIDigit reports whether r is in '0'..'9'.
func IsASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsFullwidthDigit reports whether r is a fullwidth digit (０..９).
func IsFullwidthDigit(r rune) bool {
	return r >= '０' && r <= '９'
}

// IsDigit reports whether r is an ASCII or fullwidth digit.
func IsDigit(r rune) bool {
	return IsASCIIDigit(r) || IsFullwidthDigit(r)
}

// DigitValue returns the numeric value of an ASCII or fullwidth digit,
// or -1 when r is not a digit.
func DigitValue(r rune) int {
	switch {
	case IsASCIIDigit(r):
		return int(r - '0')
	case IsFullwidthDigit(r):
		return int(r - '０')
	}
	return -1
}

// ToASCIIDigit maps a fullwidth digit to its ASCII form and returns other
// runes unchanged.
func ToASCIIDigit(r rune) rune {
	if IsFullwidthDigit(r) {
		return '0' + (r - '０')
	}
	return r
}

// IsHan reports whether r is in the CJK Unified Ideographs block.
// The extension blocks are not needed: every numeral, unit, and marker
// character the grammars recognize lives in the base block.
func IsHan(r rune) bool {
	return r >= '一' && r <= '鿿'
}

// IsHiragana reports whether r is in the Hiragana block (U+3040..U+309F).
func IsHiragana(r rune) bool {
	return r >= '぀' && r <= 'ゟ'
}

// IsKatakana reports whether r is in the Katakana block (U+30A0..U+30FF).
func IsKatakana(r rune) bool {
	return r >= '゠' && r <= 'ヿ'
}

// IsASCIILetter reports whether r is in 'a'..'z' or 'A'..'Z'.
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// NormalizeDigits rewrites every fullwidth digit in s to its ASCII form.
// Returns s unchanged (no allocation) when it contains no fullwidth digits.
func NormalizeDigits(s string) string {
	changed := false
	for _, r := range s {
		if IsFullwidthDigit(r) {
			changed = true
			break
		}
	}
	if !changed {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, ToASCIIDigit(r))
	}
	return string(out)
}
