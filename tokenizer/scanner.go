package tokenizer

import (
	"strings"
	"unicode"

	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/internal/runeset"
)

// English segmentation works on a word-level token stream. The scanner
// below produces raw tokens; mergeEn groups the shapes the English
// grammar can consume (month-name dates, clock times with meridiem
// markers, symbol-prefixed money) into single candidate spans.

type enTokKind int

const (
	tokWord enTokKind = iota
	tokNum
	tokSpace
	tokOther
)

type enToken struct {
	text  string
	start int
	end   int
	kind  enTokKind
}

var enMonthSet = func() map[string]bool {
	m := map[string]bool{}
	for _, w := range grammar.MonthWordsEn() {
		m[strings.ToLower(w)] = true
	}
	return m
}()

var enAmPmSet = func() map[string]bool {
	m := map[string]bool{}
	for _, w := range grammar.AmPmWordsEn() {
		m[strings.ToLower(w)] = true
	}
	return m
}()

var enCurrencySet = map[string]bool{"$": true, "€": true, "£": true}

func segmentEn(text string) []Span {
	return mergeEn(scanEn(text))
}

// scanEn splits text into words, numbers, spaces and single-rune
// punctuation. Numbers absorb interior group and date separators, a
// trailing ordinal suffix and a trailing percent sign; dotted meridiem
// markers (a.m.) scan as one word.
func scanEn(text string) []enToken {
	rs := []rune(text)
	var toks []enToken
	i := 0
	for i < len(rs) {
		start := i
		r := rs[i]
		switch {
		case isMeridiemDotted(rs, i):
			i += 4
			toks = append(toks, enToken{string(rs[start:i]), start, i, tokWord})
		case runeset.IsASCIILetter(r):
			for i < len(rs) && runeset.IsASCIILetter(rs[i]) {
				i++
			}
			toks = append(toks, enToken{string(rs[start:i]), start, i, tokWord})
		case runeset.IsDigit(r):
			i = scanEnNumber(rs, i)
			toks = append(toks, enToken{string(rs[start:i]), start, i, tokNum})
		case unicode.IsSpace(r):
			for i < len(rs) && unicode.IsSpace(rs[i]) {
				i++
			}
			toks = append(toks, enToken{string(rs[start:i]), start, i, tokSpace})
		default:
			i++
			toks = append(toks, enToken{string(rs[start:i]), start, i, tokOther})
		}
	}
	return toks
}

func isMeridiemDotted(rs []rune, i int) bool {
	if i+4 > len(rs) {
		return false
	}
	c := unicode.ToLower(rs[i])
	if c != 'a' && c != 'p' {
		return false
	}
	if rs[i+1] != '.' || unicode.ToLower(rs[i+2]) != 'm' || rs[i+3] != '.' {
		return false
	}
	// Must not be the start of a longer word.
	return i+4 == len(rs) || !runeset.IsASCIILetter(rs[i+4])
}

func scanEnNumber(rs []rune, i int) int {
	for i < len(rs) {
		r := rs[i]
		if runeset.IsDigit(r) {
			i++
			continue
		}
		if isEnNumJoiner(r) && i+1 < len(rs) && runeset.IsDigit(rs[i+1]) {
			i++
			continue
		}
		break
	}
	// Ordinal suffix: 1st, 2nd, 3rd, 4th.
	if i+2 <= len(rs) {
		suf := strings.ToLower(string(rs[i:min(i+2, len(rs))]))
		if (suf == "st" || suf == "nd" || suf == "rd" || suf == "th") &&
			(i+2 == len(rs) || !runeset.IsASCIILetter(rs[i+2])) {
			i += 2
		}
	}
	if i < len(rs) && (rs[i] == '%' || rs[i] == '％') {
		i++
	}
	return i
}

func isEnNumJoiner(r rune) bool {
	switch r {
	case ',', '.', '/', '-', ':':
		return true
	}
	return false
}

// mergeEn groups scanner tokens into spans.
func mergeEn(toks []enToken) []Span {
	var spans []Span
	emit := func(from, to int, k Kind) {
		var b strings.Builder
		for _, t := range toks[from:to] {
			b.WriteString(t.text)
		}
		spans = append(spans, Span{
			Text:  b.String(),
			Start: toks[from].start,
			End:   toks[to-1].end,
			Kind:  k,
		})
	}
	i := 0
	for i < len(toks) {
		t := toks[i]
		switch {
		case t.kind == tokWord && enMonthSet[strings.ToLower(t.text)] &&
			i+2 < len(toks) && toks[i+1].kind == tokSpace && toks[i+1].text == " " &&
			toks[i+2].kind == tokNum && isDayNumber(toks[i+2].text):
			j := i + 3
			// Optional ", 2024" or " 2024".
			switch {
			case j+2 < len(toks) && toks[j].kind == tokOther && toks[j].text == "," &&
				toks[j+1].kind == tokSpace && toks[j+1].text == " " &&
				toks[j+2].kind == tokNum && isYearNumber(toks[j+2].text):
				j += 3
			case j+1 < len(toks) && toks[j].kind == tokSpace && toks[j].text == " " &&
				toks[j+1].kind == tokNum && isYearNumber(toks[j+1].text):
				j += 2
			}
			emit(i, j, Date)
			i = j
		case t.kind == tokOther && enCurrencySet[t.text] &&
			i+1 < len(toks) && toks[i+1].kind == tokNum:
			emit(i, i+2, Money)
			i += 2
		case t.kind == tokOther && (t.text == "-" || t.text == "−") &&
			i+1 < len(toks) && toks[i+1].kind == tokNum &&
			(i == 0 || toks[i-1].kind == tokSpace || toks[i-1].kind == tokOther):
			emit(i, i+2, classifyEnNum(toks[i+1].text))
			i += 2
		case t.kind == tokNum:
			k := classifyEnNum(t.text)
			j := i + 1
			if k == Time {
				// Attach a meridiem marker, with or without a space.
				switch {
				case j+1 < len(toks) && toks[j].kind == tokSpace && toks[j].text == " " &&
					toks[j+1].kind == tokWord && enAmPmSet[strings.ToLower(toks[j+1].text)]:
					j += 2
				case j < len(toks) && toks[j].kind == tokWord && enAmPmSet[strings.ToLower(toks[j].text)]:
					j++
				}
			}
			emit(i, j, k)
			i = j
		default:
			spans = appendPlain(spans, t.text, t.start, t.end)
			i++
		}
	}
	return spans
}

// isDayNumber accepts a 1-2 digit day, with or without ordinal suffix.
func isDayNumber(s string) bool {
	s = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(
		strings.ToLower(s), "st"), "nd"), "rd"), "th")
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, r := range s {
		if !runeset.IsASCIIDigit(r) {
			return false
		}
	}
	return true
}

func isYearNumber(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if !runeset.IsASCIIDigit(r) {
			return false
		}
	}
	return true
}

func classifyEnNum(s string) Kind {
	switch {
	case strings.ContainsAny(s, "%％"):
		return Fraction
	case strings.Contains(s, ":"):
		return Time
	case strings.Count(s, "-") == 2 || strings.Count(s, "/") == 2:
		return Date
	case strings.Contains(s, "/"):
		return Fraction
	default:
		return Numeric
	}
}
