package grammar

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"

	"github.com/SpenserCai/wetext/internal/runeset"
	"github.com/SpenserCai/wetext/numword"
)

// English written→spoken rules. There is no English spoken→written rule
// set: Compile rejects the pair and the caller reports a configuration
// error.

// enMonths holds the month names and the lowercase lookup used by the
// date rules. Names come from the en_US locale table rather than being
// hard-coded.
type enMonths struct {
	names []string       // 1-based canonical names
	index map[string]int // lowercase name → month
}

func loadEnMonths() enMonths {
	m := enMonths{names: make([]string, 13), index: make(map[string]int, 12)}
	for mo := time.January; mo <= time.December; mo++ {
		t := time.Date(2000, mo, 1, 0, 0, 0, 0, time.UTC)
		name := monday.Format(t, "January", monday.LocaleEnUS)
		m.names[int(mo)] = name
		m.index[strings.ToLower(name)] = int(mo)
	}
	return m
}

func (m enMonths) alts() []string {
	var alts []string
	for _, name := range m.names[1:] {
		alts = append(alts, name, strings.ToLower(name))
	}
	return alts
}

// renderAmountEn converts a written amount to spoken form, reading a
// leading-zero integer digit-by-digit and the fraction as spelled
// digits ("3.14" → "three point one four").
func renderAmountEn(s string) (string, bool) {
	intPart, fracPart, ok := splitAmount(s)
	if !ok {
		return "", false
	}
	var out string
	if hasLeadingZero(intPart) {
		out = numword.DigitsEn(intPart)
	} else {
		n, ok := parseIntDigits(intPart)
		if !ok {
			return "", false
		}
		out = numword.CardinalEn(n)
		if out == "" {
			return "", false
		}
	}
	if fracPart != "" {
		out += " point " + numword.DigitsEn(fracPart)
	}
	return out, true
}

// spokenDateEn renders a date in the spoken US form
// "January fifteenth, twenty twenty-four".
func spokenDateEn(months enMonths, year, month, day int) (string, bool) {
	if !calendarValid(year, month, day) {
		return "", false
	}
	out := months.names[month] + " " + numword.OrdinalEn(int64(day))
	if year > 0 {
		out += ", " + numword.YearEn(year)
	}
	return out, true
}

var enAmPm = map[string]string{
	"am": "AM", "a.m.": "AM",
	"pm": "PM", "p.m.": "PM",
}

func canonicalAmPm(s string) string {
	if s == "" {
		return ""
	}
	return enAmPm[strings.ToLower(s)]
}

// ordinalSuffixFor returns the correct written suffix for n (1 → "st").
func ordinalSuffixFor(n int64) string {
	if h := n % 100; h >= 11 && h <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func enTNRules() ([]*Rule, error) {
	cur, err := currencyFor(En)
	if err != nil {
		return nil, err
	}
	months := loadEnMonths()

	rules := []*Rule{
		{
			Category: CatDate,
			Name:     "date_text",
			pattern: seq(
				word("month", months.alts()...),
				lit(" "),
				run("day", classDigit, 1, 2),
				opt(word("dsuf", "st", "nd", "rd", "th")),
				opt(opt(lit(",")), lit(" "), run("year", classDigit, 4, 4)),
			),
			render: func(c Captures) (string, bool) {
				month := months.index[strings.ToLower(c.Get("month"))]
				day, ok := parseIntDigits(c.Get("day"))
				if !ok {
					return "", false
				}
				if c.Has("dsuf") && c.Get("dsuf") != ordinalSuffixFor(day) {
					return "", false
				}
				year := int64(0)
				if c.Has("year") {
					if year, ok = parseIntDigits(c.Get("year")); !ok {
						return "", false
					}
				}
				return spokenDateEn(months, int(year), month, int(day))
			},
		},
		{
			Category: CatDate,
			Name:     "date_numeric",
			pattern:  seq(run("date", classDate, 5, 10)),
			render: func(c Captures) (string, bool) {
				text := runeset.NormalizeDigits(c.Get("date"))
				sep := byte(0)
				for _, s := range []byte{'-', '/', '.'} {
					if strings.IndexByte(text, s) >= 0 {
						sep = s
						break
					}
				}
				if sep == 0 {
					return "", false
				}
				parts := strings.Split(text, string(sep))
				if len(parts) != 3 {
					return "", false
				}
				// One part must be an unambiguous 4-digit year.
				if len(parts[0]) != 4 && len(parts[2]) != 4 {
					return "", false
				}
				t, err := dateparse.ParseAny(text)
				if err != nil {
					return "", false
				}
				y := t.Year()
				if y < 1000 || y > 2999 {
					return "", false
				}
				return spokenDateEn(months, y, int(t.Month()), t.Day())
			},
		},
		{
			Category: CatTime,
			Name:     "time",
			pattern: seq(
				run("hour", classDigit, 1, 2),
				lit(":"),
				run("minute", classDigit, 2, 2),
				opt(lit(":"), run("second", classDigit, 2, 2)),
				opt(opt(lit(" ")),
					word("ampm", "a.m.", "p.m.", "A.M.", "P.M.", "AM", "PM", "am", "pm")),
			),
			render: func(c Captures) (string, bool) {
				h, ok := parseIntDigits(c.Get("hour"))
				if !ok {
					return "", false
				}
				min, _ := parseIntDigits(c.Get("minute"))
				sec := int64(0)
				if c.Has("second") {
					sec, _ = parseIntDigits(c.Get("second"))
				}
				if !clockValid(int(h), int(min), int(sec)) {
					return "", false
				}
				out := numword.CardinalEn(h)
				switch {
				case min == 0 && !c.Has("second"):
					out += " o'clock"
				case min < 10:
					out += " oh " + numword.CardinalEn(min)
				default:
					out += " " + numword.CardinalEn(min)
				}
				if c.Has("second") {
					out += " and " + numword.CardinalEn(sec) + " seconds"
				}
				if marker := canonicalAmPm(c.Get("ampm")); marker != "" {
					out += " " + marker
				}
				return out, true
			},
		},
		{
			Category: CatMoney,
			Name:     "money",
			pattern: seq(
				word("cur", cur.symbolAlts()...),
				run("value", classAmount, 1, 20),
			),
			render: func(c Captures) (string, bool) {
				unit := cur.Symbols[c.Get("cur")]
				intPart, fracPart, ok := splitAmount(runeset.NormalizeDigits(c.Get("value")))
				if !ok || len(fracPart) > 2 {
					return "", false
				}
				n, ok := parseIntDigits(intPart)
				if !ok {
					return "", false
				}
				words := numword.CardinalEn(n)
				if words == "" {
					return "", false
				}
				unitWord := unit
				if n != 1 {
					unitWord = cur.Plurals[unit]
				}
				out := words + " " + unitWord
				if fracPart != "" {
					cents, _ := parseIntDigits(fracPart)
					if len(fracPart) == 1 {
						cents *= 10 // $1.5 means fifty cents
					}
					if cents > 0 {
						sub := cur.Subunits[unit]
						subWord := sub
						if cents != 1 {
							subWord = cur.SubunitPlurals[sub]
						}
						out += " and " + numword.CardinalEn(cents) + " " + subWord
					}
				}
				return out, true
			},
		},
		{
			Category: CatFraction,
			Name:     "percent",
			pattern: seq(
				run("value", classAmount, 1, 20),
				word("", "%", "％"),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := renderAmountEn(c.Get("value"))
				if !ok {
					return "", false
				}
				return amount + " percent", true
			},
		},
		{
			Category: CatFraction,
			Name:     "fraction",
			pattern: seq(
				opt(word("sign", "-", "−")),
				run("numerator", classDigit, 1, 16),
				lit("/"),
				run("denominator", classDigit, 1, 16),
			),
			render: func(c Captures) (string, bool) {
				num, ok1 := parseIntDigits(c.Get("numerator"))
				den, ok2 := parseIntDigits(c.Get("denominator"))
				if !ok1 || !ok2 || den < 2 {
					return "", false
				}
				var denWord string
				if den == 2 {
					denWord = "half"
					if num != 1 {
						denWord = "halves"
					}
				} else {
					denWord = numword.OrdinalEn(den)
					if num != 1 {
						denWord += "s"
					}
				}
				out := numword.CardinalEn(num) + " " + denWord
				if c.Has("sign") {
					out = "negative " + out
				}
				return out, true
			},
		},
		{
			Category: CatNumber,
			Name:     "decimal",
			pattern: seq(
				opt(word("sign", "-", "−")),
				run("int", classDigit, 1, 16),
				lit("."),
				run("frac", classDigit, 1, 16),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := renderAmountEn(
					runeset.NormalizeDigits(c.Get("int")) + "." + runeset.NormalizeDigits(c.Get("frac")))
				if !ok {
					return "", false
				}
				if c.Has("sign") {
					amount = "negative " + amount
				}
				return amount, true
			},
		},
		{
			Category: CatNumber,
			Name:     "ordinal",
			pattern: seq(
				run("num", classDigit, 1, 16),
				word("suf", "st", "nd", "rd", "th"),
			),
			render: func(c Captures) (string, bool) {
				n, ok := parseIntDigits(c.Get("num"))
				if !ok || c.Get("suf") != ordinalSuffixFor(n) {
					return "", false
				}
				out := numword.OrdinalEn(n)
				if out == "" {
					return "", false
				}
				return out, true
			},
		},
		{
			Category: CatNumber,
			Name:     "signed",
			pattern: seq(
				word("sign", "-", "−"),
				run("num", classDigit, 1, 16),
			),
			render: func(c Captures) (string, bool) {
				s := runeset.NormalizeDigits(c.Get("num"))
				n, ok := parseIntDigits(s)
				if !ok || hasLeadingZero(s) {
					return "", false
				}
				out := numword.CardinalEn(n)
				if out == "" {
					return "", false
				}
				return "negative " + out, true
			},
		},
		{
			Category: CatNumber,
			Name:     "number",
			pattern:  seq(run("num", classAmount, 1, 20)),
			render: func(c Captures) (string, bool) {
				return renderAmountEn(c.Get("num"))
			},
		},
	}
	return rules, nil
}
