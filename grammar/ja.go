package grammar

import (
	"github.com/SpenserCai/wetext/internal/runeset"
	"github.com/SpenserCai/wetext/numword"
)

// Japanese rule sets. Structure mirrors the Chinese ones; the readings
// differ (counted values drop 一 before 十/百/千, years are digit-read
// with 〇, negatives use マイナス).

var jaNoonWords = []string{"午前", "午後"}

// renderAmountJa converts a written amount to value reading with a
// spoken decimal point.
func renderAmountJa(s string) (string, bool) {
	intPart, fracPart, ok := splitAmount(s)
	if !ok {
		return "", false
	}
	n, ok := parseIntDigits(intPart)
	if !ok {
		return "", false
	}
	out := numword.ConvertJa(n)
	if out == "" {
		return "", false
	}
	if hasLeadingZero(intPart) {
		out = numword.DigitsJa(intPart)
	}
	if fracPart != "" {
		out += "点" + numword.DigitsJa(fracPart)
	}
	return out, true
}

func jaTNRules() ([]*Rule, error) {
	cur, err := currencyFor(Ja)
	if err != nil {
		return nil, err
	}

	dateParts := func(c Captures) (string, bool) {
		parts := map[string]string{}
		year, _ := parseIntDigits(c.Get("year"))
		parts["year"] = numword.DigitsJa(runeset.NormalizeDigits(c.Get("year"))) + "年"
		month := 0
		if c.Has("month") {
			m, ok := parseIntDigits(c.Get("month"))
			if !ok || m < 1 || m > 12 {
				return "", false
			}
			month = int(m)
			parts["month"] = numword.ConvertJa(m) + "月"
		}
		if c.Has("day") {
			d, ok := parseIntDigits(c.Get("day"))
			if !ok || !calendarValid(int(year), month, int(d)) {
				return "", false
			}
			parts["day"] = numword.ConvertJa(d) + "日"
		}
		return joinParts(dateOrder, parts), true
	}

	timeParts := func(c Captures, colon bool) (string, bool) {
		h, ok := parseIntDigits(c.Get("hour"))
		if !ok {
			return "", false
		}
		min, sec := int64(0), int64(0)
		if c.Has("minute") {
			if min, ok = parseIntDigits(c.Get("minute")); !ok {
				return "", false
			}
		}
		if c.Has("second") {
			if sec, ok = parseIntDigits(c.Get("second")); !ok {
				return "", false
			}
		}
		if !clockValid(int(h), int(min), int(sec)) {
			return "", false
		}
		parts := map[string]string{
			"noon": c.Get("noon"),
			"hour": numword.ConvertJa(h) + "時",
		}
		if c.Has("minute") && !(colon && c.Get("minute") == "00" && !c.Has("second")) {
			parts["minute"] = numword.ConvertJa(min) + "分"
		}
		if c.Has("second") {
			parts["second"] = numword.ConvertJa(sec) + "秒"
		}
		return joinParts(timeOrder[TN], parts), true
	}

	rules := []*Rule{
		{
			Category: CatDate,
			Name:     "date_ymd",
			pattern: seq(
				run("year", classDigit, 2, 4), lit("年"),
				opt(run("month", classDigit, 1, 2), lit("月"),
					opt(run("day", classDigit, 1, 2), lit("日"))),
			),
			render: dateParts,
		},
		{
			Category: CatDate,
			Name:     "date_iso",
			pattern: seq(
				run("year", classDigit, 4, 4),
				word("sep", "-", "/", "."),
				run("month", classDigit, 1, 2),
				word("sep2", "-", "/", "."),
				run("day", classDigit, 1, 2),
			),
			render: func(c Captures) (string, bool) {
				if c.Get("sep") != c.Get("sep2") {
					return "", false
				}
				return dateParts(c)
			},
		},
		{
			Category: CatDate,
			Name:     "date_md",
			pattern: seq(
				run("month", classDigit, 1, 2), lit("月"),
				opt(run("day", classDigit, 1, 2), lit("日")),
			),
			render: func(c Captures) (string, bool) {
				m, ok := parseIntDigits(c.Get("month"))
				if !ok || m < 1 || m > 12 {
					return "", false
				}
				out := numword.ConvertJa(m) + "月"
				if c.Has("day") {
					d, ok := parseIntDigits(c.Get("day"))
					if !ok || !calendarValid(0, int(m), int(d)) {
						return "", false
					}
					out += numword.ConvertJa(d) + "日"
				}
				return out, true
			},
		},
		{
			Category: CatTime,
			Name:     "time_colon",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classDigit, 1, 2),
				word("", ":", "："),
				run("minute", classDigit, 2, 2),
				opt(word("", ":", "："), run("second", classDigit, 2, 2)),
			),
			render: func(c Captures) (string, bool) { return timeParts(c, true) },
		},
		{
			Category: CatTime,
			Name:     "time_marked",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classDigit, 1, 2), lit("時"),
				run("minute", classDigit, 1, 2), lit("分"),
				opt(run("second", classDigit, 1, 2), lit("秒")),
			),
			render: func(c Captures) (string, bool) { return timeParts(c, false) },
		},
		{
			Category: CatTime,
			Name:     "time_half",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classDigit, 1, 2), lit("時半"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := parseIntDigits(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + numword.ConvertJa(h) + "時半", true
			},
		},
		{
			Category: CatTime,
			Name:     "time_hour",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classDigit, 1, 2), lit("時"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := parseIntDigits(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + numword.ConvertJa(h) + "時", true
			},
		},
		{
			Category: CatMoney,
			Name:     "money_symbol",
			pattern: seq(
				word("cur", cur.symbolAlts()...),
				run("value", classAmount, 1, 20),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := renderAmountJa(c.Get("value"))
				if !ok {
					return "", false
				}
				parts := map[string]string{
					"value":    amount,
					"currency": cur.Symbols[c.Get("cur")],
				}
				return joinParts(moneyOrder[TN], parts), true
			},
		},
		{
			Category: CatMoney,
			Name:     "money_unit",
			pattern: seq(
				run("value", classAmount, 1, 20),
				word("cur", cur.Units...),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := renderAmountJa(c.Get("value"))
				if !ok {
					return "", false
				}
				return amount + c.Get("cur"), true
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
				amount, ok := renderAmountJa(c.Get("value"))
				if !ok {
					return "", false
				}
				return amount + "パーセント", true
			},
		},
		{
			Category: CatFraction,
			Name:     "fraction",
			pattern: seq(
				opt(word("sign", "-", "−")),
				run("numerator", classDigit, 1, 16),
				word("", "/", "／"),
				run("denominator", classDigit, 1, 16),
			),
			render: func(c Captures) (string, bool) {
				num, ok1 := parseIntDigits(c.Get("numerator"))
				den, ok2 := parseIntDigits(c.Get("denominator"))
				if !ok1 || !ok2 || den == 0 {
					return "", false
				}
				out := ""
				if c.Has("sign") {
					out = "マイナス"
				}
				if denominatorFirst(TN) {
					out += numword.ConvertJa(den) + "分の" + numword.ConvertJa(num)
				} else {
					out += numword.ConvertJa(num) + "分の" + numword.ConvertJa(den)
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
				s := runeset.NormalizeDigits(c.Get("int"))
				n, ok := parseIntDigits(s)
				if !ok || hasLeadingZero(s) {
					return "", false
				}
				out := ""
				if c.Has("sign") {
					out = "マイナス"
				}
				return out + numword.ConvertJa(n) + "点" +
					numword.DigitsJa(runeset.NormalizeDigits(c.Get("frac"))), true
			},
		},
		{
			Category: CatNumber,
			Name:     "ordinal",
			pattern:  seq(lit("第"), run("num", classDigit, 1, 16)),
			render: func(c Captures) (string, bool) {
				n, ok := parseIntDigits(c.Get("num"))
				if !ok {
					return "", false
				}
				out := numword.ConvertJa(n)
				if out == "" {
					return "", false
				}
				return "第" + out, true
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
				out := numword.ConvertJa(n)
				if out == "" {
					return "", false
				}
				return "マイナス" + out, true
			},
		},
		{
			Category: CatNumber,
			Name:     "number",
			pattern:  seq(run("num", classAmount, 1, 20)),
			render: func(c Captures) (string, bool) {
				// Bare runs take value reading; runs beyond the value
				// range read digit by digit.
				s := runeset.NormalizeDigits(c.Get("num"))
				if out, ok := renderAmountJa(s); ok {
					return out, true
				}
				out := numword.DigitsJa(s)
				if out == "" {
					return "", false
				}
				return out, true
			},
		},
	}
	return rules, nil
}

func jaITNRules(o Options) ([]*Rule, error) {
	cur, err := currencyFor(Ja)
	if err != nil {
		return nil, err
	}

	parseSpokenAmount := func(c Captures) (string, bool) {
		n, ok := numword.ParseJa(c.Get("value"))
		if !ok {
			return "", false
		}
		out := formatInt(n)
		if c.Has("frac") {
			frac, ok := numword.ParseDigitsJa(c.Get("frac"))
			if !ok {
				return "", false
			}
			out += "." + frac
		}
		return out, true
	}

	rules := []*Rule{
		{
			Category: CatDate,
			Name:     "date_ymd",
			pattern: seq(
				run("year", classJaDigit, 2, 4), lit("年"),
				opt(run("month", classJaValue, 1, 3), lit("月"),
					opt(run("day", classJaValue, 1, 3), lit("日"))),
			),
			render: func(c Captures) (string, bool) {
				year, ok := numword.ParseDigitsJa(c.Get("year"))
				if !ok {
					return "", false
				}
				out := year + "年"
				month := 0
				if c.Has("month") {
					m, ok := numword.ParseJa(c.Get("month"))
					if !ok || m < 1 || m > 12 {
						return "", false
					}
					month = int(m)
					out += formatInt(m) + "月"
				}
				if c.Has("day") {
					d, ok := numword.ParseJa(c.Get("day"))
					y, _ := parseIntDigits(year)
					if !ok || !calendarValid(int(y), month, int(d)) {
						return "", false
					}
					out += formatInt(d) + "日"
				}
				return out, true
			},
		},
		{
			Category: CatDate,
			Name:     "date_md",
			pattern: seq(
				run("month", classJaValue, 1, 3), lit("月"),
				run("day", classJaValue, 1, 3), lit("日"),
			),
			render: func(c Captures) (string, bool) {
				m, ok1 := numword.ParseJa(c.Get("month"))
				d, ok2 := numword.ParseJa(c.Get("day"))
				if !ok1 || !ok2 || !calendarValid(0, int(m), int(d)) {
					return "", false
				}
				return formatInt(m) + "月" + formatInt(d) + "日", true
			},
		},
		{
			Category: CatTime,
			Name:     "time_full",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classJaValue, 1, 3), lit("時"),
				run("minute", classJaValue, 1, 3), lit("分"),
				opt(run("second", classJaValue, 1, 3), lit("秒")),
			),
			render: func(c Captures) (string, bool) {
				h, ok1 := numword.ParseJa(c.Get("hour"))
				min, ok2 := numword.ParseJa(c.Get("minute"))
				sec := int64(0)
				ok3 := true
				if c.Has("second") {
					sec, ok3 = numword.ParseJa(c.Get("second"))
				}
				if !ok1 || !ok2 || !ok3 || !clockValid(int(h), int(min), int(sec)) {
					return "", false
				}
				out := c.Get("noon") + formatInt(h) + "時" + padTwo(formatInt(min)) + "分"
				if c.Has("second") {
					out += padTwo(formatInt(sec)) + "秒"
				}
				return out, true
			},
		},
		{
			Category: CatTime,
			Name:     "time_half",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classJaValue, 1, 3), lit("時半"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := numword.ParseJa(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + formatInt(h) + "時半", true
			},
		},
		{
			Category: CatTime,
			Name:     "time_hour",
			pattern: seq(
				opt(word("noon", jaNoonWords...)),
				run("hour", classJaValue, 1, 3), lit("時"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := numword.ParseJa(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + formatInt(h) + "時", true
			},
		},
		{
			Category: CatMoney,
			Name:     "money",
			pattern: seq(
				run("value", classJaValue, 1, 25),
				opt(lit("点"), run("frac", classJaDigit, 1, 10)),
				word("cur", cur.Units...),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := parseSpokenAmount(c)
				if !ok {
					return "", false
				}
				return amount + c.Get("cur"), true
			},
		},
		{
			Category: CatFraction,
			Name:     "percent",
			pattern: seq(
				run("value", classJaValue, 1, 25),
				opt(lit("点"), run("frac", classJaDigit, 1, 10)),
				lit("パーセント"),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := parseSpokenAmount(c)
				if !ok {
					return "", false
				}
				return amount + "%", true
			},
		},
		{
			Category: CatFraction,
			Name:     "fraction",
			pattern: seq(
				opt(word("sign", "マイナス")),
				run("denominator", classJaValue, 1, 25),
				lit("分の"),
				run("numerator", classJaValue, 1, 25),
			),
			render: func(c Captures) (string, bool) {
				den, ok1 := numword.ParseJa(c.Get("denominator"))
				num, ok2 := numword.ParseJa(c.Get("numerator"))
				if !ok1 || !ok2 || den <= 0 || num < 0 {
					return "", false
				}
				parts := map[string]string{
					"numerator":   formatInt(num) + "/",
					"denominator": formatInt(den),
				}
				if c.Has("sign") {
					parts["sign"] = "-"
				}
				return joinParts(fractionOrder[ITN], parts), true
			},
		},
		{
			Category: CatNumber,
			Name:     "ordinal",
			pattern:  seq(lit("第"), run("num", classJaValue, 1, 25)),
			render: func(c Captures) (string, bool) {
				n, ok := numword.ParseJa(c.Get("num"))
				if !ok {
					return "", false
				}
				return "第" + formatInt(n), true
			},
		},
		{
			Category: CatNumber,
			Name:     "value",
			pattern: seq(
				opt(word("sign", "マイナス")),
				run("value", classJaValue, 1, 25),
				opt(lit("点"), run("frac", classJaDigit, 1, 10)),
			),
			render: func(c Captures) (string, bool) {
				v := []rune(c.Get("value"))
				if !c.Has("frac") && !c.Has("sign") && len(v) == 1 && !o.Enable0To9 {
					if n, ok := numword.ParseJa(c.Get("value")); ok && n < 10 {
						return "", false
					}
				}
				amount, ok := parseSpokenAmount(c)
				if !ok {
					return "", false
				}
				if c.Has("sign") {
					amount = "-" + amount
				}
				return amount, true
			},
		},
		{
			Category: CatNumber,
			Name:     "digits",
			pattern:  seq(run("num", classJaDigit, 2, 25)),
			render: func(c Captures) (string, bool) {
				return numword.ParseDigitsJa(c.Get("num"))
			},
		},
	}
	if o.Enable0To9 {
		rules = append(rules, &Rule{
			Category: CatNumber,
			Name:     "digit_single",
			pattern:  seq(run("num", classJaDigit, 1, 1)),
			render: func(c Captures) (string, bool) {
				return numword.ParseDigitsJa(c.Get("num"))
			},
		})
	}
	return rules, nil
}
