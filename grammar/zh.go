package grammar

import (
	"strings"

	"github.com/SpenserCai/wetext/internal/runeset"
	"github.com/SpenserCai/wetext/numword"
)

// Chinese rule sets.
//
// Written→spoken (TN) reads bare digit runs digit-by-digit in the
// telephone style (123 → 幺二三) and uses value reading wherever a unit
// marker gives the digits quantity meaning (100元 → 一百元). Years are
// always digit-read (2024年 → 二零二四年). Spoken→written (ITN) is the
// reverse, with 两 accepted on input only.

var zhNoonWords = []string{
	"凌晨", "清晨", "早上", "上午", "中午", "下午", "傍晚", "晚上", "深夜", "夜里",
}

// renderAmountZh converts a written amount ("1234", "1,234.5") to value
// reading with a spoken decimal point.
func renderAmountZh(s string) (string, bool) {
	intPart, fracPart, ok := splitAmount(s)
	if !ok {
		return "", false
	}
	n, ok := parseIntDigits(intPart)
	if !ok {
		return "", false
	}
	out := numword.ConvertZh(n)
	if out == "" {
		return "", false
	}
	if hasLeadingZero(intPart) {
		out = numword.DigitsZh(intPart, false)
	}
	if fracPart != "" {
		out += "点" + numword.DigitsZh(fracPart, false)
	}
	return out, true
}

// zhMinute renders a two-digit minute or second with its leading zero
// spoken (05 → 零五).
func zhMinute(s string) (string, bool) {
	n, ok := parseIntDigits(s)
	if !ok || n > 59 {
		return "", false
	}
	if len(s) == 2 && s[0] == '0' {
		return "零" + numword.ConvertZh(n%10), true
	}
	return numword.ConvertZh(n), true
}

func zhTNRules() ([]*Rule, error) {
	cur, err := currencyFor(Zh)
	if err != nil {
		return nil, err
	}

	dateParts := func(c Captures) (string, bool) {
		parts := map[string]string{}
		year, _ := parseIntDigits(c.Get("year"))
		parts["year"] = numword.DigitsZh(runeset.NormalizeDigits(c.Get("year")), false) + "年"
		month := 0
		if c.Has("month") {
			m, ok := parseIntDigits(c.Get("month"))
			if !ok || m < 1 || m > 12 {
				return "", false
			}
			month = int(m)
			parts["month"] = numword.ConvertZh(m) + "月"
		}
		if c.Has("day") {
			d, ok := parseIntDigits(c.Get("day"))
			if !ok || !calendarValid(int(year), month, int(d)) {
				return "", false
			}
			parts["day"] = numword.ConvertZh(d) + "日"
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
		hmark := c.Get("hmark")
		if hmark == "" {
			hmark = "点"
		}
		parts := map[string]string{
			"noon": c.Get("noon"),
			"hour": numword.ConvertZh(h) + hmark,
		}
		if c.Has("minute") {
			if colon && c.Get("minute") == "00" && !c.Has("second") {
				// 15:00 reads as a bare hour.
			} else {
				m, ok := zhMinute(c.Get("minute"))
				if !ok {
					return "", false
				}
				parts["minute"] = m + "分"
			}
		}
		if c.Has("second") {
			s, ok := zhMinute(c.Get("second"))
			if !ok {
				return "", false
			}
			parts["second"] = s + "秒"
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
				out := numword.ConvertZh(m) + "月"
				if c.Has("day") {
					d, ok := parseIntDigits(c.Get("day"))
					if !ok || !calendarValid(0, int(m), int(d)) {
						return "", false
					}
					out += numword.ConvertZh(d) + "日"
				}
				return out, true
			},
		},
		{
			Category: CatTime,
			Name:     "time_colon",
			pattern: seq(
				opt(word("noon", zhNoonWords...)),
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
				opt(word("noon", zhNoonWords...)),
				run("hour", classDigit, 1, 2),
				word("hmark", "点", "时"),
				run("minute", classDigit, 1, 2), lit("分"),
				opt(run("second", classDigit, 1, 2), lit("秒")),
			),
			render: func(c Captures) (string, bool) { return timeParts(c, false) },
		},
		{
			Category: CatTime,
			Name:     "time_half",
			pattern: seq(
				opt(word("noon", zhNoonWords...)),
				run("hour", classDigit, 1, 2),
				word("hmark", "点", "时"), lit("半"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := parseIntDigits(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + numword.ConvertZh(h) + c.Get("hmark") + "半", true
			},
		},
		{
			Category: CatTime,
			Name:     "time_hour",
			pattern: seq(
				opt(word("noon", zhNoonWords...)),
				run("hour", classDigit, 1, 2),
				word("hmark", "点", "时"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := parseIntDigits(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + numword.ConvertZh(h) + c.Get("hmark"), true
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
				amount, ok := renderAmountZh(c.Get("value"))
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
				opt(run("jiao", classDigit, 1, 1), word("jm", "角", "毛"),
					opt(run("fen", classDigit, 1, 1), lit("分"))),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := renderAmountZh(c.Get("value"))
				if !ok {
					return "", false
				}
				out := amount + c.Get("cur")
				if c.Has("jiao") {
					j, ok := parseIntDigits(c.Get("jiao"))
					if !ok {
						return "", false
					}
					out += numword.ConvertZh(j) + c.Get("jm")
				}
				if c.Has("fen") {
					f, ok := parseIntDigits(c.Get("fen"))
					if !ok {
						return "", false
					}
					out += numword.ConvertZh(f) + "分"
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
				amount, ok := renderAmountZh(c.Get("value"))
				if !ok {
					return "", false
				}
				return "百分之" + amount, true
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
					out = "负"
				}
				if denominatorFirst(TN) {
					out += numword.ConvertZh(den) + "分之" + numword.ConvertZh(num)
				} else {
					out += numword.ConvertZh(num) + "分之" + numword.ConvertZh(den)
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
				n, ok := parseIntDigits(c.Get("int"))
				if !ok || hasLeadingZero(runeset.NormalizeDigits(c.Get("int"))) {
					return "", false
				}
				out := ""
				if c.Has("sign") {
					out = "负"
				}
				return out + numword.ConvertZh(n) + "点" +
					numword.DigitsZh(runeset.NormalizeDigits(c.Get("frac")), false), true
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
				out := numword.ConvertZh(n)
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
				out := numword.ConvertZh(n)
				if out == "" {
					return "", false
				}
				return "负" + out, true
			},
		},
		{
			Category: CatNumber,
			Name:     "digits",
			pattern:  seq(run("num", classAmount, 1, 20)),
			render: func(c Captures) (string, bool) {
				s := runeset.NormalizeDigits(c.Get("num"))
				if strings.ContainsAny(s, ",.") {
					// Grouped or decimal quantities use value reading.
					return renderAmountZh(s)
				}
				out := numword.DigitsZh(s, true)
				if out == "" {
					return "", false
				}
				return out, true
			},
		},
	}
	return rules, nil
}

func zhITNRules(o Options) ([]*Rule, error) {
	cur, err := currencyFor(Zh)
	if err != nil {
		return nil, err
	}

	// parseSpokenAmount converts a spoken value with an optional 点
	// fraction into an ASCII amount string.
	parseSpokenAmount := func(c Captures) (string, bool) {
		n, ok := numword.ParseZh(c.Get("value"))
		if !ok {
			return "", false
		}
		out := formatInt(n)
		if c.Has("frac") {
			frac, ok := numword.ParseDigitsZh(c.Get("frac"))
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
				run("year", classZhDigit, 2, 4), lit("年"),
				opt(run("month", classZhValue, 1, 3), lit("月"),
					opt(run("day", classZhValue, 1, 3), lit("日"))),
			),
			render: func(c Captures) (string, bool) {
				year, ok := numword.ParseDigitsZh(c.Get("year"))
				if !ok {
					return "", false
				}
				out := year + "年"
				month := 0
				if c.Has("month") {
					m, ok := numword.ParseZh(c.Get("month"))
					if !ok || m < 1 || m > 12 {
						return "", false
					}
					month = int(m)
					out += formatInt(m) + "月"
				}
				if c.Has("day") {
					d, ok := numword.ParseZh(c.Get("day"))
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
				run("month", classZhValue, 1, 3), lit("月"),
				run("day", classZhValue, 1, 3), lit("日"),
			),
			render: func(c Captures) (string, bool) {
				m, ok1 := numword.ParseZh(c.Get("month"))
				d, ok2 := numword.ParseZh(c.Get("day"))
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
				opt(word("noon", zhNoonWords...)),
				run("hour", classZhValue, 1, 3),
				word("hmark", "点", "时"),
				run("minute", classZhValue, 1, 3), lit("分"),
				opt(run("second", classZhValue, 1, 3), lit("秒")),
			),
			render: func(c Captures) (string, bool) {
				h, ok1 := numword.ParseZh(c.Get("hour"))
				min, ok2 := numword.ParseZh(c.Get("minute"))
				sec := int64(0)
				ok3 := true
				if c.Has("second") {
					sec, ok3 = numword.ParseZh(c.Get("second"))
				}
				if !ok1 || !ok2 || !ok3 || !clockValid(int(h), int(min), int(sec)) {
					return "", false
				}
				out := c.Get("noon") + formatInt(h) + c.Get("hmark") + padTwo(formatInt(min)) + "分"
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
				opt(word("noon", zhNoonWords...)),
				run("hour", classZhValue, 1, 3),
				word("hmark", "点", "时"), lit("半"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := numword.ParseZh(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + formatInt(h) + c.Get("hmark") + "半", true
			},
		},
		{
			Category: CatTime,
			Name:     "time_hour",
			pattern: seq(
				opt(word("noon", zhNoonWords...)),
				run("hour", classZhValue, 1, 3),
				word("hmark", "点", "时"),
			),
			render: func(c Captures) (string, bool) {
				h, ok := numword.ParseZh(c.Get("hour"))
				if !ok || !clockValid(int(h), 0, 0) {
					return "", false
				}
				return c.Get("noon") + formatInt(h) + c.Get("hmark"), true
			},
		},
		{
			Category: CatMoney,
			Name:     "money",
			pattern: seq(
				run("value", classZhValue, 1, 25),
				opt(lit("点"), run("frac", classZhDigit, 1, 10)),
				word("cur", cur.Units...),
				opt(run("jiao", classZhValue, 1, 1), word("jm", "角", "毛"),
					opt(run("fen", classZhValue, 1, 1), lit("分"))),
			),
			render: func(c Captures) (string, bool) {
				amount, ok := parseSpokenAmount(c)
				if !ok {
					return "", false
				}
				out := amount + c.Get("cur")
				if c.Has("jiao") {
					j, ok := numword.ParseZh(c.Get("jiao"))
					if !ok {
						return "", false
					}
					out += formatInt(j) + c.Get("jm")
				}
				if c.Has("fen") {
					f, ok := numword.ParseZh(c.Get("fen"))
					if !ok {
						return "", false
					}
					out += formatInt(f) + "分"
				}
				return out, true
			},
		},
		{
			Category: CatFraction,
			Name:     "percent",
			pattern: seq(
				lit("百分之"),
				run("value", classZhValue, 1, 25),
				opt(lit("点"), run("frac", classZhDigit, 1, 10)),
			),
			render: func(c Captures) (string, bool) {
				if c.Get("value") == "百" && !c.Has("frac") {
					return "100%", true
				}
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
				opt(word("sign", "负")),
				run("denominator", classZhValue, 1, 25),
				lit("分之"),
				run("numerator", classZhValue, 1, 25),
			),
			render: func(c Captures) (string, bool) {
				den, ok1 := numword.ParseZh(c.Get("denominator"))
				num, ok2 := numword.ParseZh(c.Get("numerator"))
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
			pattern:  seq(lit("第"), run("num", classZhValue, 1, 25)),
			render: func(c Captures) (string, bool) {
				n, ok := numword.ParseZh(c.Get("num"))
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
				run("value", classZhValue, 1, 25),
				opt(lit("点"), run("frac", classZhDigit, 1, 10)),
			),
			render: func(c Captures) (string, bool) {
				v := []rune(c.Get("value"))
				if !c.Has("frac") && len(v) == 1 && !o.Enable0To9 {
					// Isolated single-digit words stay as text; 十 and
					// above always convert.
					if n, ok := numword.ParseZh(c.Get("value")); ok && n < 10 {
						return "", false
					}
				}
				return parseSpokenAmount(c)
			},
		},
		{
			Category: CatNumber,
			Name:     "digits",
			pattern:  seq(run("num", classZhDigit, 2, 25)),
			render: func(c Captures) (string, bool) {
				s, ok := numword.ParseDigitsZh(c.Get("num"))
				if !ok {
					return "", false
				}
				return s, true
			},
		},
	}
	if o.Enable0To9 {
		rules = append(rules, &Rule{
			Category: CatNumber,
			Name:     "digit_single",
			pattern:  seq(run("num", classZhDigit, 1, 1)),
			render: func(c Captures) (string, bool) {
				return numword.ParseDigitsZh(c.Get("num"))
			},
		})
	}
	return rules, nil
}
