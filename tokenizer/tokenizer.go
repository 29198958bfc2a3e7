// Package tokenizer segments input text into plain and candidate spans.
//
// Candidate spans are the only regions the resolver tries grammar rules
// on; plain spans are copied through untouched, which is what preserves
// whitespace and punctuation exactly. Offsets are rune offsets into the
// original text, and the concatenation of all span texts reproduces the
// input byte-for-byte.
//
// Chinese and Japanese are segmented by rune runs over the grammar's
// candidate alphabet. English is segmented word-wise (see scanner.go)
// because month names and meridiem markers are ordinary words.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/internal/runeset"
	"github.com/SpenserCai/wetext/numword"
)

// Kind is a coarse classification hint for a span. The resolver does not
// depend on it; it exists for diagnostics and the fixture tooling.
type Kind int

const (
	Plain Kind = iota
	Numeric
	Date
	Time
	Money
	Fraction
)

var kindNames = [...]string{
	Plain:    "plain",
	Numeric:  "numeric",
	Date:     "date",
	Time:     "time",
	Money:    "money",
	Fraction: "fraction",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a contiguous region of the input.
type Span struct {
	Text  string
	Start int // rune offset, inclusive
	End   int // rune offset, exclusive
	Kind  Kind
}

// Segment splits text into spans for the given grammar. Spans are
// in order, non-overlapping, and cover the input exactly.
func Segment(text string, g *grammar.Grammar) []Span {
	if text == "" {
		return nil
	}
	if g.Lang == grammar.En {
		return segmentEn(text)
	}
	return segmentRuns(text, g)
}

// segmentRuns carves candidate runs out of Chinese or Japanese text.
// A run with no trigger rune (digit for TN, numeral word for ITN) is
// demoted to plain: marker characters alone (点, 分, 年) are ordinary
// prose.
func segmentRuns(text string, g *grammar.Grammar) []Span {
	rs := []rune(text)
	var spans []Span
	i := 0
	for i < len(rs) {
		j := i
		if g.IsCandidateRune(rs[i]) {
			for j < len(rs) && g.IsCandidateRune(rs[j]) {
				j++
			}
			seg := rs[i:j]
			if hasTrigger(seg, g) {
				spans = append(spans, Span{
					Text:  string(seg),
					Start: i,
					End:   j,
					Kind:  classifyRun(string(seg)),
				})
			} else {
				spans = appendPlain(spans, string(seg), i, j)
			}
		} else {
			for j < len(rs) && !g.IsCandidateRune(rs[j]) {
				j++
			}
			spans = appendPlain(spans, string(rs[i:j]), i, j)
		}
		i = j
	}
	return spans
}

// appendPlain adds a plain span, merging with a preceding plain span.
func appendPlain(spans []Span, text string, start, end int) []Span {
	if n := len(spans); n > 0 && spans[n-1].Kind == Plain && spans[n-1].End == start {
		spans[n-1].Text += text
		spans[n-1].End = end
		return spans
	}
	return append(spans, Span{Text: text, Start: start, End: end, Kind: Plain})
}

func hasTrigger(seg []rune, g *grammar.Grammar) bool {
	for _, r := range seg {
		if runeset.IsDigit(r) {
			return true
		}
		if g.Op == grammar.ITN {
			switch g.Lang {
			case grammar.Zh:
				if numword.IsZhNumeral(r) || numword.IsZhDigitWord(r) {
					return true
				}
			case grammar.Ja:
				if numword.IsJaNumeral(r) {
					return true
				}
			}
		}
	}
	return false
}

// classifyRun guesses the dominant category of a candidate run.
func classifyRun(s string) Kind {
	switch {
	case strings.ContainsAny(s, "年月日"):
		return Date
	case strings.Contains(s, "分之") || strings.Contains(s, "分の") ||
		strings.Contains(s, "パーセント") || strings.ContainsAny(s, "/／％%"):
		return Fraction
	case strings.ContainsAny(s, "$¥￥€£元块円ドルユーロ镑"):
		return Money
	case strings.ContainsAny(s, ":：点时時秒半"):
		return Time
	default:
		return Numeric
	}
}
