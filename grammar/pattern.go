package grammar

import (
	"github.com/SpenserCai/wetext/internal/runeset"
	"github.com/SpenserCai/wetext/numword"
)

// The pattern engine is a small structural matcher over rune slices:
// a pattern is a flat sequence of elements (literal, rune-class run,
// word alternative, optional group) matched left to right. Runs
// backtrack over their length and optional groups over presence, so
// matching is worst-case exponential in nesting depth; rule patterns
// are hand-written and shallow, keeping it effectively linear.
//
// There is deliberately no regex here: every rule pattern is built at
// compile time from typed elements, and matching allocates only the
// capture list.

// runeClass identifies which runes a run element may consume.
type runeClass uint8

const (
	classDigit   runeClass = iota // ASCII and fullwidth decimal digits
	classAmount                   // digits plus interior "," "." group/decimal marks
	classDate                     // digits plus interior "-" "/" "." date separators
	classZhValue                  // Chinese value-reading numerals (一..九 十 百 千 万 亿 两 零)
	classZhDigit                  // Chinese digit-reading numerals (零..九 幺 〇 两)
	classJaValue                  // Japanese value-reading numerals (一..九 十 百 千 万 億 兆)
	classJaDigit                  // Japanese digit-reading numerals (〇..九 零)
)

func (c runeClass) contains(r rune) bool {
	switch c {
	case classDigit, classAmount, classDate:
		return runeset.IsDigit(r)
	case classZhValue:
		return numword.IsZhNumeral(r)
	case classZhDigit:
		return numword.IsZhDigitWord(r)
	case classJaValue:
		return numword.IsJaNumeral(r)
	case classJaDigit:
		return numword.IsJaDigitWord(r)
	}
	return false
}

// joiner reports whether r may appear inside a run of this class when
// directly followed by another class rune. Joiners let an amount run
// consume "1,234.56" without swallowing a trailing comma or period.
func (c runeClass) joiner(r rune) bool {
	switch c {
	case classAmount:
		return r == ',' || r == '.'
	case classDate:
		return r == '-' || r == '/' || r == '.'
	}
	return false
}

type elemKind uint8

const (
	elemLit  elemKind = iota // exact literal
	elemRun                  // bounded run of class runes
	elemWord                 // first matching alternative from a fixed list
	elemOpt                  // optional sub-sequence, matched greedily
)

type elem struct {
	kind  elemKind
	lit   []rune    // elemLit
	class runeClass // elemRun
	min   int       // elemRun: minimum run length
	max   int       // elemRun: maximum run length
	alts  [][]rune  // elemWord, in priority order
	name  string    // capture name for elemRun/elemWord; "" captures nothing
	sub   []elem    // elemOpt
}

// Pattern is a compiled element sequence.
type Pattern struct {
	elems []elem
}

// Captures holds the named submatches of a successful pattern match.
type Captures map[string]string

// Get returns the capture for name, or "" when absent.
func (c Captures) Get(name string) string { return c[name] }

// Has reports whether name was captured.
func (c Captures) Has(name string) bool {
	_, ok := c[name]
	return ok
}

type capture struct {
	name string
	val  string
}

// Match attempts to match the pattern against rs starting at pos. It
// returns the end offset (exclusive) and the named captures.
func (p *Pattern) Match(rs []rune, pos int) (int, Captures, bool) {
	var caps []capture
	end, ok := matchSeq(p.elems, rs, pos, &caps)
	if !ok {
		return 0, nil, false
	}
	out := make(Captures, len(caps))
	for _, c := range caps {
		out[c.name] = c.val
	}
	return end, out, true
}

// matchSeq matches the element sequence es at pos, appending captures to
// caps. On failure caps is restored to its length at entry.
func matchSeq(es []elem, rs []rune, pos int, caps *[]capture) (int, bool) {
	if len(es) == 0 {
		return pos, true
	}
	mark := len(*caps)
	e := es[0]
	rest := es[1:]

	switch e.kind {
	case elemLit:
		if !hasPrefix(rs, pos, e.lit) {
			return 0, false
		}
		return matchSeq(rest, rs, pos+len(e.lit), caps)

	case elemWord:
		for _, alt := range e.alts {
			if !hasPrefix(rs, pos, alt) {
				continue
			}
			if e.name != "" {
				*caps = append(*caps, capture{e.name, string(alt)})
			}
			if end, ok := matchSeq(rest, rs, pos+len(alt), caps); ok {
				return end, true
			}
			*caps = (*caps)[:mark]
		}
		return 0, false

	case elemRun:
		n := runLen(rs, pos, e.class, e.max)
		for k := n; k >= e.min; k-- {
			// A run may not end on a joiner rune.
			if k > 0 && e.class.joiner(rs[pos+k-1]) {
				continue
			}
			if e.name != "" {
				*caps = append(*caps, capture{e.name, string(rs[pos : pos+k])})
			}
			if end, ok := matchSeq(rest, rs, pos+k, caps); ok {
				return end, true
			}
			*caps = (*caps)[:mark]
		}
		return 0, false

	case elemOpt:
		// Greedy: prefer taking the optional part.
		if end, ok := matchSeq(append(append([]elem{}, e.sub...), rest...), rs, pos, caps); ok {
			return end, true
		}
		*caps = (*caps)[:mark]
		return matchSeq(rest, rs, pos, caps)
	}
	return 0, false
}

func hasPrefix(rs []rune, pos int, want []rune) bool {
	if pos+len(want) > len(rs) {
		return false
	}
	for i, r := range want {
		if rs[pos+i] != r {
			return false
		}
	}
	return true
}

// runLen returns the longest run (capped at max) of class runes starting
// at pos, allowing interior joiner runes.
func runLen(rs []rune, pos int, c runeClass, max int) int {
	n := 0
	for pos+n < len(rs) && n < max {
		r := rs[pos+n]
		if c.contains(r) {
			n++
			continue
		}
		if c.joiner(r) && pos+n+1 < len(rs) && c.contains(rs[pos+n+1]) && n > 0 {
			n++
			continue
		}
		break
	}
	return n
}

// Element constructors used by the per-language rule files.

func lit(s string) elem {
	return elem{kind: elemLit, lit: []rune(s)}
}

func run(name string, c runeClass, min, max int) elem {
	return elem{kind: elemRun, class: c, min: min, max: max, name: name}
}

func word(name string, alts ...string) elem {
	e := elem{kind: elemWord, name: name}
	for _, a := range alts {
		e.alts = append(e.alts, []rune(a))
	}
	return e
}

func opt(sub ...elem) elem {
	return elem{kind: elemOpt, sub: sub}
}

func seq(es ...elem) *Pattern {
	return &Pattern{elems: es}
}
