package grammar

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// The segmenter asks a compiled grammar which runes can possibly start
// or continue a matchable region. The alphabet is derived from the rule
// patterns themselves: every literal and word-alternative rune, plus the
// rune classes (and their joiners) used by run elements. English month
// and meridiem words are exposed separately because English segmentation
// works on words, not rune runs.

type alphabet struct {
	runes   map[rune]bool
	classes map[runeClass]bool
}

func (a *alphabet) add(e elem) {
	switch e.kind {
	case elemLit:
		for _, r := range e.lit {
			if r != ' ' && r != ',' {
				a.runes[r] = true
			}
		}
	case elemWord:
		for _, alt := range e.alts {
			for _, r := range alt {
				a.runes[r] = true
			}
		}
	case elemRun:
		a.classes[e.class] = true
		switch e.class {
		case classAmount:
			a.runes[','] = true
			a.runes['.'] = true
		case classDate:
			a.runes['-'] = true
			a.runes['/'] = true
			a.runes['.'] = true
		}
	case elemOpt:
		for _, sub := range e.sub {
			a.add(sub)
		}
	}
}

// compileAlphabet walks every rule pattern once at Compile time.
func compileAlphabet(rules []*Rule) *alphabet {
	a := &alphabet{runes: map[rune]bool{}, classes: map[runeClass]bool{}}
	for _, r := range rules {
		for _, e := range r.pattern.elems {
			a.add(e)
		}
	}
	return a
}

// IsCandidateRune reports whether r can appear inside a region any rule
// of the grammar could match. The segmenter uses this to carve candidate
// runs out of Chinese and Japanese text.
func (g *Grammar) IsCandidateRune(r rune) bool {
	if g.alpha.runes[r] {
		return true
	}
	for c := range g.alpha.classes {
		if c.contains(r) {
			return true
		}
	}
	return false
}

// MonthWordsEn returns the English month names, capitalized and
// lowercase, longest first.
func MonthWordsEn() []string {
	var out []string
	for mo := time.January; mo <= time.December; mo++ {
		t := time.Date(2000, mo, 1, 0, 0, 0, 0, time.UTC)
		name := monday.Format(t, "January", monday.LocaleEnUS)
		out = append(out, name, strings.ToLower(name))
	}
	return out
}

// AmPmWordsEn returns the recognized meridiem markers.
func AmPmWordsEn() []string {
	return []string{"a.m.", "p.m.", "A.M.", "P.M.", "AM", "PM", "am", "pm"}
}
