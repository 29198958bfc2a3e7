// Package script holds the character-level transforms applied around
// normalization: traditional-to-simplified folding, fullwidth-to-
// halfwidth folding, erhua removal, interjection removal and punctuation
// stripping.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//   - The traditional-to-simplified table covers numerals, units and
//     common characters, not the full Unihan mapping.
//   - Erhua removal is positional (儿 after a non-initial character),
//     so genuine 儿 words like 儿子 at sentence start are kept but
//     儿 inside a word is always dropped.
package script

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/width"
	"gopkg.in/yaml.v3"

	"github.com/SpenserCai/wetext/data"
	"github.com/SpenserCai/wetext/internal/runeset"
)

var (
	t2sOnce sync.Once
	t2sMap  map[rune]rune
)

func loadT2S() {
	var raw struct {
		Map map[string]string `yaml:"map"`
	}
	t2sMap = map[rune]rune{}
	if err := yaml.Unmarshal(data.TraditionalToSimplified, &raw); err != nil {
		return
	}
	for k, v := range raw.Map {
		kr := []rune(k)
		vr := []rune(v)
		if len(kr) == 1 && len(vr) == 1 {
			t2sMap[kr[0]] = vr[0]
		}
	}
}

// TraditionalToSimplified folds traditional Chinese characters to their
// simplified forms. Unmapped runes pass through unchanged.
func TraditionalToSimplified(s string) string {
	t2sOnce.Do(loadT2S)
	var b strings.Builder
	b.Grow(len(s))
	changed := false
	for _, r := range s {
		if sr, ok := t2sMap[r]; ok {
			b.WriteRune(sr)
			changed = true
		} else {
			b.WriteRune(r)
		}
	}
	if !changed {
		return s
	}
	return b.String()
}

// FullToHalf folds fullwidth forms (ＡＢＣ１２３：) to their halfwidth
// counterparts. Characters without a narrow form pass through.
func FullToHalf(s string) string {
	return width.Narrow.String(s)
}

// RemoveErhua drops the erhua suffix 儿 (and 兒) after another Han
// character: 哪儿 → 哪. A leading 儿 is kept.
func RemoveErhua(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		if (r == '儿' || r == '兒') && i > 0 && runeset.IsHan(rs[i-1]) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	interjOnce  sync.Once
	interjZh    map[rune]bool
	interjJa    []string
	interjWords map[string]bool // standalone English words
)

func loadInterjections() {
	var raw struct {
		Zh []string `yaml:"zh"`
		Ja []string `yaml:"ja"`
		En []string `yaml:"en"`
	}
	interjZh = map[rune]bool{}
	interjWords = map[string]bool{}
	if err := yaml.Unmarshal(data.Interjections, &raw); err != nil {
		return
	}
	for _, w := range raw.Zh {
		for _, r := range w {
			interjZh[r] = true
		}
	}
	interjJa = raw.Ja
	for _, w := range raw.En {
		interjWords[w] = true
	}
}

// RemoveInterjections strips filler words: Chinese fillers anywhere,
// Japanese filler phrases, and English fillers as standalone words.
func RemoveInterjections(s string) string {
	interjOnce.Do(loadInterjections)
	for _, w := range interjJa {
		s = strings.ReplaceAll(s, w, "")
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if interjZh[r] {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()
	return removeFillerWords(s)
}

// removeFillerWords drops space-separated tokens that are exactly a
// filler word.
func removeFillerWords(s string) string {
	words := strings.Split(s, " ")
	out := words[:0]
	for _, w := range words {
		if interjWords[strings.ToLower(w)] {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// RemovePuncts strips punctuation and symbol runes, keeping letters,
// digits and whitespace.
func RemovePuncts(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
