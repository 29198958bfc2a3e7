// Package contractions expands English contractions, slang shortenings
// and dotted month abbreviations before normalization ("don't" → "do
// not", "jan. 15" → "january 15").
//
// Matching is case-insensitive on word boundaries and replaces with the
// table's expansion as written, so an uppercase contraction comes out
// lowercase. Curly apostrophes (U+2019) match their straight variants.
// Expansion runs without regular expressions: the text is scanned once
// and each word-like token is looked up in the merged table.
package contractions

import (
	"strings"
	"sync"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/SpenserCai/wetext/data"
)

var (
	once   sync.Once
	table  map[string]string // lowercase token → expansion
	dotted map[string]string // lowercase token with trailing "." → expansion
)

func load() {
	var raw struct {
		Contractions  map[string]string `yaml:"contractions"`
		Slang         map[string]string `yaml:"slang"`
		Abbreviations map[string]string `yaml:"abbreviations"`
	}
	table = map[string]string{}
	dotted = map[string]string{}
	if err := yaml.Unmarshal(data.Contractions, &raw); err != nil {
		return
	}
	add := func(m map[string]string) {
		for k, v := range m {
			k = strings.ToLower(k)
			if strings.HasSuffix(k, ".") {
				dotted[k] = v
				continue
			}
			table[k] = v
			if strings.Contains(k, "'") {
				table[strings.ReplaceAll(k, "'", "’")] = v
			}
		}
	}
	add(raw.Contractions)
	add(raw.Slang)
	add(raw.Abbreviations)
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '’'
}

// Expand replaces every contraction in s with its expansion. Text
// without contractions is returned unchanged.
func Expand(s string) string {
	once.Do(load)
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	changed := false
	i := 0
	for i < len(rs) {
		if !isTokenRune(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j := i
		for j < len(rs) && isTokenRune(rs[j]) {
			j++
		}
		tok := string(rs[i:j])
		low := strings.ToLower(tok)
		// Dotted abbreviation: the period belongs to the token.
		if j < len(rs) && rs[j] == '.' {
			if exp, ok := dotted[low+"."]; ok {
				b.WriteString(exp)
				changed = true
				i = j + 1
				continue
			}
		}
		if exp, ok := table[low]; ok {
			b.WriteString(exp)
			changed = true
		} else {
			b.WriteString(tok)
		}
		i = j
	}
	if !changed {
		return s
	}
	return b.String()
}
