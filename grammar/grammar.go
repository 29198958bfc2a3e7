// Package grammar holds the per-language, per-direction rule sets that
// drive text normalization.
//
// A Grammar is an ordered collection of Rules for one (Language, Operator)
// pair. Each Rule pairs a structural Pattern (see pattern.go) with a render
// function that turns the captured groups into output text. Rendering may
// reject a structurally matched span (e.g. month 13), which counts as no
// match rather than an error; the caller then falls back to shorter matches
// or plain passthrough.
//
// Grammars are compiled once and are immutable afterwards; a compiled
// Grammar is safe for concurrent use by multiple goroutines.
package grammar

import (
	"encoding/json"
	"fmt"
)

// Language identifies a supported input language.
type Language int

const (
	Auto Language = iota // detect from text at call time
	Zh                   // Chinese
	En                   // English
	Ja                   // Japanese
)

var languageNames = [...]string{
	Auto: "auto",
	Zh:   "zh",
	En:   "en",
	Ja:   "ja",
}

var languageFromName = map[string]Language{
	"auto": Auto,
	"zh":   Zh,
	"en":   En,
	"ja":   Ja,
}

// String returns the language code ("zh", "en", "ja", "auto").
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// MarshalJSON encodes the language as its code string.
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a code string into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ll, ok := languageFromName[s]
	if !ok {
		return fmt.Errorf("grammar: unknown language: %q", s)
	}
	*l = ll
	return nil
}

// ParseLanguage converts a code string ("zh", "en", "ja", "auto") to a
// Language.
func ParseLanguage(s string) (Language, error) {
	l, ok := languageFromName[s]
	if !ok {
		return Auto, fmt.Errorf("grammar: unknown language: %q", s)
	}
	return l, nil
}

// Operator identifies the normalization direction.
type Operator int

const (
	TN  Operator = iota // text normalization: written → spoken
	ITN                 // inverse text normalization: spoken → written
)

var operatorNames = [...]string{
	TN:  "tn",
	ITN: "itn",
}

var operatorFromName = map[string]Operator{
	"tn":  TN,
	"itn": ITN,
}

// String returns the operator code ("tn" or "itn").
func (o Operator) String() string {
	if int(o) >= 0 && int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// MarshalJSON encodes the operator as its code string.
func (o Operator) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes a code string into an Operator.
func (o *Operator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	oo, ok := operatorFromName[s]
	if !ok {
		return fmt.Errorf("grammar: unknown operator: %q", s)
	}
	*o = oo
	return nil
}

// ParseOperator converts a code string ("tn" or "itn") to an Operator.
func ParseOperator(s string) (Operator, error) {
	o, ok := operatorFromName[s]
	if !ok {
		return TN, fmt.Errorf("grammar: unknown operator: %q", s)
	}
	return o, nil
}

// Category classifies the semantic class a rule normalizes.
type Category int

const (
	CatNumber Category = iota
	CatDate
	CatTime
	CatMoney
	CatFraction
)

var categoryNames = [...]string{
	CatNumber:   "number",
	CatDate:     "date",
	CatTime:     "time",
	CatMoney:    "money",
	CatFraction: "fraction",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Specificity orders categories for tie-breaking between equal-length
// matches: Date and Time subsume numeric subpatterns, Money and Fraction
// carry explicit markers, and a bare Number is the least specific.
func (c Category) Specificity() int {
	switch c {
	case CatDate:
		return 5
	case CatTime:
		return 4
	case CatMoney:
		return 3
	case CatFraction:
		return 2
	case CatNumber:
		return 1
	}
	return 0
}

// Rule is one pattern-to-rendering rewrite for a (language, operator,
// category) triple. Rules are read-only after compilation and shared
// across all normalize calls for their grammar.
type Rule struct {
	Category Category
	Name     string
	pattern  *Pattern
	render   func(c Captures) (string, bool)
}

// TryMatch attempts to match the rule at pos in rs. A structural match
// whose rendering is rejected (semantic validation failure) reports no
// match.
func (r *Rule) TryMatch(rs []rune, pos int) (Match, bool) {
	end, caps, ok := r.pattern.Match(rs, pos)
	if !ok {
		return Match{}, false
	}
	out, ok := r.render(caps)
	if !ok {
		return Match{}, false
	}
	return Match{Start: pos, End: end, Rule: r, Output: out}, true
}

// Match is a candidate resolution of a span region by a rule.
// Matches are transient: produced and consumed within one normalize call.
type Match struct {
	Start  int // rune offset into the matched region (inclusive)
	End    int // rune offset (exclusive)
	Rule   *Rule
	Output string
}

// Len returns the matched length in runes.
func (m Match) Len() int { return m.End - m.Start }

// Options carries compilation switches recovered from the reference
// implementation's configuration.
type Options struct {
	// Enable0To9 lets ITN grammars convert isolated single-digit words
	// (零..九). Off by default: an isolated 一 usually reads better as text.
	Enable0To9 bool
}

// Grammar is the immutable rule set for one (Language, Operator) pair.
type Grammar struct {
	Lang  Language
	Op    Operator
	rules []*Rule
	alpha *alphabet
}

// Rules returns the rules in registration order. Callers must not modify
// the returned slice.
func (g *Grammar) Rules() []*Rule { return g.rules }

// Compile builds the grammar for the given pair. It returns an error for
// pairs with no registered rule set (notably English ITN).
func Compile(lang Language, op Operator, o Options) (*Grammar, error) {
	var (
		rules []*Rule
		err   error
	)
	switch {
	case lang == Zh && op == TN:
		rules, err = zhTNRules()
	case lang == Zh && op == ITN:
		rules, err = zhITNRules(o)
	case lang == Ja && op == TN:
		rules, err = jaTNRules()
	case lang == Ja && op == ITN:
		rules, err = jaITNRules(o)
	case lang == En && op == TN:
		rules, err = enTNRules()
	default:
		return nil, fmt.Errorf("grammar: no %s grammar registered for language %s", op, lang)
	}
	if err != nil {
		return nil, err
	}
	return &Grammar{Lang: lang, Op: op, rules: rules, alpha: compileAlphabet(rules)}, nil
}
