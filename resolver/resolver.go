// Package resolver applies a compiled grammar to segmented spans and
// assembles the rewritten output.
//
// Within a candidate span the resolver scans left to right. At each
// position every rule gets a chance; the winner is chosen by longest
// match, then higher category specificity, then earliest registration.
// Positions no rule accepts are copied through unchanged, so resolution
// is total: any input produces output.
package resolver

import (
	"strings"

	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/tokenizer"
)

// Piece is one resolved fragment of a candidate span. A nil Rule marks
// verbatim passthrough.
type Piece struct {
	Start  int // rune offset within the span, inclusive
	End    int // rune offset within the span, exclusive
	Output string
	Rule   *grammar.Rule
}

// Resolve rewrites one candidate region. The returned pieces are in
// order, non-overlapping, and cover [0, len(rs)) exactly.
func Resolve(rs []rune, g *grammar.Grammar) []Piece {
	var pieces []Piece
	pos := 0
	for pos < len(rs) {
		m, ok := bestMatch(rs, pos, g)
		if !ok {
			if n := len(pieces); n > 0 && pieces[n-1].Rule == nil {
				pieces[n-1].End = pos + 1
				pieces[n-1].Output += string(rs[pos])
			} else {
				pieces = append(pieces, Piece{pos, pos + 1, string(rs[pos]), nil})
			}
			pos++
			continue
		}
		pieces = append(pieces, Piece{m.Start, m.End, m.Output, m.Rule})
		pos = m.End
	}
	return pieces
}

// bestMatch tries every rule at pos and picks the winner.
func bestMatch(rs []rune, pos int, g *grammar.Grammar) (grammar.Match, bool) {
	var (
		best  grammar.Match
		found bool
	)
	for _, r := range g.Rules() {
		m, ok := r.TryMatch(rs, pos)
		if !ok {
			continue
		}
		switch {
		case !found,
			m.Len() > best.Len(),
			m.Len() == best.Len() &&
				m.Rule.Category.Specificity() > best.Rule.Category.Specificity():
			best, found = m, true
		}
	}
	return best, found
}

// Rewrite resolves every candidate span and concatenates the result,
// copying plain spans verbatim.
func Rewrite(spans []tokenizer.Span, g *grammar.Grammar) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Kind == tokenizer.Plain {
			b.WriteString(sp.Text)
			continue
		}
		for _, p := range Resolve([]rune(sp.Text), g) {
			b.WriteString(p.Output)
		}
	}
	return b.String()
}
