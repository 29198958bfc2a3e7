package resolver

import (
	"testing"

	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/tokenizer"
)

func mustGrammar(t *testing.T, lang grammar.Language, op grammar.Operator) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Compile(lang, op, grammar.Options{})
	if err != nil {
		t.Fatalf("Compile(%s, %s): %v", lang, op, err)
	}
	return g
}

// Pieces must be in order, non-overlapping, and cover the region exactly.
func TestResolveCoverage(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	for _, text := range []string{"2024年1月15日", "abc123def", "你好", "100元和200块"} {
		rs := []rune(text)
		pos := 0
		for _, p := range Resolve(rs, g) {
			if p.Start != pos {
				t.Fatalf("Resolve(%q): piece %q starts at %d, want %d", text, p.Output, p.Start, pos)
			}
			if p.End <= p.Start {
				t.Fatalf("Resolve(%q): empty piece at %d", text, p.Start)
			}
			pos = p.End
		}
		if pos != len(rs) {
			t.Fatalf("Resolve(%q): pieces end at %d, want %d", text, pos, len(rs))
		}
	}
}

// Adjacent unmatched runes collapse into one passthrough piece.
func TestResolvePassthroughMerge(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	pieces := Resolve([]rune("你好123世界"), g)
	if len(pieces) != 3 {
		t.Fatalf("got %d pieces %v, want 3", len(pieces), pieces)
	}
	if pieces[0].Rule != nil || pieces[0].Output != "你好" {
		t.Errorf("piece 0 = %+v, want passthrough 你好", pieces[0])
	}
	if pieces[1].Rule == nil || pieces[1].Output != "幺二三" {
		t.Errorf("piece 1 = %+v, want 幺二三", pieces[1])
	}
	if pieces[2].Rule != nil || pieces[2].Output != "世界" {
		t.Errorf("piece 2 = %+v, want passthrough 世界", pieces[2])
	}
}

// The date rule covers the whole run even though shorter number matches
// exist at the same position.
func TestResolveLongestMatch(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	rs := []rune("2024年1月15日")
	pieces := Resolve(rs, g)
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces %v, want 1", len(pieces), pieces)
	}
	p := pieces[0]
	if p.Rule == nil || p.Rule.Category != grammar.CatDate || p.End != len(rs) {
		t.Fatalf("piece = %+v, want one date match over the full run", p)
	}
}

// 一点五 reads as the number 1.5, not the time 一点 followed by 五: the
// longer match wins.
func TestResolveLongestMatchITN(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.ITN)
	pieces := Resolve([]rune("一点五"), g)
	if len(pieces) != 1 || pieces[0].Output != "1.5" {
		t.Fatalf("got %v, want single piece 1.5", pieces)
	}
	pieces = Resolve([]rune("三点"), g)
	if len(pieces) != 1 || pieces[0].Output != "3点" {
		t.Fatalf("got %v, want single piece 3点", pieces)
	}
}

func TestRewrite(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	spans := tokenizer.Segment("今天是2024年1月15日，价格100元。", g)
	got := Rewrite(spans, g)
	want := "今天是二零二四年一月十五日，价格一百元。"
	if got != want {
		t.Fatalf("Rewrite = %q, want %q", got, want)
	}
}

func TestRewriteEmpty(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	if got := Rewrite(nil, g); got != "" {
		t.Fatalf("Rewrite(nil) = %q, want empty", got)
	}
}
