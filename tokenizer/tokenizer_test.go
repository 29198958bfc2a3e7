package tokenizer

import (
	"testing"

	"github.com/SpenserCai/wetext/grammar"
)

func mustGrammar(t *testing.T, lang grammar.Language, op grammar.Operator) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Compile(lang, op, grammar.Options{})
	if err != nil {
		t.Fatalf("Compile(%s, %s): %v", lang, op, err)
	}
	return g
}

// checkCoverage verifies spans are in order, contiguous, and reproduce
// the input exactly.
func checkCoverage(t *testing.T, text string, spans []Span) {
	t.Helper()
	pos := 0
	var joined string
	for _, sp := range spans {
		if sp.Start != pos {
			t.Fatalf("span %q starts at %d, want %d", sp.Text, sp.Start, pos)
		}
		if sp.End-sp.Start != len([]rune(sp.Text)) {
			t.Fatalf("span %q has offsets [%d,%d)", sp.Text, sp.Start, sp.End)
		}
		pos = sp.End
		joined += sp.Text
	}
	if joined != text {
		t.Fatalf("spans join to %q, want %q", joined, text)
	}
	if pos != len([]rune(text)) {
		t.Fatalf("spans end at %d, want %d", pos, len([]rune(text)))
	}
}

func TestSegmentZhTN(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	text := "今天是2024年1月15日，价格100元。"
	spans := Segment(text, g)
	checkCoverage(t, text, spans)

	want := []struct {
		text string
		kind Kind
	}{
		{"今天是", Plain},
		{"2024年1月15日", Date},
		{"，价格", Plain},
		{"100元", Money},
		{"。", Plain},
	}
	if len(spans) != len(want) {
		t.Fatalf("got %d spans %v, want %d", len(spans), spans, len(want))
	}
	for i, w := range want {
		if spans[i].Text != w.text || spans[i].Kind != w.kind {
			t.Errorf("span %d = (%q, %s), want (%q, %s)", i, spans[i].Text, spans[i].Kind, w.text, w.kind)
		}
	}
}

// Marker characters with no digit are ordinary prose under TN.
func TestSegmentTriggerDemotion(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	for _, text := range []string{"点名时间到了", "半年分成两半"} {
		spans := Segment(text, g)
		checkCoverage(t, text, spans)
		for _, sp := range spans {
			if sp.Kind != Plain {
				t.Errorf("Segment(%q) produced candidate span %q", text, sp.Text)
			}
		}
	}
}

// Under ITN the numeral words themselves are triggers.
func TestSegmentZhITNTriggers(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.ITN)
	spans := Segment("三点半", g)
	checkCoverage(t, "三点半", spans)
	if len(spans) != 1 || spans[0].Kind == Plain {
		t.Fatalf("Segment(三点半) = %v, want one candidate span", spans)
	}

	spans = Segment("点半", g)
	for _, sp := range spans {
		if sp.Kind != Plain {
			t.Errorf("Segment(点半) produced candidate span %q", sp.Text)
		}
	}
}

func TestSegmentEmpty(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	if spans := Segment("", g); spans != nil {
		t.Fatalf("Segment(\"\") = %v, want nil", spans)
	}
}

func TestSegmentWhitespace(t *testing.T) {
	g := mustGrammar(t, grammar.Zh, grammar.TN)
	text := "  100元  "
	spans := Segment(text, g)
	checkCoverage(t, text, spans)
	if spans[0].Text != "  " || spans[0].Kind != Plain {
		t.Fatalf("leading whitespace span = %+v", spans[0])
	}
	if last := spans[len(spans)-1]; last.Text != "  " || last.Kind != Plain {
		t.Fatalf("trailing whitespace span = %+v", last)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{Plain: "plain", Date: "date", Money: "money"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
