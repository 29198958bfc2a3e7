package grammar_test

import (
	"strings"
	"testing"

	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/resolver"
)

func mustCompile(t *testing.T, lang grammar.Language, op grammar.Operator, o grammar.Options) *grammar.Grammar {
	t.Helper()
	g, err := grammar.Compile(lang, op, o)
	if err != nil {
		t.Fatalf("Compile(%s, %s): %v", lang, op, err)
	}
	return g
}

// rewrite resolves the whole string as one candidate region.
func rewrite(g *grammar.Grammar, s string) string {
	var b strings.Builder
	for _, p := range resolver.Resolve([]rune(s), g) {
		b.WriteString(p.Output)
	}
	return b.String()
}

func TestZhTN(t *testing.T) {
	g := mustCompile(t, grammar.Zh, grammar.TN, grammar.Options{})
	tests := []struct {
		in   string
		want string
	}{
		{"2024年1月15日", "二零二四年一月十五日"},
		{"98年", "九八年"},
		{"1月", "一月"},
		{"2024-1-15", "二零二四年一月十五日"},
		{"2024/1/15", "二零二四年一月十五日"},
		{"15:30", "十五点三十分"},
		{"15:00", "十五点"},
		{"8:05", "八点零五分"},
		{"12:30:45", "十二点三十分四十五秒"},
		{"下午3点30分", "下午三点三十分"},
		{"3点半", "三点半"},
		{"3点", "三点"},
		{"100元", "一百元"},
		{"1元5角", "一元五角"},
		{"1元5角3分", "一元五角三分"},
		{"$10.5", "十点五美元"},
		{"50%", "百分之五十"},
		{"0.5%", "百分之零点五"},
		{"3/4", "四分之三"},
		{"-3/4", "负四分之三"},
		{"1.5", "一点五"},
		{"-5", "负五"},
		{"第1名", "第一名"},
		{"123", "幺二三"},
		{"1,234", "一千二百三十四"},
		{"你好", "你好"},
	}
	for _, tt := range tests {
		if got := rewrite(g, tt.in); got != tt.want {
			t.Errorf("rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// A structurally matched span whose rendering is rejected falls through
// to shorter matches or passthrough.
func TestZhTNSemanticReject(t *testing.T) {
	g := mustCompile(t, grammar.Zh, grammar.TN, grammar.Options{})
	tests := []struct {
		in   string
		want string
	}{
		{"13月", "幺三月"}, // month 13 is not a date
		{"2月30日", "二月三零日"}, // February 30 is not a date
		{"25:30", "二五:三零"}, // hour 25 is not a clock reading
	}
	for _, tt := range tests {
		if got := rewrite(g, tt.in); got != tt.want {
			t.Errorf("rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestZhITN(t *testing.T) {
	g := mustCompile(t, grammar.Zh, grammar.ITN, grammar.Options{})
	tests := []struct {
		in   string
		want string
	}{
		{"一百二十三", "123"},
		{"十二万", "120000"},
		{"二零二四年一月十五日", "2024年1月15日"},
		{"三月五日", "3月5日"},
		{"下午三点三十分", "下午3点30分"},
		{"三点半", "3点半"},
		{"三点", "3点"},
		{"一点五", "1.5"},
		{"一百元", "100元"},
		{"十点五元", "10.5元"},
		{"两百块", "200块"},
		{"一元五角", "1元5角"},
		{"百分之五十", "50%"},
		{"百分之百", "100%"},
		{"四分之三", "3/4"},
		{"负四分之三", "-3/4"},
		{"第一百", "第100"},
		{"负五", "-5"},
		{"幺二三", "123"},
		{"十", "10"},
		{"一", "一"}, // isolated single-digit word stays as text
		{"我有一个苹果", "我有一个苹果"},
	}
	for _, tt := range tests {
		if got := rewrite(g, tt.in); got != tt.want {
			t.Errorf("rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestZhITNEnable0To9(t *testing.T) {
	g := mustCompile(t, grammar.Zh, grammar.ITN, grammar.Options{Enable0To9: true})
	for in, want := range map[string]string{"一": "1", "九": "9", "十": "10"} {
		if got := rewrite(g, in); got != want {
			t.Errorf("rewrite(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCompileUnsupported(t *testing.T) {
	if _, err := grammar.Compile(grammar.En, grammar.ITN, grammar.Options{}); err == nil {
		t.Fatal("Compile(en, itn) succeeded, want error")
	}
	if _, err := grammar.Compile(grammar.Auto, grammar.TN, grammar.Options{}); err == nil {
		t.Fatal("Compile(auto, tn) succeeded, want error")
	}
}
