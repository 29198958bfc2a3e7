package grammar_test

import (
	"testing"

	"github.com/SpenserCai/wetext/grammar"
)

func TestJaTN(t *testing.T) {
	g := mustCompile(t, grammar.Ja, grammar.TN, grammar.Options{})
	tests := []struct {
		in   string
		want string
	}{
		{"2024年1月15日", "二〇二四年一月十五日"},
		{"3:30", "三時三十分"},
		{"3:00", "三時"},
		{"午後3時30分", "午後三時三十分"},
		{"3時半", "三時半"},
		{"100円", "百円"},
		{"1000円", "千円"},
		{"50%", "五十パーセント"},
		{"3/4", "四分の三"},
		{"-3/4", "マイナス四分の三"},
		{"1.5", "一点五"},
		{"-5", "マイナス五"},
		{"123", "百二十三"},
		{"007", "〇〇七"},
		{"第3", "第三"},
		{"こんにちは", "こんにちは"},
	}
	for _, tt := range tests {
		if got := rewrite(g, tt.in); got != tt.want {
			t.Errorf("rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJaITN(t *testing.T) {
	g := mustCompile(t, grammar.Ja, grammar.ITN, grammar.Options{})
	tests := []struct {
		in   string
		want string
	}{
		{"百二十三", "123"},
		{"二〇二四年", "2024年"},
		{"二〇二四年一月十五日", "2024年1月15日"},
		{"三時三十分", "3時30分"},
		{"三時半", "3時半"},
		{"三時", "3時"},
		{"百円", "100円"},
		{"十点五円", "10.5円"},
		{"五十パーセント", "50%"},
		{"四分の三", "3/4"},
		{"マイナス五", "-5"},
		{"第十", "第10"},
		{"十", "10"},
		{"一", "一"}, // isolated single-digit word stays as text
	}
	for _, tt := range tests {
		if got := rewrite(g, tt.in); got != tt.want {
			t.Errorf("rewrite(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJaITNEnable0To9(t *testing.T) {
	g := mustCompile(t, grammar.Ja, grammar.ITN, grammar.Options{Enable0To9: true})
	for in, want := range map[string]string{"一": "1", "五": "5"} {
		if got := rewrite(g, in); got != want {
			t.Errorf("rewrite(%q) = %q, want %q", in, got, want)
		}
	}
}
