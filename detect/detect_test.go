package detect

import (
	"testing"

	"github.com/SpenserCai/wetext/grammar"
)

func TestLang(t *testing.T) {
	tests := []struct {
		in   string
		want grammar.Language
	}{
		{"今天是星期一", grammar.Zh},
		{"价格是100元", grammar.Zh},
		{"こんにちは", grammar.Ja},
		{"カタカナ", grammar.Ja},
		{"料金は100円です", grammar.Ja}, // kana wins over Han
		{"漢字だけではない", grammar.Ja},
		{"hello world", grammar.En},
		{"The price is 100", grammar.En},
		{"123", grammar.Zh}, // numeric-only input gets the Chinese grammar
		{"3/4", grammar.Zh},
		{"", grammar.En},
	}
	for _, tt := range tests {
		if got := Lang(tt.in); got != tt.want {
			t.Errorf("Lang(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
