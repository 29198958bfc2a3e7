package script

import "testing"

func TestTraditionalToSimplified(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"現在時間", "现在时间"},
		{"兩百塊錢", "两百块钱"},
		{"已经是简体", "已经是简体"},
		{"hello", "hello"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TraditionalToSimplified(tt.in); got != tt.want {
			t.Errorf("TraditionalToSimplified(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFullToHalf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"１２３", "123"},
		{"ＡＢＣ", "ABC"},
		{"１５：３０", "15:30"},
		{"abc", "abc"},
	}
	for _, tt := range tests {
		if got := FullToHalf(tt.in); got != tt.want {
			t.Errorf("FullToHalf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveErhua(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"在哪儿呢", "在哪呢"},
		{"这儿和那儿", "这和那"},
		{"儿子", "儿子"}, // leading 儿 is a real word
		{"没有", "没有"},
	}
	for _, tt := range tests {
		if got := RemoveErhua(tt.in); got != tt.want {
			t.Errorf("RemoveErhua(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveInterjections(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"嗯这个好", "这个好"},
		{"啊，是的", "，是的"},
		{"um let me think", "let me think"},
		{"umbrella", "umbrella"}, // only standalone words
		{"えーとそうです", "そうです"},
		{"没有填充词", "没有填充词"},
	}
	for _, tt := range tests {
		if got := RemoveInterjections(tt.in); got != tt.want {
			t.Errorf("RemoveInterjections(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemovePuncts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"你好，世界！", "你好世界"},
		{"a, b. c?", "a b c"},
		{"100%", "100"},
		{"no punctuation", "no punctuation"},
	}
	for _, tt := range tests {
		if got := RemovePuncts(tt.in); got != tt.want {
			t.Errorf("RemovePuncts(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
