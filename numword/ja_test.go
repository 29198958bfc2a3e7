package numword

import "testing"

func TestConvertJa(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "〇"},
		{1, "一"},
		{10, "十"},
		{15, "十五"},
		{100, "百"},
		{123, "百二十三"},
		{1000, "千"},
		{1500, "千五百"},
		{10000, "一万"},
		{12345, "一万二千三百四十五"},
		{100000000, "一億"},
		{-5, "マイナス五"},
	}
	for _, tt := range tests {
		if got := ConvertJa(tt.n); got != tt.want {
			t.Errorf("ConvertJa(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestDigitsJa(t *testing.T) {
	if got := DigitsJa("2024"); got != "二〇二四" {
		t.Errorf("DigitsJa(2024) = %q, want 二〇二四", got)
	}
}

func TestParseJa(t *testing.T) {
	tests := []struct {
		s    string
		want int64
		ok   bool
	}{
		{"〇", 0, true},
		{"一", 1, true},
		{"十五", 15, true},
		{"百", 100, true},
		{"百二十三", 123, true},
		{"千五百", 1500, true},
		{"一万", 10000, true},
		{"一億二千万", 120000000, true},
		{"", 0, false},
		{"二〇二四", 0, false},
		{"こんにちは", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseJa(tt.s)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseJa(%q) = (%d, %v), want (%d, %v)", tt.s, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDigitsJa(t *testing.T) {
	got, ok := ParseDigitsJa("二〇二四")
	if !ok || got != "2024" {
		t.Errorf("ParseDigitsJa(二〇二四) = (%q, %v), want (2024, true)", got, ok)
	}
}

func TestJaRoundTrip(t *testing.T) {
	for _, n := range []int64{1, 10, 15, 100, 123, 1500, 10000, 12345, 100000000} {
		text := ConvertJa(n)
		got, ok := ParseJa(text)
		if !ok || got != n {
			t.Errorf("ParseJa(ConvertJa(%d)) = (%d, %v), text %q", n, got, ok, text)
		}
	}
}
