package numword

import "testing"

func TestCardinalEn(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{15, "fifteen"},
		{23, "twenty-three"},
		{100, "one hundred"},
		{123, "one hundred twenty-three"},
		{1234, "one thousand two hundred thirty-four"},
		{999999, "nine hundred ninety-nine thousand nine hundred ninety-nine"},
	}
	for _, tt := range tests {
		if got := CardinalEn(tt.n); got != tt.want {
			t.Errorf("CardinalEn(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOrdinalEn(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, "fourth"},
		{5, "fifth"},
		{9, "ninth"},
		{12, "twelfth"},
		{15, "fifteenth"},
		{20, "twentieth"},
		{23, "twenty-third"},
		{31, "thirty-first"},
		{100, "one hundredth"},
	}
	for _, tt := range tests {
		if got := OrdinalEn(tt.n); got != tt.want {
			t.Errorf("OrdinalEn(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestYearEn(t *testing.T) {
	tests := []struct {
		y    int
		want string
	}{
		{1999, "nineteen ninety-nine"},
		{2024, "twenty twenty-four"},
		{2000, "two thousand"},
		{2005, "two thousand five"},
		{1900, "nineteen hundred"},
		{1905, "nineteen oh five"},
		{800, "eight hundred"},
	}
	for _, tt := range tests {
		if got := YearEn(tt.y); got != tt.want {
			t.Errorf("YearEn(%d) = %q, want %q", tt.y, got, tt.want)
		}
	}
}

func TestDigitsEn(t *testing.T) {
	if got := DigitsEn("007"); got != "zero zero seven" {
		t.Errorf("DigitsEn(007) = %q", got)
	}
	if got := DigitsEn("14"); got != "one four" {
		t.Errorf("DigitsEn(14) = %q", got)
	}
}
