package numword

import "testing"

// FuzzConvertZh verifies that conversion never panics for any int64.
func FuzzConvertZh(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(123))
	f.Add(int64(-123))
	f.Add(int64(9_999_999_999_999_999))
	f.Add(int64(-9223372036854775808))

	f.Fuzz(func(t *testing.T, n int64) {
		_ = ConvertZh(n)
		_ = ConvertJa(n)
		_ = CardinalEn(n)
	})
}

// FuzzParseZh verifies that parsing never panics for any string input.
func FuzzParseZh(f *testing.F) {
	f.Add("")
	f.Add("一百二十三")
	f.Add("幺二三")
	f.Add("负五")
	f.Add("二〇二四")
	f.Add("hello")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		_, _ = ParseZh(s)
		_, _ = ParseJa(s)
		_, _ = ParseDigitsZh(s)
		_, _ = ParseDigitsJa(s)
	})
}

// FuzzZhRoundTrip verifies ParseZh(ConvertZh(n)) == n for in-range n.
func FuzzZhRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(42))
	f.Add(int64(10005))
	f.Add(int64(120000000))

	f.Fuzz(func(t *testing.T, n int64) {
		text := ConvertZh(n)
		if text == "" || n <= 0 {
			return
		}
		got, ok := ParseZh(text)
		if !ok || got != n {
			t.Errorf("ParseZh(ConvertZh(%d)) = (%d, %v), text %q", n, got, ok, text)
		}
	})
}
