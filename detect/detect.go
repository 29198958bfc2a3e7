// Package detect identifies the input language when the normalizer is
// configured with automatic detection.
//
// Detection is script-based and intentionally simple: any kana rune
// decides Japanese immediately, Han ideographs decide Chinese (kana
// already ruled out Japanese), and text without ASCII letters (bare
// digits, fractions, amounts) defaults to Chinese so that numeric-only
// input gets the Chinese grammar. Everything else is English.
//
// All functions are safe for concurrent use by multiple goroutines.
package detect

import (
	"github.com/SpenserCai/wetext/grammar"
	"github.com/SpenserCai/wetext/internal/runeset"
)

// Lang returns the detected language of text. Empty text detects as
// English.
func Lang(text string) grammar.Language {
	hasHan := false
	hasAlpha := false
	seen := false
	for _, r := range text {
		seen = true
		if runeset.IsHiragana(r) || runeset.IsKatakana(r) {
			return grammar.Ja
		}
		if runeset.IsHan(r) {
			hasHan = true
		}
		if runeset.IsASCIILetter(r) {
			hasAlpha = true
		}
	}
	if hasHan {
		return grammar.Zh
	}
	if seen && !hasAlpha {
		return grammar.Zh
	}
	return grammar.En
}
