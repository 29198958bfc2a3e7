// Package numword converts between numeric values and their spoken-word
// renderings for Chinese, Japanese, and English.
//
// Three rune-table families are provided per CJK language:
//
//   - Value reading: positional magnitude words ("123" ↔ 一百二十三).
//   - Digit reading: one word per digit ("2024" ↔ 二零二四). Chinese
//     additionally has a telephone-style digit reading that uses 幺 for 1.
//   - Parsing: the inverse of both readings, returning the digit string or
//     integer value.
//
// English rendering wraps moul.io/number-to-words for cardinals and derives
// ordinal and year readings from the cardinal form.
//
// All functions are pure and safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Value conversion covers |n| < 10^16. Larger magnitudes return "".
//   - Parsing accepts well-formed number phrases only; mixed digit/value
//     readings (e.g. 二零二四 inside a value phrase) return ok=false.
package numword

// maxAbs is the largest absolute value the CJK value readings cover.
// 10^16-1 spans 千万亿 / 千兆, beyond anything the grammars tag.
const maxAbs = 9_999_999_999_999_999
