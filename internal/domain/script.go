package domain

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Script is the bucket a character is classified into.
type Script int

const (
	// ScriptLatin covers everything that is not Korean: Latin, digits,
	// punctuation and any other script.
	ScriptLatin Script = iota
	ScriptKorean
)

// String returns a human-readable representation of the script.
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "Latin"
	case ScriptKorean:
		return "Korean"
	default:
		return "Unknown"
	}
}

// hangul holds the compatibility jamo consonants and vowels and the
// precomposed syllables.
var hangul = rangetable.Merge(
	&unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x3131, Hi: 0x314e, Stride: 1}, // ㄱ-ㅎ
		{Lo: 0x314f, Hi: 0x3163, Stride: 1}, // ㅏ-ㅣ
	}},
	&unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0xac00, Hi: 0xd7a3, Stride: 1}, // 가-힣
	}},
)

// ScriptOf classifies a single character.
func ScriptOf(r rune) Script {
	if unicode.Is(hangul, r) {
		return ScriptKorean
	}
	return ScriptLatin
}
