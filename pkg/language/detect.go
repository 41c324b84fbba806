// Package language identifies the dominant script of a symptom text.
// The result is diagnostic metadata and never changes classification.
package language

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"github.com/zen-systems/medtriage/pkg/schema"
)

const scriptThreshold = 0.1

// Unicode blocks of the non-Latin scripts.
var (
	kannada    = runeRange{lo: 0x0C80, hi: 0x0CFF}
	devanagari = runeRange{lo: 0x0900, hi: 0x097F}
)

type runeRange struct {
	lo, hi rune
}

func (r runeRange) contains(c rune) bool {
	return c >= r.lo && c <= r.hi
}

// Detect returns the dominant script language of text.
// Kannada wins over Hindi when both exceed the threshold.
func Detect(text string) schema.LanguageDetection {
	var kn, hi int
	for _, c := range text {
		switch {
		case kannada.contains(c):
			kn++
		case devanagari.contains(c):
			hi++
		}
	}

	total := utf8.RuneCountInString(strings.TrimSpace(text))
	result := schema.LanguageDetection{Language: schema.LangEnglish, Ratio: 1.0}
	switch {
	case float64(kn) > float64(total)*scriptThreshold:
		result = schema.LanguageDetection{Language: schema.LangKannada, Ratio: float64(kn) / float64(total)}
	case float64(hi) > float64(total)*scriptThreshold:
		result = schema.LanguageDetection{Language: schema.LangHindi, Ratio: float64(hi) / float64(total)}
	}

	if total > 0 {
		info := whatlanggo.Detect(text)
		result.Guess = info.Lang.Iso6391()
		result.GuessConfidence = info.Confidence
	}
	return result
}
