package scheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CapitalizationMode describes how the letters of a generated value are cased.
type CapitalizationMode string

// Capitalization modes.
const (
	CapitalizationRetain      CapitalizationMode = "retain"
	CapitalizationSentence    CapitalizationMode = "sentence"
	CapitalizationUpper       CapitalizationMode = "upper"
	CapitalizationLower       CapitalizationMode = "lower"
	CapitalizationFirstLetter CapitalizationMode = "first letter"
	CapitalizationRandom      CapitalizationMode = "random"
)

// CapitalizationModes lists every mode in display order.
func CapitalizationModes() []CapitalizationMode {
	return []CapitalizationMode{
		CapitalizationRetain,
		CapitalizationSentence,
		CapitalizationUpper,
		CapitalizationLower,
		CapitalizationFirstLetter,
		CapitalizationRandom,
	}
}

// ParseCapitalization converts a mode name to a CapitalizationMode.
// Case is ignored and "first-letter" and "first_letter" are accepted as well.
func ParseCapitalization(s string) (CapitalizationMode, bool) {
	normalized := strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s)))
	for _, m := range CapitalizationModes() {
		if string(m) == normalized {
			return m, true
		}
	}
	return "", false
}

func (m CapitalizationMode) String() string {
	return string(m)
}

// Coin decides the case of a single letter in random mode.
type Coin func() bool

// Apply returns s cased according to m. flip is only consulted in random
// mode, once per rune; a nil flip leaves s unchanged in that mode.
func (m CapitalizationMode) Apply(s string, flip Coin) string {
	if parsed, ok := ParseCapitalization(string(m)); ok {
		m = parsed
	}
	switch m {
	case CapitalizationSentence:
		return sentenceCase(s)
	case CapitalizationUpper:
		return cases.Upper(language.Und).String(s)
	case CapitalizationLower:
		return cases.Lower(language.Und).String(s)
	case CapitalizationFirstLetter:
		return cases.Title(language.Und).String(s)
	case CapitalizationRandom:
		if flip == nil {
			return s
		}
		return strings.Map(func(r rune) rune {
			if flip() {
				return unicode.ToUpper(r)
			}
			return unicode.ToLower(r)
		}, s)
	default:
		return s
	}
}

func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(first)) + cases.Lower(language.Und).String(s[size:])
}
