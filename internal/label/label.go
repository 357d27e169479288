// Package label turns ZMK key identifiers into short display labels.
package label

import (
	"unicode/utf8"
)

// Format returns the display label for a key identifier. Unknown identifiers
// are returned unchanged, and Format(Format(s)) == Format(s) for every s.
func Format(key string) string {
	if l, ok := keyLabels[key]; ok {
		return l
	}
	switch {
	case len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z':
		return key
	case len(key) >= 2 && key[0] == 'F' && allDigits(key[1:]):
		return key
	case len(key) == 2 && key[0] == 'N' && isDigit(key[1]):
		return key[1:]
	}
	return key
}

// ShortModifier returns the one-letter modifier abbreviation: G, A, S or C
// for known modifiers, otherwise the first rune of mod, or "?" when empty.
func ShortModifier(mod string) string {
	if s, ok := modifierShort[mod]; ok {
		return s
	}
	if mod == "" {
		return "?"
	}
	r, size := utf8.DecodeRuneInString(mod)
	if r == utf8.RuneError && size <= 1 {
		return mod[:1]
	}
	return string(r)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
