package token

import (
	"keyzone/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// HasGap reports whether any trivia (whitespace, comment, directive)
// separates this token from the previous one.
func (t Token) HasGap() bool {
	return len(t.Leading) > 0
}
