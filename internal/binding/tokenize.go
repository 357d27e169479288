package binding

import "strings"

// Sigil opens every binding token.
const Sigil = '&'

// Tokenize splits a bindings string into tokens, one per sigil. Whitespace
// runs collapse to one space, each token keeps its leading '&' and is
// trimmed, and any text before the first sigil is dropped.
func Tokenize(bindings string) []string {
	s := strings.Join(strings.Fields(bindings), " ")
	first := strings.IndexByte(s, Sigil)
	if first < 0 {
		return nil
	}
	s = s[first:]

	tokens := make([]string, 0, strings.Count(s, string(Sigil)))
	for len(s) > 0 {
		next := strings.IndexByte(s[1:], Sigil)
		if next < 0 {
			tokens = append(tokens, strings.TrimSpace(s))
			break
		}
		tokens = append(tokens, strings.TrimSpace(s[:next+1]))
		s = s[next+1:]
	}
	return tokens
}
