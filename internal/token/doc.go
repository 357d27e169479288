// Package token defines lexical token kinds and trivia for devicetree keymap
// sources.
// Invariants:
//   - Token.Text is the exact source text covered by Token.Span.
//   - Comments, whitespace and preprocessor lines (#include, #define, ...)
//     are leading Trivia and never appear in the main token stream.
//   - Numbers, property names, node names and key identifiers are all Ident;
//     the lexer does not distinguish them.
package token
