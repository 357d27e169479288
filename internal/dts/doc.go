// Package dts reads devicetree-style keymap sources into a small document
// tree of nodes and properties.
//
// The reader is tolerant: syntax problems are reported through a
// diag.Reporter and parsing resumes at the next ';' or '}'. Preprocessor
// lines arrive as trivia from the lexer and never reach the parser.
package dts
