// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the keymap pipeline (source -> lexer -> dts -> extract -> keymap).
// They guard against panics, hangs and order or shape violations on inputs
// no real keymap would contain.
package fuzztests
