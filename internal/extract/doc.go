// Package extract finds layer blocks and combos in a parsed keymap document.
//
// Layers are located by a chain of strategies tried in order until one
// yields at least one layer; the first is the structural `zmk,keymap`
// pattern and the last is a raw token scan that works on malformed input.
package extract
