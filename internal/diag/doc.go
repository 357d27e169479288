// Package diag defines the diagnostic model shared by the lexer and the
// devicetree parser.
//
// A Diagnostic carries a Severity, a stable Code (rendered as LEXnnnn /
// SYNnnnn), a short message, the primary source.Span and optional notes.
// Producers emit through a Reporter; BagReporter collects into a Bag that
// supports a size limit and deterministic sorting. Formatting lives in
// internal/diagfmt.
//
// Diagnostics never stop the keymap pipeline. Whether a document is usable is
// decided by layer extraction, not by the presence of errors here.
package diag
