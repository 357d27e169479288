package dts

import (
	"keyzone/internal/diag"
	"keyzone/internal/source"
	"keyzone/internal/token"
)

// diagSpan points at the next token, or just past the last consumed one
// when the stream has ended.
func (p *parser) diagSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code and leaves the stream
// untouched.
func (p *parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes ...diag.Note) {
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
}

// resync skips to the next ';' (consumed) or '}' (left for the caller).
func (p *parser) resync() {
	p.resyncUntil(token.Semicolon, token.RBrace)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// resyncTop drops the offending token and everything up to the next node
// start or ';'.
func (p *parser) resyncTop() {
	p.advance()
	for !p.at(token.EOF) && !p.startsNode() {
		if p.advance().Kind == token.Semicolon {
			return
		}
	}
}

func (p *parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(stop...) {
		p.advance()
	}
}

// skipStatement drops `/dts-v1/;`, `/delete-node/ &x;` and similar.
func (p *parser) skipStatement() {
	p.resyncUntil(token.Semicolon, token.RBrace, token.EOF)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// skipMacroCall drops an unexpanded preprocessor call such as
// `ZMK_BEHAVIOR(x, hold_tap, ...)` with its balanced parentheses.
func (p *parser) skipMacroCall() {
	p.advance() // name
	depth := 0
	for !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		if depth == 0 {
			break
		}
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "'" + tok.Text + "'"
}
