package dts

import (
	"strings"

	"keyzone/internal/diag"
	"keyzone/internal/token"
)

func (p *parser) parseValue() (Value, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.String:
		p.advance()
		return Value{Kind: ValueString, Text: unquote(tok.Text), Span: tok.Span}, true
	case token.LAngle:
		return p.parseList(ValueCells, token.LAngle, token.RAngle)
	case token.LBracket:
		return p.parseList(ValueBytes, token.LBracket, token.RBracket)
	case token.Amp:
		p.advance()
		ref, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected label after '&'")
		if !ok {
			return Value{}, false
		}
		return Value{Kind: ValueRef, Text: ref.Text, Span: tok.Span.Cover(ref.Span)}, true
	}
	p.report(diag.SynUnexpectedToken, diag.SevError, p.diagSpan(), "expected property value, got "+describe(tok))
	return Value{}, false
}

// parseList reads a bracketed list. Parentheses nest, so `<(1 << 2)>` stays
// one value.
func (p *parser) parseList(kind ValueKind, open, closeKind token.Kind) (Value, bool) {
	openTok := p.advance()
	var items []token.Token
	depth := 0
	for {
		tok := p.peek()
		if depth == 0 && tok.Kind == closeKind {
			break
		}
		if tok.Kind.IsTerminator() {
			code := diag.SynUnclosedAngleBracket
			msg := "unclosed '<' in cell list"
			if open == token.LBracket {
				code, msg = diag.SynUnexpectedToken, "unclosed '[' in byte string"
			}
			p.report(code, diag.SevError, openTok.Span.Cover(p.lastSpan), msg,
				diag.Note{Span: p.diagSpan(), Msg: "list ends before " + describe(tok)})
			return Value{Kind: kind, Text: JoinTokens(items), Span: openTok.Span.Cover(p.lastSpan)}, true
		}
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			if depth > 0 {
				depth--
			}
		}
		items = append(items, p.advance())
	}
	closeTok := p.advance()
	return Value{Kind: kind, Text: JoinTokens(items), Span: openTok.Span.Cover(closeTok.Span)}, true
}

// JoinTokens rebuilds source text from tokens: adjacent tokens are glued and
// any trivia between two tokens becomes one space.
func JoinTokens(toks []token.Token) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 && tok.HasGap() {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
