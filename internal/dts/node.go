package dts

import (
	"keyzone/internal/diag"
	"keyzone/internal/token"
)

// parseNode reads `[label:] name[@unit] { body };`. The caller has checked
// startsNode.
func (p *parser) parseNode() *Node {
	start := p.peek().Span
	n := &Node{}

	if p.at(token.Ident) && p.peekN(1).Kind == token.Colon {
		n.Label = p.advance().Text
		p.advance() // ':'
	}

	switch {
	case p.at(token.Slash):
		n.Name = "/"
		p.advance()
	case p.at(token.Amp):
		p.advance()
		n.Name = "&" + p.advance().Text
	case p.at(token.Ident):
		n.Name = p.advance().Text
	default:
		p.report(diag.SynExpectIdentifier, diag.SevError, p.diagSpan(), "expected node name, got "+describe(p.peek()))
		p.resync()
		return nil
	}

	if p.at(token.At) {
		p.advance()
		unit, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected unit address after '@'")
		if ok {
			n.Unit = unit.Text
		}
	}

	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after node name "+n.Name)
	if !ok {
		p.resync()
		return nil
	}

	p.parseBody(n)

	if !p.at(token.RBrace) {
		p.report(diag.SynUnclosedBrace, diag.SevError, p.diagSpan(), "unclosed node "+n.Name,
			diag.Note{Span: open.Span, Msg: "block opened here"})
		n.Span = start.Cover(p.lastSpan)
		return n
	}
	p.advance()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after '}' of node "+n.Name)
	n.Span = start.Cover(p.lastSpan)
	return n
}

// parseBody reads properties and child nodes until '}' or EOF.
func (p *parser) parseBody(n *Node) {
	for !p.atOr(token.RBrace, token.EOF) {
		switch {
		case p.at(token.Slash) && p.peekN(1).Kind == token.Ident && p.peekN(2).Kind == token.Slash:
			p.skipStatement()
		case p.at(token.Ident) && p.peekN(1).Kind == token.LParen:
			p.skipMacroCall()
		case p.startsNode():
			if child := p.parseNode(); child != nil {
				n.Children = append(n.Children, child)
			}
		case p.at(token.Ident):
			if prop, ok := p.parseProperty(); ok {
				n.Props = append(n.Props, prop)
			}
		case p.at(token.Semicolon):
			p.advance()
		default:
			tok := p.peek()
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "unexpected "+describe(tok)+" in node "+n.Name)
			p.resync()
		}
	}
}

// parseProperty reads `name;` or `name = value {, value};`.
func (p *parser) parseProperty() (Property, bool) {
	nameTok := p.advance()
	prop := Property{Name: nameTok.Text}

	if p.at(token.Assign) {
		p.advance()
		for {
			v, ok := p.parseValue()
			if !ok {
				p.resync()
				return Property{}, false
			}
			prop.Values = append(prop.Values, v)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after property "+prop.Name); !ok {
		// a missing ';' before '}' or a new line of input is recoverable
		if !p.atOr(token.RBrace, token.Ident, token.EOF) {
			p.resync()
		}
	}
	prop.Span = nameTok.Span.Cover(p.lastSpan)
	return prop, true
}
