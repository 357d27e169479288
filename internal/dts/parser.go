package dts

import (
	"slices"

	"keyzone/internal/diag"
	"keyzone/internal/lexer"
	"keyzone/internal/source"
	"keyzone/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// parser holds the state for one file.
type parser struct {
	file     *source.File
	toks     []token.Token // significant tokens only, ends with EOF
	pos      int
	opts     Options
	lastSpan source.Span // span of the last consumed token
}

// Parse lexes and parses file. Lexical and syntax findings go to
// opts.Reporter; the returned document holds whatever could be read.
func Parse(file *source.File, opts Options) *Document {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	all := lexer.All(file, lexer.Options{Reporter: opts.Reporter})
	return ParseTokens(file, all, opts)
}

// ParseTokens parses an already lexed stream. Invalid tokens were reported by
// the lexer and are skipped here.
func ParseTokens(file *source.File, all []token.Token, opts Options) *Document {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	toks := make([]token.Token, 0, len(all))
	for _, t := range all {
		if t.Kind != token.Invalid {
			toks = append(toks, t)
		}
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		end := uint32(len(file.Content))
		toks = append(toks, token.Token{Kind: token.EOF, Span: source.Span{File: file.ID, Start: end, End: end}})
	}

	p := &parser{
		file:     file,
		toks:     toks,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
	return &Document{
		File:   file,
		Nodes:  p.parseItems(),
		Tokens: all,
	}
}

// parseItems is the top-level loop: nodes and /directives/ until EOF.
func (p *parser) parseItems() []*Node {
	var nodes []*Node
	for !p.at(token.EOF) {
		switch {
		case p.at(token.Slash) && p.peekN(1).Kind == token.Ident && p.peekN(2).Kind == token.Slash:
			p.skipStatement()
		case p.at(token.Ident) && p.peekN(1).Kind == token.LParen:
			p.skipMacroCall()
		case p.startsNode():
			if n := p.parseNode(); n != nil {
				nodes = append(nodes, n)
			}
		case p.at(token.Semicolon):
			p.advance()
		default:
			tok := p.peek()
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "unexpected "+describe(tok)+" at top level")
			p.resyncTop()
		}
	}
	return nodes
}

// startsNode reports whether the upcoming tokens open a node:
// `label:`, `name {`, `name@unit`, `/ {` or `&ref {`.
func (p *parser) startsNode() bool {
	t0, t1 := p.peek(), p.peekN(1)
	switch t0.Kind {
	case token.Ident:
		return t1.Is(token.Colon, token.LBrace, token.At)
	case token.Slash:
		return t1.Kind == token.LBrace
	case token.Amp:
		return t1.Kind == token.Ident && p.peekN(2).Kind == token.LBrace
	}
	return false
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance consumes one token; EOF is never consumed.
func (p *parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}
