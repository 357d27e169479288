package lexer

import (
	"keyzone/internal/diag"
	"keyzone/internal/token"
)

// collectLeadingTrivia gathers the trivia run before the next token:
//   - ' ' and '\t' coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline
//   - "//..." and "/*...*/" comments
//   - preprocessor lines ("#include", "#define" with '\' continuations)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\r':
			for b2 := lx.cursor.Peek(); b2 == ' ' || b2 == '\t' || b2 == '\r'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue

		case b == '/':
			if lx.scanComment() {
				continue
			}

		case b == '#':
			if lx.scanDirective() {
				continue
			}
		}
		return
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaBlockComment, start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		return true
	}
	return false
}

// scanDirective consumes a preprocessor line when '#' opens the line and is
// followed by a known directive word; "#binding-cells" stays an identifier.
func (lx *Lexer) scanDirective() bool {
	start := lx.cursor.Mark()
	if !lx.atLineStart(lx.cursor.Off) {
		return false
	}
	lx.cursor.Bump() // '#'
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	wordStart := lx.cursor.Off
	for isLetter(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	word := string(lx.file.Content[wordStart:lx.cursor.Off])
	if _, ok := directiveNames[word]; !ok {
		lx.cursor.Reset(start)
		return false
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\\' {
			if _, next, ok := lx.cursor.Peek2(); ok && next == '\n' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			}
		}
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaDirective, start)
	return true
}
