package fuzztests

import (
	"testing"

	"keyzone/internal/diag"
	"keyzone/internal/lexer"
	"keyzone/internal/source"
	"keyzone/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.keymap", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		var prevEnd uint32
		for steps := 0; ; steps++ {
			if steps > len(file.Content)+1 {
				t.Fatalf("lexer did not reach EOF after %d tokens", steps)
			}
			tok := lx.Next()
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %s at %d overlaps previous end %d", tok.Kind, tok.Span.Start, prevEnd)
			}
			if tok.Span.End > uint32(len(file.Content)) {
				t.Fatalf("token %s ends at %d past content length %d", tok.Kind, tok.Span.End, len(file.Content))
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
