package token

import "testing"

func TestKindStringCoversAllKinds(t *testing.T) {
	for k := Invalid; k <= At; k++ {
		if k.String() == "" || k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
	if got := Kind(200).String(); got != "Kind(?)" {
		t.Errorf("out of range kind = %q", got)
	}
}

func TestPunctTable(t *testing.T) {
	for b, k := range Punct {
		if k == Invalid || k == EOF || k == Ident || k == String {
			t.Errorf("punct %q maps to non-punct kind %s", b, k)
		}
	}
	if Punct['&'] != Amp {
		t.Errorf("'&' = %s, want Amp", Punct['&'])
	}
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: Semicolon, Text: ";"}
	if !tok.Is(RBrace, Semicolon) {
		t.Error("Is should match Semicolon")
	}
	if tok.Is(Ident) {
		t.Error("Is must not match Ident")
	}
	if tok.HasGap() {
		t.Error("token without trivia has no gap")
	}
}
