package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident covers node names, property names, numbers and key identifiers.
	Ident
	// String is a double-quoted string literal, quotes included in Text.
	String

	LBrace    // {
	RBrace    // }
	LAngle    // <
	RAngle    // >
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Assign    // =
	Semicolon // ;
	Colon     // :
	Comma     // ,
	Slash     // /
	Amp       // &
	At        // @
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	String:    "String",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LAngle:    "LAngle",
	RAngle:    "RAngle",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LParen:    "LParen",
	RParen:    "RParen",
	Assign:    "Assign",
	Semicolon: "Semicolon",
	Colon:     "Colon",
	Comma:     "Comma",
	Slash:     "Slash",
	Amp:       "Amp",
	At:        "At",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Punct maps single-byte punctuation to its kind.
var Punct = map[byte]Kind{
	'{': LBrace,
	'}': RBrace,
	'<': LAngle,
	'>': RAngle,
	'[': LBracket,
	']': RBracket,
	'(': LParen,
	')': RParen,
	'=': Assign,
	';': Semicolon,
	':': Colon,
	',': Comma,
	'/': Slash,
	'&': Amp,
	'@': At,
}

// IsTerminator reports whether k ends a cell list that was never closed.
func (k Kind) IsTerminator() bool {
	switch k {
	case EOF, Semicolon, LBrace, RBrace:
		return true
	}
	return false
}
