package lexer

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '#' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || b == '-' || b == '.' || b == '+' || b == ',' || b == '?'
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// preprocessor keywords that turn a leading '#' into a directive line
var directiveNames = map[string]struct{}{
	"include": {}, "define": {}, "undef": {},
	"if": {}, "ifdef": {}, "ifndef": {}, "elif": {}, "else": {}, "endif": {},
	"pragma": {}, "error": {}, "warning": {}, "line": {},
}

// atLineStart reports whether only blanks precede off on its line.
func (lx *Lexer) atLineStart(off uint32) bool {
	content := lx.file.Content
	for i := int(off) - 1; i >= 0; i-- {
		switch content[i] {
		case ' ', '\t':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}
