package sgf

// tokenKind discriminates the tokens of the SGF grammar.
type tokenKind int

const (
	tokenEOF       tokenKind = iota
	tokenTreeOpen            // '('
	tokenTreeClose           // ')'
	tokenNodeStart           // ';'
	tokenIdent               // property identifier, uppercase letters
	tokenValue               // bracketed value chunk, raw
)

// token is a lexed SGF token. text holds the identifier or the raw value
// chunk with escape sequences intact; off is the byte offset of the token
// in the input.
type token struct {
	kind tokenKind
	text string
	off  int
}

// lexer turns SGF text into tokens. Value chunks are returned raw: the
// lexer tracks backslash escapes only to find the unescaped ']' that
// terminates a chunk, and leaves escape resolution to the value parser.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token, or a tokenEOF token at end of input.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF, off: l.pos}, nil
	}

	off := l.pos
	switch c := l.input[l.pos]; {
	case c == '(':
		l.pos++
		return token{kind: tokenTreeOpen, off: off}, nil
	case c == ')':
		l.pos++
		return token{kind: tokenTreeClose, off: off}, nil
	case c == ';':
		l.pos++
		return token{kind: tokenNodeStart, off: off}, nil
	case c == '[':
		return l.lexValue()
	case c >= 'A' && c <= 'Z':
		return l.lexIdent()
	default:
		return token{}, newError(CodeUnexpectedCharacter, off, "unexpected character %q", c)
	}
}

// lexIdent consumes a run of uppercase ASCII letters.
func (l *lexer) lexIdent() (token, error) {
	off := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c < 'A' || c > 'Z' {
			break
		}
		l.pos++
	}
	return token{kind: tokenIdent, text: l.input[off:l.pos], off: off}, nil
}

// lexValue consumes a bracketed value chunk. The returned text excludes
// the surrounding brackets and keeps escape sequences untouched.
func (l *lexer) lexValue() (token, error) {
	off := l.pos
	l.pos++ // consume '['
	start := l.pos

	escaped := false
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == ']':
			tok := token{kind: tokenValue, text: l.input[start:l.pos], off: off}
			l.pos++ // consume ']'
			return tok, nil
		}
		l.pos++
	}
	return token{}, newError(CodeUnterminatedValue, off, "property value opened at offset %d is never closed", off)
}

// skipSpace advances past insignificant whitespace between tokens.
func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.pos++
		default:
			return
		}
	}
}
