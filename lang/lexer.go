package lang

import (
	"strconv"
	"unicode"
)

// EndOfInput is the sentinel returned by [Lexer.PeekChar] when the
// peeked position lies past the end of the source text.
const EndOfInput rune = 0

// Lexer converts one line of source text into a stream of tokens on
// demand. It maintains a single cursor and never retains tokens after
// returning them.
type Lexer struct {
	src []rune
	pos int
}

// NewLexer creates a lexer over the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// PeekChar returns the character one position ahead of the cursor
// without consuming anything, or [EndOfInput] past the end.
//
// The parser uses this raw-character lookahead to split assignments
// from bare expressions: after an identifier token is consumed the
// cursor rests on the character following the identifier, so the peek
// inspects the character after that one.
func (l *Lexer) PeekChar() rune {
	peek := l.pos + 1
	if peek < len(l.src) {
		return l.src[peek]
	}

	return EndOfInput
}

// Next returns the next token in the input, or an EOF token when the
// input is exhausted. Calling Next at end of input is idempotent.
func (l *Lexer) Next() (Token, error) {
	l.skipBlank()

	if l.pos >= len(l.src) {
		return Token{Kind: KindEOF}, nil
	}

	ch := l.src[l.pos]

	switch {
	case unicode.IsDigit(ch):
		return l.number()

	case unicode.IsLetter(ch):
		return l.identifier(), nil
	}

	if kind, ok := operators[ch]; ok {
		l.pos++

		return Token{Kind: kind, Text: string(ch)}, nil
	}

	return Token{}, newIllegalCharError(ch, l.pos)
}

// skipBlank advances the cursor past any whitespace.
func (l *Lexer) skipBlank() {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
}

// number consumes a maximal run of digits and returns a NUMBER token.
// No sign, decimal point, or exponent handling.
func (l *Lexer) number() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) && unicode.IsDigit(l.src[l.pos]) {
		l.pos++
	}

	text := string(l.src[start:l.pos])

	num, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Only reachable when the digit run overflows int64.
		return Token{}, ErrNumberRange.Wrap(err)
	}

	return Token{Kind: KindNumber, Text: text, Num: num}, nil
}

// identifier consumes a maximal run of letters, digits, and
// underscores, then classifies it as a keyword or IDENT.
func (l *Lexer) identifier() Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentRune(l.src[l.pos]) {
		l.pos++
	}

	text := string(l.src[start:l.pos])

	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Text: text}
	}

	return Token{Kind: KindIdent, Text: text}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
