package lang

// Kind classifies a lexical token.
type Kind int

const (
	// KindEOF marks exhaustion of the input. The lexer returns it
	// repeatedly once the cursor passes the end.
	KindEOF Kind = iota

	// KindNumber is an unsigned integer literal.
	KindNumber

	// KindIdent is a name that is not a reserved keyword.
	KindIdent

	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindAssign
	KindLParen
	KindRParen
	KindLBrace
	KindRBrace
	KindComma

	// Reserved keywords. The lexer recognizes them so they cannot be
	// used as variable names, but no grammar production consumes them.
	KindIf
	KindElse
	KindWhile
	KindFunction
)

// String returns a human-readable name for the token kind, used in
// error messages and trace logs.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindNumber:
		return "NUMBER"
	case KindIdent:
		return "IDENT"
	case KindPlus:
		return "PLUS"
	case KindMinus:
		return "MINUS"
	case KindStar:
		return "STAR"
	case KindSlash:
		return "SLASH"
	case KindAssign:
		return "ASSIGN"
	case KindLParen:
		return "LPAREN"
	case KindRParen:
		return "RPAREN"
	case KindLBrace:
		return "LBRACE"
	case KindRBrace:
		return "RBRACE"
	case KindComma:
		return "COMMA"
	case KindIf:
		return "IF"
	case KindElse:
		return "ELSE"
	case KindWhile:
		return "WHILE"
	case KindFunction:
		return "FUNCTION"
	default:
		return "Unknown"
	}
}

// Token is an immutable lexical unit produced by the [Lexer].
type Token struct {
	// Kind classifies the token.
	Kind Kind

	// Text is the verbatim lexeme: identifier text, digit run, operator
	// character, or keyword. Empty for EOF.
	Text string

	// Num is the decoded integer value when Kind is [KindNumber].
	Num int64
}

// String returns the token in "KIND(text)" form for diagnostics.
func (t Token) String() string {
	if t.Kind == KindEOF {
		return t.Kind.String()
	}

	return t.Kind.String() + "(" + t.Text + ")"
}

// keywords maps reserved identifier text to its token kind.
var keywords = map[string]Kind{
	"if":       KindIf,
	"else":     KindElse,
	"while":    KindWhile,
	"function": KindFunction,
}

// operators maps single-character operators and punctuation to kinds.
var operators = map[rune]Kind{
	'+': KindPlus,
	'-': KindMinus,
	'*': KindStar,
	'/': KindSlash,
	'=': KindAssign,
	'(': KindLParen,
	')': KindRParen,
	'{': KindLBrace,
	'}': KindRBrace,
	',': KindComma,
}
