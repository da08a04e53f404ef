package lang

// Parser builds one statement's AST from the token stream of a [Lexer].
//
// The parser is strictly pull-based recursive descent with no
// backtracking: each grammar rule is one method, and precedence
// climbing (factor < term < expr) makes higher-precedence operators
// bind tighter without a precedence table. One Parser instance handles
// exactly one input line; Parse does not consume tokens past the
// statement it returns.
type Parser struct {
	lexer  *Lexer
	tok    Token
	primed bool
}

// NewParser creates a parser that pulls tokens from the given lexer.
func NewParser(l *Lexer) *Parser {
	return &Parser{lexer: l}
}

// Parse consumes tokens until one complete statement has been read and
// returns its AST root. Grammar:
//
//	statement := IDENT '=' expr | expr
//	expr      := term (('+' | '-') term)*
//	term      := factor (('*' | '/') factor)*
//	factor    := NUMBER | IDENT | '(' expr ')'
//
// Errors carry the violated expectation ([UnexpectedTokenError]) or
// propagate from the lexer; there is no recovery, the whole statement
// is discarded.
func (p *Parser) Parse() (Node, error) {
	if !p.primed {
		if err := p.advance(); err != nil {
			return nil, err
		}

		p.primed = true
	}

	return p.statement()
}

// advance pulls the next token from the lexer.
func (p *Parser) advance() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

// eat consumes the current token if it matches the expected kind.
func (p *Parser) eat(kind Kind) error {
	if p.tok.Kind != kind {
		return newUnexpectedTokenError(kind, p.tok)
	}

	return p.advance()
}

// statement resolves the assignment-vs-expression ambiguity with a
// single character of raw lookahead: when the current token is an
// identifier, the statement is an assignment exactly when the lexer's
// peeked character is '='. Token-level lookahead cannot decide this
// without consuming the identifier that may belong to a larger
// expression, so the peek deliberately crosses the token boundary.
func (p *Parser) statement() (Node, error) {
	if p.tok.Kind == KindIdent && p.lexer.PeekChar() == '=' {
		return p.assignment()
	}

	return p.expr()
}

// assignment := IDENT '=' expr.
func (p *Parser) assignment() (Node, error) {
	target := &VariableRef{Name: p.tok.Text}

	if err := p.eat(KindIdent); err != nil {
		return nil, err
	}

	if err := p.eat(KindAssign); err != nil {
		return nil, err
	}

	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	return &Assignment{Target: target, Value: value}, nil
}

// expr := term (('+' | '-') term)*.
func (p *Parser) expr() (Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == KindPlus || p.tok.Kind == KindMinus {
		op := p.tok.Kind

		if err := p.eat(op); err != nil {
			return nil, err
		}

		right, err := p.term()
		if err != nil {
			return nil, err
		}

		// Left-associative: fold the new operand under the running node.
		node = &BinaryOp{Left: node, Op: op, Right: right}
	}

	return node, nil
}

// term := factor (('*' | '/') factor)*.
func (p *Parser) term() (Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.tok.Kind == KindStar || p.tok.Kind == KindSlash {
		op := p.tok.Kind

		if err := p.eat(op); err != nil {
			return nil, err
		}

		right, err := p.factor()
		if err != nil {
			return nil, err
		}

		node = &BinaryOp{Left: node, Op: op, Right: right}
	}

	return node, nil
}

// factor := NUMBER | IDENT | '(' expr ')'.
func (p *Parser) factor() (Node, error) {
	switch p.tok.Kind {
	case KindNumber:
		node := &NumberLiteral{Value: p.tok.Num}

		if err := p.eat(KindNumber); err != nil {
			return nil, err
		}

		return node, nil

	case KindIdent:
		node := &VariableRef{Name: p.tok.Text}

		if err := p.eat(KindIdent); err != nil {
			return nil, err
		}

		return node, nil

	case KindLParen:
		if err := p.eat(KindLParen); err != nil {
			return nil, err
		}

		node, err := p.expr()
		if err != nil {
			return nil, err
		}

		if err := p.eat(KindRParen); err != nil {
			return nil, err
		}

		return node, nil

	default:
		return nil, newUnexpectedTokenError(KindNumber, p.tok)
	}
}
