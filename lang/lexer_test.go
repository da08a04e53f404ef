package lang

import (
	"errors"
	"testing"
)

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "empty",
			input: "",
			want:  []Token{{Kind: KindEOF}},
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  []Token{{Kind: KindEOF}},
		},
		{
			name:  "number",
			input: "42",
			want: []Token{
				{Kind: KindNumber, Text: "42", Num: 42},
				{Kind: KindEOF},
			},
		},
		{
			name:  "identifier",
			input: "counter_2",
			want: []Token{
				{Kind: KindIdent, Text: "counter_2"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "expression",
			input: "2 + 3 * 4",
			want: []Token{
				{Kind: KindNumber, Text: "2", Num: 2},
				{Kind: KindPlus, Text: "+"},
				{Kind: KindNumber, Text: "3", Num: 3},
				{Kind: KindStar, Text: "*"},
				{Kind: KindNumber, Text: "4", Num: 4},
				{Kind: KindEOF},
			},
		},
		{
			name:  "assignment",
			input: "x = 5",
			want: []Token{
				{Kind: KindIdent, Text: "x"},
				{Kind: KindAssign, Text: "="},
				{Kind: KindNumber, Text: "5", Num: 5},
				{Kind: KindEOF},
			},
		},
		{
			name:  "grouping",
			input: "(1 - 2) / 3",
			want: []Token{
				{Kind: KindLParen, Text: "("},
				{Kind: KindNumber, Text: "1", Num: 1},
				{Kind: KindMinus, Text: "-"},
				{Kind: KindNumber, Text: "2", Num: 2},
				{Kind: KindRParen, Text: ")"},
				{Kind: KindSlash, Text: "/"},
				{Kind: KindNumber, Text: "3", Num: 3},
				{Kind: KindEOF},
			},
		},
		{
			name:  "braces and comma",
			input: "{ , }",
			want: []Token{
				{Kind: KindLBrace, Text: "{"},
				{Kind: KindComma, Text: ","},
				{Kind: KindRBrace, Text: "}"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "keywords",
			input: "if else while function ifx",
			want: []Token{
				{Kind: KindIf, Text: "if"},
				{Kind: KindElse, Text: "else"},
				{Kind: KindWhile, Text: "while"},
				{Kind: KindFunction, Text: "function"},
				{Kind: KindIdent, Text: "ifx"},
				{Kind: KindEOF},
			},
		},
		{
			name:  "number glued to identifier",
			input: "2x",
			want: []Token{
				{Kind: KindNumber, Text: "2", Num: 2},
				{Kind: KindIdent, Text: "x"},
				{Kind: KindEOF},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)

			for i, want := range tt.want {
				got, err := lexer.Next()
				if err != nil {
					t.Fatalf("token %d: unexpected error: %v", i, err)
				}

				if got != want {
					t.Errorf("token %d: got %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestLexerEOFIdempotent(t *testing.T) {
	lexer := NewLexer("1")

	if _, err := lexer.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		tok, err := lexer.Next()
		if err != nil {
			t.Fatalf("EOF call %d: unexpected error: %v", i, err)
		}

		if tok.Kind != KindEOF {
			t.Errorf("EOF call %d: got %v, want EOF", i, tok)
		}
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	lexer := NewLexer("2 @ 3")

	if _, err := lexer.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := lexer.Next()
	if err == nil {
		t.Fatal("expected error for '@', got nil")
	}

	if !errors.Is(err, ErrIllegalCharacter) {
		t.Errorf("errors.Is(err, ErrIllegalCharacter) = false for %v", err)
	}

	var illErr *IllegalCharError
	if !errors.As(err, &illErr) {
		t.Fatalf("errors.As(*IllegalCharError) = false for %v", err)
	}

	if illErr.Char != '@' {
		t.Errorf("Char = %q, want '@'", illErr.Char)
	}

	if illErr.Pos != 2 {
		t.Errorf("Pos = %d, want 2", illErr.Pos)
	}
}

func TestLexerNumberOverflow(t *testing.T) {
	lexer := NewLexer("99999999999999999999")

	_, err := lexer.Next()
	if err == nil {
		t.Fatal("expected overflow error, got nil")
	}

	if !errors.Is(err, ErrNumberRange) {
		t.Errorf("errors.Is(err, ErrNumberRange) = false for %v", err)
	}
}

func TestLexerPeekChar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		calls int  // tokens to consume before peeking
		want  rune // expected peeked character
	}{
		// After the identifier token is consumed the cursor rests on the
		// character following it, so the peek inspects the one after that.
		{name: "assignment", input: "x = 5", calls: 1, want: '='},
		{name: "bare reference", input: "x + 5", calls: 1, want: '+'},
		{name: "leading blank", input: " x = 5", calls: 1, want: '='},
		{name: "end of input", input: "x", calls: 1, want: EndOfInput},
		{name: "fresh lexer", input: "ab", calls: 0, want: 'b'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input)

			for i := 0; i < tt.calls; i++ {
				if _, err := lexer.Next(); err != nil {
					t.Fatalf("token %d: unexpected error: %v", i, err)
				}
			}

			if got := lexer.PeekChar(); got != tt.want {
				t.Errorf("PeekChar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lexer := NewLexer("a = 1")

	if _, err := lexer.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if got := lexer.PeekChar(); got != '=' {
			t.Fatalf("PeekChar() call %d = %q, want '='", i, got)
		}
	}

	tok, err := lexer.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Kind != KindAssign {
		t.Errorf("token after peeks = %v, want ASSIGN", tok)
	}
}
