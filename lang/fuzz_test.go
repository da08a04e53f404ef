package lang

import "testing"

// FuzzEvalLine drives arbitrary input through the full pipeline. The
// pipeline must return an error rather than panic on any input, and a
// successful result must always be formattable.
func FuzzEvalLine(f *testing.F) {
	seeds := []string{
		"",
		"42",
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"x = 5",
		"x = x + 1",
		"8 - 3 - 2",
		"7 / 2",
		"1 / 0",
		"2 @ 3",
		"((((1))))",
		"if else while function",
		"{ , }",
		"99999999999999999999",
		"a_very_long_variable_name_0",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		session := NewSession()

		result, err := session.EvalLine(input)
		if err != nil {
			return
		}

		if FormatResult(result) == "" {
			t.Errorf("EvalLine(%q) = %v formats to empty string", input, result)
		}
	})
}

// FuzzLexer verifies the lexer terminates on arbitrary input: every
// call either consumes input, returns an error, or reports EOF.
func FuzzLexer(f *testing.F) {
	for _, seed := range []string{"", "x = 1", "2+3", "@#$", "if(a){b}"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		lexer := NewLexer(input)

		for i := 0; i <= len(input); i++ {
			tok, err := lexer.Next()
			if err != nil {
				return
			}

			if tok.Kind == KindEOF {
				return
			}
		}

		t.Errorf("lexer produced more than %d tokens for %q", len(input), input)
	})
}
