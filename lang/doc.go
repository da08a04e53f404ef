// Package lang implements the arith language front-end: a lexer that
// turns one line of source text into tokens on demand, a recursive
// descent parser that builds one statement's AST per line, and a
// tree-walking evaluator that computes results against a persistent
// variable store.
//
// # Pipeline
//
// Control flow is strictly pull-based. The parser pulls tokens from the
// lexer one at a time with no backtracking, and the evaluator
// recursively visits AST children:
//
//	text → Lexer → tokens → Parser → AST → Evaluator → value
//
// The [Session] type packages the pipeline with a store that survives
// across input lines:
//
//	s := lang.NewSession()
//	s.EvalLine("x = 2")   // 2
//	s.EvalLine("x * 21")  // 42
//
// # Grammar
//
// Arithmetic uses precedence climbing with left-associative operators:
//
//	statement := IDENT '=' expr | expr
//	expr      := term (('+' | '-') term)*
//	term      := factor (('*' | '/') factor)*
//	factor    := NUMBER | IDENT | '(' expr ')'
//
// A statement is an assignment exactly when the token after the leading
// identifier begins with '=' in the raw text; the parser asks the lexer
// for that single character ([Lexer.PeekChar]) instead of consuming a
// token it might have to give back.
//
// The keywords if, else, while, and function are reserved vocabulary:
// the lexer classifies them and the AST defines their shapes, but no
// grammar production or evaluator handler uses them.
//
// # Errors
//
// Failures are typed ([IllegalCharError], [UnexpectedTokenError],
// [UndefinedVarError], [UnhandledNodeError]) and unwrap to package
// sentinels, so callers select on kind with errors.Is and read details
// with errors.As. Every error aborts only the current line; the session
// and its store survive.
package lang
