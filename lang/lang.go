package lang

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/arith/log"
)

// Session ties the pipeline together for a driver: it owns the variable
// store for the lifetime of one interpreter session and runs each input
// line through lexer, parser, and evaluator in turn.
//
// Each call to EvalLine is a single fully synchronous pipeline run:
// text → token stream → AST root → value. A fresh Lexer and Parser are
// created per line; only the store persists. Errors are terminal for
// the line, never for the session.
type Session struct {
	store  *Store
	eval   *Evaluator
	logger log.Logger
}

// SessionOption applies a configuration option to a Session.
type SessionOption func(*Session)

// WithSessionLogger returns an option that attaches a logger for
// trace-level pipeline diagnostics.
func WithSessionLogger(logger log.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates a session with an empty variable store.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{store: NewStore()}

	for _, opt := range opts {
		opt(s)
	}

	s.eval = NewEvaluator(s.store, WithLogger(s.logger))

	return s
}

// EvalLine parses and evaluates one line of source text against the
// session store. On failure the store retains whatever state it had
// before the line (a statement holds at most one assignment, at its
// root, so no partial mutation is observable).
func (s *Session) EvalLine(input string) (float64, error) {
	lexer := NewLexer(input)
	parser := NewParser(lexer)

	node, err := parser.Parse()
	if err != nil {
		s.logger.Trace(
			"parse failed",
			slog.String("input", input),
			slog.Any("error", err),
		)

		return 0, err
	}

	result, err := s.eval.Evaluate(node)
	if err != nil {
		s.logger.Trace(
			"eval failed",
			slog.String("input", input),
			slog.Any("error", err),
		)

		return 0, err
	}

	s.logger.Trace(
		"eval ok",
		slog.String("input", input),
		slog.Float64("result", result),
	)

	return result, nil
}

// Store returns the session's variable store.
func (s *Session) Store() *Store { return s.store }

// Vars returns a display snapshot of the variable mapping.
func (s *Session) Vars() map[string]float64 { return s.store.Snapshot() }

// FormatResult renders a value the way the REPL displays it: integral
// values print without a decimal point, fractional values with the
// shortest representation that round-trips.
func FormatResult(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// FormatVars renders a variable snapshot as "{a: 1, b: 3.5}" with
// sorted names.
func FormatVars(vars map[string]float64) string {
	var b strings.Builder

	b.WriteByte('{')

	for i, name := range sortedKeys(vars) {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(FormatResult(vars[name]))
	}

	b.WriteByte('}')

	return b.String()
}
