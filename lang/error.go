package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). The typed errors below unwrap to
// one of these, so callers can select on the failure kind with
// [errors.Is] and recover payload details with [errors.As] instead of
// matching message strings.
var (
	ErrIllegalCharacter = NewError("illegal character")
	ErrUnexpectedToken  = NewError("unexpected token")
	ErrUndefinedVar     = NewError("undefined variable")
	ErrUnhandledNode    = NewError("unhandled node kind")
	ErrNumberRange      = NewError("number out of range")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// Is reports whether target is this exact sentinel. Sentinels created
// by [NewError] are compared by identity so wrapped copies made with
// [Error.Wrap] or [Error.With] still match via the taxonomy types'
// Unwrap chains.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// IllegalCharError reports a character outside the recognized symbol
// set. It unwraps to [ErrIllegalCharacter].
type IllegalCharError struct {
	Char rune
	Pos  int
}

func newIllegalCharError(ch rune, pos int) *IllegalCharError {
	return &IllegalCharError{Char: ch, Pos: pos}
}

// Error implements the error interface.
func (e *IllegalCharError) Error() string {
	return "illegal character " + strconv.QuoteRune(e.Char)
}

// Unwrap ties the error into the sentinel taxonomy.
func (e *IllegalCharError) Unwrap() error { return ErrIllegalCharacter }

// LogValue implements slog.LogValuer.
func (e *IllegalCharError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "illegal character"),
		slog.String("char", string(e.Char)),
		slog.Int("pos", e.Pos),
	)
}

// UnexpectedTokenError reports a violated grammar expectation.
// It unwraps to [ErrUnexpectedToken].
type UnexpectedTokenError struct {
	Expected Kind
	Found    Token
}

func newUnexpectedTokenError(expected Kind, found Token) *UnexpectedTokenError {
	return &UnexpectedTokenError{Expected: expected, Found: found}
}

// Error implements the error interface.
func (e *UnexpectedTokenError) Error() string {
	return "expected " + e.Expected.String() + ", found " + e.Found.String()
}

// Unwrap ties the error into the sentinel taxonomy.
func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }

// LogValue implements slog.LogValuer.
func (e *UnexpectedTokenError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "unexpected token"),
		slog.String("expected", e.Expected.String()),
		slog.String("found", e.Found.String()),
	)
}

// UndefinedVarError reports a reference to a name never assigned in the
// session. It unwraps to [ErrUndefinedVar].
type UndefinedVarError struct {
	Name string
}

// Error implements the error interface.
func (e *UndefinedVarError) Error() string {
	return "undefined variable '" + e.Name + "'"
}

// Unwrap ties the error into the sentinel taxonomy.
func (e *UndefinedVarError) Unwrap() error { return ErrUndefinedVar }

// LogValue implements slog.LogValuer.
func (e *UndefinedVarError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "undefined variable"),
		slog.String("name", e.Name),
	)
}

// UnhandledNodeError reports an AST node kind with no registered
// evaluator handler. The current grammar cannot produce one, but the
// dispatch table rejects the reserved kinds safely rather than
// silently skipping them. It unwraps to [ErrUnhandledNode].
type UnhandledNodeError struct {
	Kind NodeKind
}

// Error implements the error interface.
func (e *UnhandledNodeError) Error() string {
	return "no handler for node kind " + e.Kind.String()
}

// Unwrap ties the error into the sentinel taxonomy.
func (e *UnhandledNodeError) Unwrap() error { return ErrUnhandledNode }

// LogValue implements slog.LogValuer.
func (e *UnhandledNodeError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "unhandled node kind"),
		slog.String("kind", e.Kind.String()),
	)
}
