package lang

import (
	"log/slog"

	"github.com/ardnew/arith/log"
)

// handler evaluates one AST node variant.
type handler func(*Evaluator, Node) (float64, error)

// Evaluator walks an AST top-down, dispatching per node kind, reading
// and writing a persistent variable [Store].
//
// Dispatch is table-driven rather than a bare type switch so that the
// reserved node kinds (Conditional, WhileLoop, FunctionDef,
// FunctionCall) are rejected with [UnhandledNodeError] instead of
// falling through a switch silently. The table is populated once at
// construction with exactly one handler per implemented variant.
type Evaluator struct {
	store    *Store
	dispatch map[NodeKind]handler
	logger   log.Logger
}

// EvalOption applies a configuration option to an Evaluator.
type EvalOption func(*Evaluator)

// WithLogger returns an option that attaches a logger for trace-level
// evaluation diagnostics. The zero-value logger is a safe no-op.
func WithLogger(logger log.Logger) EvalOption {
	return func(e *Evaluator) { e.logger = logger }
}

// NewEvaluator creates an evaluator bound to the given variable store.
func NewEvaluator(store *Store, opts ...EvalOption) *Evaluator {
	e := &Evaluator{
		store: store,
		dispatch: map[NodeKind]handler{
			KindNumberLiteral: (*Evaluator).evalNumber,
			KindVariableRef:   (*Evaluator).evalVariableRef,
			KindBinaryOp:      (*Evaluator).evalBinaryOp,
			KindAssignment:    (*Evaluator).evalAssignment,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate computes the value of the tree rooted at node. Assignments
// mutate the evaluator's store as a side effect. Evaluation is one
// fully synchronous recursive pass; an error aborts it immediately.
func (e *Evaluator) Evaluate(node Node) (float64, error) {
	fn, ok := e.dispatch[node.NodeKind()]
	if !ok {
		return 0, &UnhandledNodeError{Kind: node.NodeKind()}
	}

	return fn(e, node)
}

func (e *Evaluator) evalNumber(node Node) (float64, error) {
	lit := node.(*NumberLiteral)

	return float64(lit.Value), nil
}

func (e *Evaluator) evalVariableRef(node Node) (float64, error) {
	ref := node.(*VariableRef)

	value, ok := e.store.Get(ref.Name)
	if !ok {
		return 0, &UndefinedVarError{Name: ref.Name}
	}

	return value, nil
}

// evalBinaryOp evaluates left before right, strictly, with no
// short-circuiting. Division is the float64 domain's native operator,
// so integer operands that do not divide evenly produce a fractional
// result and no divide-by-zero guard is layered on top.
func (e *Evaluator) evalBinaryOp(node Node) (float64, error) {
	op := node.(*BinaryOp)

	left, err := e.Evaluate(op.Left)
	if err != nil {
		return 0, err
	}

	right, err := e.Evaluate(op.Right)
	if err != nil {
		return 0, err
	}

	switch op.Op {
	case KindPlus:
		return left + right, nil
	case KindMinus:
		return left - right, nil
	case KindStar:
		return left * right, nil
	case KindSlash:
		return left / right, nil
	default:
		// The parser only builds BinaryOp for the four operators above.
		return 0, ErrUnexpectedToken.With(
			slog.String("operator", op.Op.String()),
		)
	}
}

func (e *Evaluator) evalAssignment(node Node) (float64, error) {
	assign := node.(*Assignment)

	value, err := e.Evaluate(assign.Value)
	if err != nil {
		return 0, err
	}

	e.store.Set(assign.Target.Name, value)

	e.logger.Trace(
		"assign",
		slog.String("name", assign.Target.Name),
		slog.Float64("value", value),
	)

	return value, nil
}
