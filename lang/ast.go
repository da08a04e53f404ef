package lang

// NodeKind tags the variants of the closed AST node set.
type NodeKind int

const (
	// KindNumberLiteral is an integer literal.
	KindNumberLiteral NodeKind = iota

	// KindVariableRef reads a variable from the store.
	KindVariableRef

	// KindBinaryOp applies one of + - * / to two operands.
	KindBinaryOp

	// KindAssignment stores an evaluated value under a variable name.
	KindAssignment

	// The kinds below are reserved for the keyword vocabulary the lexer
	// already recognizes. No grammar production constructs them and the
	// evaluator registers no handler, so reaching one at runtime fails
	// with [UnhandledNodeError] rather than silently doing nothing.

	// KindConditional is the reserved if/else shape.
	KindConditional

	// KindWhileLoop is the reserved while shape.
	KindWhileLoop

	// KindFunctionDef is the reserved function definition shape.
	KindFunctionDef

	// KindFunctionCall is the reserved call shape.
	KindFunctionCall
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindNumberLiteral:
		return "NumberLiteral"
	case KindVariableRef:
		return "VariableRef"
	case KindBinaryOp:
		return "BinaryOp"
	case KindAssignment:
		return "Assignment"
	case KindConditional:
		return "Conditional"
	case KindWhileLoop:
		return "WhileLoop"
	case KindFunctionDef:
		return "FunctionDef"
	case KindFunctionCall:
		return "FunctionCall"
	default:
		return "Unknown"
	}
}

// Node is one vertex of an abstract syntax tree. Trees are built fresh
// for each input line, are strictly tree shaped (every child owned by
// exactly one parent), and are discarded after evaluation.
type Node interface {
	NodeKind() NodeKind
}

// NumberLiteral holds the value of an integer literal token.
type NumberLiteral struct {
	Value int64
}

// NodeKind implements [Node].
func (*NumberLiteral) NodeKind() NodeKind { return KindNumberLiteral }

// VariableRef names a variable to be read from the store.
type VariableRef struct {
	Name string
}

// NodeKind implements [Node].
func (*VariableRef) NodeKind() NodeKind { return KindVariableRef }

// BinaryOp applies an arithmetic operator to two sub-expressions.
// Op is one of [KindPlus], [KindMinus], [KindStar], [KindSlash].
type BinaryOp struct {
	Left  Node
	Right Node
	Op    Kind
}

// NodeKind implements [Node].
func (*BinaryOp) NodeKind() NodeKind { return KindBinaryOp }

// Assignment evaluates Value and stores the result under Target's name.
type Assignment struct {
	Target *VariableRef
	Value  Node
}

// NodeKind implements [Node].
func (*Assignment) NodeKind() NodeKind { return KindAssignment }

// Conditional is a reserved shape; the grammar never constructs it.
type Conditional struct {
	Cond Node
	Then []Node
	Else []Node
}

// NodeKind implements [Node].
func (*Conditional) NodeKind() NodeKind { return KindConditional }

// WhileLoop is a reserved shape; the grammar never constructs it.
type WhileLoop struct {
	Cond Node
	Body []Node
}

// NodeKind implements [Node].
func (*WhileLoop) NodeKind() NodeKind { return KindWhileLoop }

// FunctionDef is a reserved shape; the grammar never constructs it.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Node
}

// NodeKind implements [Node].
func (*FunctionDef) NodeKind() NodeKind { return KindFunctionDef }

// FunctionCall is a reserved shape; the grammar never constructs it.
type FunctionCall struct {
	Name string
	Args []Node
}

// NodeKind implements [Node].
func (*FunctionCall) NodeKind() NodeKind { return KindFunctionCall }
