package expr

import "github.com/katalvlaran/qcalgebra/core"

// Kind tags an expression tree node.
type Kind int

const (
	KindSymbol Kind = iota
	KindTensor
	KindOperator
	KindProduct
	KindAdd
	KindSubtract
	KindMultiply
	KindDivide
	KindPower
	KindCommutator
	KindAnticommutator
	KindContraction
	KindSum
	KindIndexSum
	KindDerivative
	KindIntegral
	KindCall
)

// String returns the node tag name used in trace messages.
func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "symbol"
	case KindTensor:
		return "tensor"
	case KindOperator:
		return "operator"
	case KindProduct:
		return "product"
	case KindAdd:
		return "add"
	case KindSubtract:
		return "subtract"
	case KindMultiply:
		return "multiply"
	case KindDivide:
		return "divide"
	case KindPower:
		return "power"
	case KindCommutator:
		return "commutator"
	case KindAnticommutator:
		return "anticommutator"
	case KindContraction:
		return "contraction"
	case KindSum:
		return "sum"
	case KindIndexSum:
		return "indexsum"
	case KindDerivative:
		return "derivative"
	case KindIntegral:
		return "integral"
	case KindCall:
		return "call"
	default:
		return "unknown"
	}
}

// Expr is an expression tree node. All implementations live in this
// package; the set of variants is closed.
//
// Children returns the node's child slice in order; callers must treat
// it as read-only. Clone deep-copies the whole subtree. Equal is
// structural; Equal(a, b) implies a.Hash() == b.Hash().
type Expr interface {
	Kind() Kind
	Children() []Expr
	Clone() Expr
	String() string
	Equal(other Expr) bool
	Hash() uint64
	Derivative(v *core.Symbol) Expr
}

// Visit walks the tree in pre-order, invoking fn on every node,
// the root included.
func Visit(e Expr, fn func(Expr)) {
	fn(e)
	for _, child := range e.Children() {
		Visit(child, fn)
	}
}

// Find collects every subtree (self included) whose tag matches k, in
// pre-order.
func Find(e Expr, k Kind) []Expr {
	var out []Expr
	Visit(e, func(n Expr) {
		if n.Kind() == k {
			out = append(out, n)
		}
	})
	return out
}

// kindHash seeds a node hash from its tag.
func kindHash(k Kind) uint64 {
	return core.HashUint(uint64(k) + 1)
}

// childParens reports whether a child must be parenthesized when
// embedded as an operand: exactly the Add and Subtract tags.
func childParens(child Expr) bool {
	return child.Kind() == KindAdd || child.Kind() == KindSubtract
}

// renderOperand renders child, parenthesizing Add/Subtract operands.
func renderOperand(child Expr) string {
	if childParens(child) {
		return "(" + child.String() + ")"
	}
	return child.String()
}

// noDeriv provides the default zero derivative shared by node variants
// whose derivative is not defined symbolically.
type noDeriv struct{}

// Derivative returns the zero expression.
func (noDeriv) Derivative(*core.Symbol) Expr { return Zero() }

// cloneAll deep-copies a child slice.
func cloneAll(children []Expr) []Expr {
	out := make([]Expr, len(children))
	for i, c := range children {
		out[i] = c.Clone()
	}
	return out
}

// IsZero reports whether e is a scalar symbol leaf with value exactly 0.
// Recognition is structural: no epsilon tolerance is applied.
func IsZero(e Expr) bool {
	v, ok := ScalarValue(e)
	return ok && v == 0.0
}

// IsOne reports whether e is a scalar symbol leaf with value exactly 1.
func IsOne(e Expr) bool {
	v, ok := ScalarValue(e)
	return ok && v == 1.0
}

// ScalarValue extracts the numeric value of a scalar symbol leaf.
func ScalarValue(e Expr) (float64, bool) {
	s, ok := e.(*SymbolExpr)
	if !ok || !s.sym.IsScalar() {
		return 0, false
	}
	return s.sym.Value(), true
}
