package expr

import "github.com/katalvlaran/qcalgebra/core"

// BinaryExpr is a binary combinator node: Add, Subtract, Multiply,
// Divide or Power. It always has exactly two children.
type BinaryExpr struct {
	kind  Kind
	left  Expr
	right Expr
}

func newBinary(kind Kind, left, right Expr) *BinaryExpr {
	return &BinaryExpr{kind: kind, left: left.Clone(), right: right.Clone()}
}

// Add builds left + right.
func Add(left, right Expr) *BinaryExpr { return newBinary(KindAdd, left, right) }

// Subtract builds left - right.
func Subtract(left, right Expr) *BinaryExpr { return newBinary(KindSubtract, left, right) }

// Multiply builds left * right.
func Multiply(left, right Expr) *BinaryExpr { return newBinary(KindMultiply, left, right) }

// Divide builds left / right.
func Divide(left, right Expr) *BinaryExpr { return newBinary(KindDivide, left, right) }

// Power builds base ^ exponent.
func Power(base, exponent Expr) *BinaryExpr { return newBinary(KindPower, base, exponent) }

// Left returns the first operand.
func (e *BinaryExpr) Left() Expr { return e.left }

// Right returns the second operand.
func (e *BinaryExpr) Right() Expr { return e.right }

// OpSymbol returns the infix operator glyph.
func (e *BinaryExpr) OpSymbol() string {
	switch e.kind {
	case KindAdd:
		return "+"
	case KindSubtract:
		return "-"
	case KindMultiply:
		return "*"
	case KindDivide:
		return "/"
	case KindPower:
		return "^"
	default:
		return "?"
	}
}

func (e *BinaryExpr) Kind() Kind       { return e.kind }
func (e *BinaryExpr) Children() []Expr { return []Expr{e.left, e.right} }

func (e *BinaryExpr) Clone() Expr {
	return &BinaryExpr{kind: e.kind, left: e.left.Clone(), right: e.right.Clone()}
}

func (e *BinaryExpr) String() string {
	return renderOperand(e.left) + " " + e.OpSymbol() + " " + renderOperand(e.right)
}

func (e *BinaryExpr) Equal(other Expr) bool {
	o, ok := other.(*BinaryExpr)
	return ok && e.kind == o.kind && e.left.Equal(o.left) && e.right.Equal(o.right)
}

func (e *BinaryExpr) Hash() uint64 {
	h := kindHash(e.kind)
	h = core.HashCombine(h, e.left.Hash())
	h = core.HashCombine(h, e.right.Hash())
	return h
}

// Derivative applies the sum/difference rule for Add and Subtract and
// the product rule for Multiply; Divide and Power differentiate to zero
// in this model.
func (e *BinaryExpr) Derivative(v *core.Symbol) Expr {
	switch e.kind {
	case KindAdd:
		return Add(e.left.Derivative(v), e.right.Derivative(v))
	case KindSubtract:
		return Subtract(e.left.Derivative(v), e.right.Derivative(v))
	case KindMultiply:
		// (fg)' = f'g + fg'
		return Add(
			Multiply(e.left.Derivative(v), e.right),
			Multiply(e.left, e.right.Derivative(v)),
		)
	default:
		return Zero()
	}
}

// CommutatorExpr is the node [A, B]. Exactly two children.
type CommutatorExpr struct {
	noDeriv
	a Expr
	b Expr
}

// Commutator builds [a, b].
func Commutator(a, b Expr) *CommutatorExpr {
	return &CommutatorExpr{a: a.Clone(), b: b.Clone()}
}

// A returns the first operand.
func (e *CommutatorExpr) A() Expr { return e.a }

// B returns the second operand.
func (e *CommutatorExpr) B() Expr { return e.b }

func (e *CommutatorExpr) Kind() Kind       { return KindCommutator }
func (e *CommutatorExpr) Children() []Expr { return []Expr{e.a, e.b} }
func (e *CommutatorExpr) Clone() Expr      { return &CommutatorExpr{a: e.a.Clone(), b: e.b.Clone()} }
func (e *CommutatorExpr) String() string   { return "[" + e.a.String() + ", " + e.b.String() + "]" }

func (e *CommutatorExpr) Equal(other Expr) bool {
	o, ok := other.(*CommutatorExpr)
	return ok && e.a.Equal(o.a) && e.b.Equal(o.b)
}

func (e *CommutatorExpr) Hash() uint64 {
	h := kindHash(KindCommutator)
	h = core.HashCombine(h, e.a.Hash())
	h = core.HashCombine(h, e.b.Hash())
	return h
}

// Expand rewrites [A, B] as A*B - B*A.
func (e *CommutatorExpr) Expand() Expr {
	return Subtract(Multiply(e.a, e.b), Multiply(e.b, e.a))
}

// AnticommutatorExpr is the node {A, B}. Exactly two children.
type AnticommutatorExpr struct {
	noDeriv
	a Expr
	b Expr
}

// Anticommutator builds {a, b}.
func Anticommutator(a, b Expr) *AnticommutatorExpr {
	return &AnticommutatorExpr{a: a.Clone(), b: b.Clone()}
}

// A returns the first operand.
func (e *AnticommutatorExpr) A() Expr { return e.a }

// B returns the second operand.
func (e *AnticommutatorExpr) B() Expr { return e.b }

func (e *AnticommutatorExpr) Kind() Kind       { return KindAnticommutator }
func (e *AnticommutatorExpr) Children() []Expr { return []Expr{e.a, e.b} }

func (e *AnticommutatorExpr) Clone() Expr {
	return &AnticommutatorExpr{a: e.a.Clone(), b: e.b.Clone()}
}

func (e *AnticommutatorExpr) String() string {
	return "{" + e.a.String() + ", " + e.b.String() + "}"
}

func (e *AnticommutatorExpr) Equal(other Expr) bool {
	o, ok := other.(*AnticommutatorExpr)
	return ok && e.a.Equal(o.a) && e.b.Equal(o.b)
}

func (e *AnticommutatorExpr) Hash() uint64 {
	h := kindHash(KindAnticommutator)
	h = core.HashCombine(h, e.a.Hash())
	h = core.HashCombine(h, e.b.Hash())
	return h
}

// Expand rewrites {A, B} as A*B + B*A.
func (e *AnticommutatorExpr) Expand() Expr {
	return Add(Multiply(e.a, e.b), Multiply(e.b, e.a))
}
