package simplify

import "github.com/katalvlaran/qcalgebra/expr"

// Antisymmetry is a structural check on commutator nodes. [A, B] is
// stored as written and -[B, A] is a distinct tree, so there is nothing
// to rewrite; the rule exists as the anchor of the commutator category
// and never applies.
func Antisymmetry(e expr.Expr) (expr.Expr, bool) {
	return nil, false
}

// ZeroCommutator collapses a commutator of structurally equal operands:
// [A, A] => 0. Equality is structural, so compound operands qualify.
func ZeroCommutator(e expr.Expr) (expr.Expr, bool) {
	c, ok := e.(*expr.CommutatorExpr)
	if !ok || !c.A().Equal(c.B()) {
		return nil, false
	}
	return expr.Zero(), true
}

// ExpandCommutator rewrites [A, B] => A*B - B*A.
func ExpandCommutator(e expr.Expr) (expr.Expr, bool) {
	c, ok := e.(*expr.CommutatorExpr)
	if !ok {
		return nil, false
	}
	return c.Expand(), true
}
