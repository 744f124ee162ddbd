package simplify

import (
	"github.com/katalvlaran/qcalgebra/expr"
	"github.com/katalvlaran/qcalgebra/opalg"
)

// ExpandAnticommutator rewrites {A, B} => A*B + B*A.
func ExpandAnticommutator(e expr.Expr) (expr.Expr, bool) {
	a, ok := e.(*expr.AnticommutatorExpr)
	if !ok {
		return nil, false
	}
	return a.Expand(), true
}

// NormalOrderProducts rewrites an operator-product leaf into its
// normal-ordered form, folding the fermionic permutation sign into the
// coefficient. Products already marked normal ordered are skipped.
func NormalOrderProducts(e expr.Expr) (expr.Expr, bool) {
	p, ok := e.(*expr.ProductExpr)
	if !ok || p.Prod().IsNormalOrdered() {
		return nil, false
	}
	return expr.Product(opalg.NormalOrder(p.Prod())), true
}

// vevCallName is the function-call spelling of a vacuum expectation
// value: vev(product).
const vevCallName = "vev"

// EvaluateVacuumExpectation replaces vev(P) over an operator-product
// leaf with its Wick-evaluated scalar value.
func EvaluateVacuumExpectation(e expr.Expr) (expr.Expr, bool) {
	c, ok := e.(*expr.CallExpr)
	if !ok || c.Name() != vevCallName || len(c.Children()) != 1 {
		return nil, false
	}
	p, ok := c.Children()[0].(*expr.ProductExpr)
	if !ok {
		return nil, false
	}
	return expr.Constant(opalg.VacuumExpectation(p.Prod())), true
}
