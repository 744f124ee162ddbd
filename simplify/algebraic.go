package simplify

import (
	"math"

	"github.com/katalvlaran/qcalgebra/expr"
)

// IdentityAddition drops additive zeros: x + 0 => x, 0 + x => x and
// x - 0 => x. Zero recognition is structural (a scalar leaf of value
// exactly 0); an expression that merely evaluates to zero is left
// alone.
func IdentityAddition(e expr.Expr) (expr.Expr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok {
		return nil, false
	}
	switch b.Kind() {
	case expr.KindAdd:
		if expr.IsZero(b.Right()) {
			return b.Left().Clone(), true
		}
		if expr.IsZero(b.Left()) {
			return b.Right().Clone(), true
		}
	case expr.KindSubtract:
		if expr.IsZero(b.Right()) {
			return b.Left().Clone(), true
		}
	}
	return nil, false
}

// IdentityMultiplication drops multiplicative ones: x * 1 => x,
// 1 * x => x and x / 1 => x.
func IdentityMultiplication(e expr.Expr) (expr.Expr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok {
		return nil, false
	}
	switch b.Kind() {
	case expr.KindMultiply:
		if expr.IsOne(b.Right()) {
			return b.Left().Clone(), true
		}
		if expr.IsOne(b.Left()) {
			return b.Right().Clone(), true
		}
	case expr.KindDivide:
		if expr.IsOne(b.Right()) {
			return b.Left().Clone(), true
		}
	}
	return nil, false
}

// ZeroMultiplication collapses products with a structural zero factor:
// x * 0 => 0 and 0 * x => 0.
func ZeroMultiplication(e expr.Expr) (expr.Expr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok || b.Kind() != expr.KindMultiply {
		return nil, false
	}
	if expr.IsZero(b.Left()) || expr.IsZero(b.Right()) {
		return expr.Zero(), true
	}
	return nil, false
}

// CombineConstants folds a binary operation whose operands are both
// scalar leaves into a single scalar leaf. Division by a zero scalar is
// left unevaluated.
func CombineConstants(e expr.Expr) (expr.Expr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok {
		return nil, false
	}
	l, lok := expr.ScalarValue(b.Left())
	r, rok := expr.ScalarValue(b.Right())
	if !lok || !rok {
		return nil, false
	}
	switch b.Kind() {
	case expr.KindAdd:
		return expr.Constant(l + r), true
	case expr.KindSubtract:
		return expr.Constant(l - r), true
	case expr.KindMultiply:
		return expr.Constant(l * r), true
	case expr.KindDivide:
		if r == 0 {
			return nil, false
		}
		return expr.Constant(l / r), true
	case expr.KindPower:
		return expr.Constant(math.Pow(l, r)), true
	}
	return nil, false
}
