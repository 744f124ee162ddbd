package simplify

import "github.com/katalvlaran/qcalgebra/expr"

// asAdd returns e as a binary Add node.
func asAdd(e expr.Expr) (*expr.BinaryExpr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok || b.Kind() != expr.KindAdd {
		return nil, false
	}
	return b, true
}

// asMultiply returns e as a binary Multiply node.
func asMultiply(e expr.Expr) (*expr.BinaryExpr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok || b.Kind() != expr.KindMultiply {
		return nil, false
	}
	return b, true
}

// DistributeMultiplication expands a product over binary additions:
//
//	(a + b) * (c + d) => a*c + a*d + b*c + b*d
//	(a + b) * c       => a*c + b*c
//	a * (c + d)       => a*c + a*d
//
// The four-term case keeps the fixed a*c, a*d, b*c, b*d order. Only
// binary Add operands distribute; n-ary Sum operands stay as they are.
func DistributeMultiplication(e expr.Expr) (expr.Expr, bool) {
	m, ok := asMultiply(e)
	if !ok {
		return nil, false
	}
	la, lok := asAdd(m.Left())
	ra, rok := asAdd(m.Right())

	switch {
	case lok && rok:
		a, b := la.Left(), la.Right()
		c, d := ra.Left(), ra.Right()
		return expr.Sum(
			expr.Multiply(a, c),
			expr.Multiply(a, d),
			expr.Multiply(b, c),
			expr.Multiply(b, d),
		), true
	case lok:
		a, b := la.Left(), la.Right()
		return expr.Sum(
			expr.Multiply(a, m.Right()),
			expr.Multiply(b, m.Right()),
		), true
	case rok:
		c, d := ra.Left(), ra.Right()
		return expr.Sum(
			expr.Multiply(m.Left(), c),
			expr.Multiply(m.Left(), d),
		), true
	}
	return nil, false
}

// FactorCommonTerms pulls a shared factor out of a two-product
// addition. The shared right factor is checked first:
//
//	a*c + b*c => (a + b) * c
//	c*a + c*b => c * (a + b)
func FactorCommonTerms(e expr.Expr) (expr.Expr, bool) {
	add, ok := asAdd(e)
	if !ok {
		return nil, false
	}
	lm, lok := asMultiply(add.Left())
	rm, rok := asMultiply(add.Right())
	if !lok || !rok {
		return nil, false
	}
	if lm.Right().Equal(rm.Right()) {
		return expr.Multiply(expr.Add(lm.Left(), rm.Left()), lm.Right()), true
	}
	if lm.Left().Equal(rm.Left()) {
		return expr.Multiply(lm.Left(), expr.Add(lm.Right(), rm.Right())), true
	}
	return nil, false
}

// DistributeOverSubtraction expands a product over a binary
// subtraction, right operand first:
//
//	a * (b - c) => a*b - a*c
//	(a - b) * c => a*c - b*c
func DistributeOverSubtraction(e expr.Expr) (expr.Expr, bool) {
	m, ok := asMultiply(e)
	if !ok {
		return nil, false
	}
	if sub, ok := asSubtract(m.Right()); ok {
		return expr.Subtract(
			expr.Multiply(m.Left(), sub.Left()),
			expr.Multiply(m.Left(), sub.Right()),
		), true
	}
	if sub, ok := asSubtract(m.Left()); ok {
		return expr.Subtract(
			expr.Multiply(sub.Left(), m.Right()),
			expr.Multiply(sub.Right(), m.Right()),
		), true
	}
	return nil, false
}

// asSubtract returns e as a binary Subtract node.
func asSubtract(e expr.Expr) (*expr.BinaryExpr, bool) {
	b, ok := e.(*expr.BinaryExpr)
	if !ok || b.Kind() != expr.KindSubtract {
		return nil, false
	}
	return b, true
}
