package simplify

import (
	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/expr"
)

// symmetryGroups maps a point-group identifier to its reduction. The
// registry is deliberately small: C1 (no symmetry, reduce nothing) and
// Ci (inversion symmetry, under which a conjugated hermitian tensor
// equals its unconjugated transpose).
var symmetryGroups = map[string]RuleFunc{
	"C1": reduceC1,
	"Ci": reduceCi,
}

// ReduceBySymmetry returns the reduction rule of the named point
// group. An unknown group name yields a rule that never applies.
func ReduceBySymmetry(group string) RuleFunc {
	if fn, ok := symmetryGroups[group]; ok {
		return fn
	}
	return func(expr.Expr) (expr.Expr, bool) { return nil, false }
}

// reduceC1 is the trivial group: nothing is symmetry-equivalent.
func reduceC1(expr.Expr) (expr.Expr, bool) { return nil, false }

// reduceCi folds the conjugate of a hermitian tensor leaf back onto the
// plain transposed tensor: h*[p,q] => h[q,p].
func reduceCi(e expr.Expr) (expr.Expr, bool) {
	te, ok := e.(*expr.TensorExpr)
	if !ok {
		return nil, false
	}
	t := te.Ten()
	if t.Kind() != core.TensorHermitian || !t.IsConjugated() {
		return nil, false
	}
	return expr.Tensor(t.Conjugate().Transpose()), true
}
