package simplify

import (
	"sort"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/expr"
)

// isDelta reports whether t is a rank-2 Kronecker delta.
func isDelta(t core.Tensor) bool {
	return t.Name() == core.KroneckerName && t.Rank() == 2
}

// ContractKroneckerDelta eliminates a delta factor from a product of
// two tensor leaves: δ[p,q] * T[...q...] => T[...p...], with the
// delta's surviving label substituted for the shared one. Applies on
// either side of the product.
func ContractKroneckerDelta(e expr.Expr) (expr.Expr, bool) {
	m, ok := asMultiply(e)
	if !ok {
		return nil, false
	}
	lt, lok := m.Left().(*expr.TensorExpr)
	rt, rok := m.Right().(*expr.TensorExpr)
	if !lok || !rok {
		return nil, false
	}
	if out, ok := contractDelta(lt.Ten(), rt.Ten()); ok {
		return out, true
	}
	if out, ok := contractDelta(rt.Ten(), lt.Ten()); ok {
		return out, true
	}
	return nil, false
}

// contractDelta relabels other when delta shares exactly one label with
// it; the shared label is replaced by the delta's free label.
func contractDelta(delta, other core.Tensor) (expr.Expr, bool) {
	if !isDelta(delta) || isDelta(other) {
		return nil, false
	}
	p := delta.Indices().At(0)
	q := delta.Indices().At(1)
	others := other.Indices()
	switch {
	case others.ContainsLabel(q.Label()) && !others.ContainsLabel(p.Label()):
		return expr.Tensor(other.Relabel(map[string]string{q.Label(): p.Label()})), true
	case others.ContainsLabel(p.Label()) && !others.ContainsLabel(q.Label()):
		return expr.Tensor(other.Relabel(map[string]string{p.Label(): q.Label()})), true
	}
	return nil, false
}

// CollapseRepeatedIndices turns a product of two tensor leaves sharing
// index labels into an explicit contraction over the shared labels
// (the Einstein convention made explicit in the tree):
//
//	T[p,q] * U[q,r] => contract(T[p,q], U[q,r]; q)
func CollapseRepeatedIndices(e expr.Expr) (expr.Expr, bool) {
	m, ok := asMultiply(e)
	if !ok {
		return nil, false
	}
	lt, lok := m.Left().(*expr.TensorExpr)
	rt, rok := m.Right().(*expr.TensorExpr)
	if !lok || !rok {
		return nil, false
	}
	if isDelta(lt.Ten()) || isDelta(rt.Ten()) {
		return nil, false
	}
	common := lt.Ten().CommonIndices(rt.Ten())
	if common.Empty() {
		return nil, false
	}
	return expr.Contract(m.Left(), m.Right(), common.Unique()), true
}

// CanonicalizeTensor rewrites a tensor leaf into its canonical index
// order:
//   - a symmetric tensor sorts its labels ascending;
//   - an antisymmetric tensor with a repeated label vanishes;
//   - an antisymmetric tensor sorts its labels ascending and picks up
//     the permutation sign, rendered as a coefficient of -1 on odd
//     permutations.
//
// Already-canonical leaves are left untouched so the rewrite reaches a
// fixed point.
func CanonicalizeTensor(e expr.Expr) (expr.Expr, bool) {
	te, ok := e.(*expr.TensorExpr)
	if !ok {
		return nil, false
	}
	t := te.Ten()

	switch t.Kind() {
	case core.TensorSymmetric:
		perm, _ := sortPermutation(t.Indices())
		if perm == nil {
			return nil, false
		}
		sorted, err := t.TransposePerm(perm)
		if err != nil {
			return nil, false
		}
		return expr.Tensor(sorted), true

	case core.TensorAntisymmetric:
		if t.Indices().HasRepeated() {
			return expr.Zero(), true
		}
		perm, odd := sortPermutation(t.Indices())
		if perm == nil {
			return nil, false
		}
		sorted, err := t.TransposePerm(perm)
		if err != nil {
			return nil, false
		}
		if !odd {
			return expr.Tensor(sorted), true
		}
		signed := expr.NewSum()
		signed.AddTerm(expr.Tensor(sorted), -1)
		return signed, true
	}
	return nil, false
}

// sortPermutation returns the permutation that orders the set's labels
// ascending and whether that permutation is odd. A nil permutation
// means the labels are already sorted.
func sortPermutation(s core.IndexSet) (perm []int, odd bool) {
	n := s.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.At(order[a]).Label() < s.At(order[b]).Label()
	})

	sorted := true
	for i, from := range order {
		if from != i {
			sorted = false
			break
		}
	}
	if sorted {
		return nil, false
	}

	// parity by counting inversions of the permutation
	inv := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if order[i] > order[j] {
				inv++
			}
		}
	}
	return order, inv%2 == 1
}
