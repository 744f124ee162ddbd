package opalg

import "github.com/katalvlaran/qcalgebra/core"

// Commutator expands [A, B] = AB − BA into a two-term list.
func Commutator(a, b core.Operator) []core.OperatorProduct {
	return CommutatorProducts(core.NewProduct(a), core.NewProduct(b))
}

// CommutatorProducts expands [A, B] for operator products.
func CommutatorProducts(a, b core.OperatorProduct) []core.OperatorProduct {
	return []core.OperatorProduct{
		a.Mul(b),
		b.Mul(a).Scale(-1),
	}
}

// Anticommutator expands {A, B} = AB + BA into a two-term list.
func Anticommutator(a, b core.Operator) []core.OperatorProduct {
	return AnticommutatorProducts(core.NewProduct(a), core.NewProduct(b))
}

// AnticommutatorProducts expands {A, B} for operator products.
func AnticommutatorProducts(a, b core.OperatorProduct) []core.OperatorProduct {
	return []core.OperatorProduct{
		a.Mul(b),
		b.Mul(a),
	}
}

// commutatorTerms expands the commutator of two term lists: every
// cross product xy contributes +xy and −yx.
func commutatorTerms(x, y []core.OperatorProduct) []core.OperatorProduct {
	var out []core.OperatorProduct
	for _, xi := range x {
		for _, yj := range y {
			out = append(out, xi.Mul(yj))
			out = append(out, yj.Mul(xi).Scale(-1))
		}
	}
	return out
}

// NestedCommutator left-folds the commutator across the sequence:
// [[..[[A1, A2], A3]..], An]. A single operator yields itself; an empty
// sequence yields no terms. The term count doubles per level.
func NestedCommutator(ops []core.Operator) []core.OperatorProduct {
	if len(ops) == 0 {
		return nil
	}
	acc := []core.OperatorProduct{core.NewProduct(ops[0])}
	for _, op := range ops[1:] {
		acc = commutatorTerms(acc, []core.OperatorProduct{core.NewProduct(op)})
	}
	return acc
}

// IsZeroCommutator reports whether [A, B] vanishes identically: the
// operators are structurally equal, or both commute by algebra.
func IsZeroCommutator(a, b core.Operator) bool {
	return a.Equal(b) || a.CommutesWith(b)
}

// EvaluateCommutatorCoefficient returns the scalar value of [A, B] when
// the pair is a canonical bosonic ladder pair on the same index:
// [a, a†] = 1 and [a†, a] = −1. Every other pair evaluates to 0 (for
// fermions the scalar relation lives in the anticommutator instead).
func EvaluateCommutatorCoefficient(a, b core.Operator) float64 {
	if !a.IsBosonic() || !b.IsBosonic() {
		return 0
	}
	if !a.Indices().Equal(b.Indices()) {
		return 0
	}
	switch {
	case a.IsAnnihilation() && b.IsCreation():
		return 1
	case a.IsCreation() && b.IsAnnihilation():
		return -1
	default:
		return 0
	}
}

// CanonicalCommutation returns the canonical [p, q] = iħ preset: a
// single composite term standing for the scalar iħ.
func CanonicalCommutation(p, q core.Operator) core.OperatorProduct {
	ihbar := core.NewOperatorSym(
		core.NewComplex("iħ", 0, 1),
		core.NewIndexSet(),
		core.WithRole(core.RoleComposite),
	)
	return core.NewProduct(ihbar)
}

// CanonicalAnticommutation returns the canonical {a, a†} = 1 preset:
// the identity product with coefficient 1.
func CanonicalAnticommutation(a, aDag core.Operator) core.OperatorProduct {
	return core.NewProduct()
}
