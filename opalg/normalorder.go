package opalg

import "github.com/katalvlaran/qcalgebra/core"

// orderClass ranks an operator for normal ordering:
// creation-like first, annihilation last. Number operators count as
// creation-like; every other role sits between, so reordering never
// moves a creation past a Hamiltonian or density operator needlessly.
func orderClass(op core.Operator) int {
	switch op.Role() {
	case core.RoleCreation, core.RoleNumber:
		return 0
	case core.RoleAnnihilation:
		return 2
	default:
		return 1
	}
}

// IsNormalOrdered reports whether every creation-like operator in the
// product precedes every annihilation operator.
func IsNormalOrdered(p core.OperatorProduct) bool {
	prev := 0
	for i := 0; i < p.Len(); i++ {
		c := orderClass(p.At(i))
		if c < prev {
			return false
		}
		prev = c
	}
	return true
}

// NormalOrder returns the normal-ordered form of p: the minimal stable
// reordering of its operators, with the permutation-parity sign folded
// into the coefficient and the normal-ordered flag set.
//
// Stable insertion sort realizes the minimal number of adjacent
// transpositions (the inversion count of the permutation); each
// transposition of two fermionic operators flips the sign.
//
// Complexity: O(n²) in the product length.
func NormalOrder(p core.OperatorProduct) core.OperatorProduct {
	ops := p.Operators()
	sign := 1
	for i := 1; i < len(ops); i++ {
		for j := i; j > 0 && orderClass(ops[j]) < orderClass(ops[j-1]); j-- {
			if ops[j].IsFermionic() && ops[j-1].IsFermionic() {
				sign = -sign
			}
			ops[j], ops[j-1] = ops[j-1], ops[j]
		}
	}
	out := core.NewProduct(ops...)
	out.SetCoefficient(p.Coefficient() * float64(sign))
	out.SetNormalOrdered(true)
	return out
}

// NormalOrderingSign returns the sign NormalOrder would fold into the
// coefficient: −1 to the number of fermionic transpositions, always +1
// for purely bosonic products.
func NormalOrderingSign(p core.OperatorProduct) int {
	ops := p.Operators()
	sign := 1
	for i := 1; i < len(ops); i++ {
		for j := i; j > 0 && orderClass(ops[j]) < orderClass(ops[j-1]); j-- {
			if ops[j].IsFermionic() && ops[j-1].IsFermionic() {
				sign = -sign
			}
			ops[j], ops[j-1] = ops[j-1], ops[j]
		}
	}
	return sign
}
