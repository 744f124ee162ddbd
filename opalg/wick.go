package opalg

import "github.com/katalvlaran/qcalgebra/core"

// VacuumExpectation evaluates ⟨0| p |0⟩ by Wick's theorem: the sum over
// full pairings of the product's operators, each pairing weighted by
// the product of its elementary contractions and, for fermions, by the
// parity of line crossings. Products of odd length evaluate to zero.
// The product's coefficient multiplies the result.
//
// Complexity: O((n−1)!!) pairings in the worst case.
func VacuumExpectation(p core.OperatorProduct) float64 {
	if p.Len()%2 != 0 {
		return 0
	}
	return p.Coefficient() * pairingSum(p.Operators())
}

// pairingSum recurses over full pairings: fix ops[0], pair it with each
// later operator, and multiply by the sum over pairings of the rest.
// Pairing ops[0] with ops[j] crosses the j−1 operators in between; each
// crossing of a fermionic pair line flips the sign.
func pairingSum(ops []core.Operator) float64 {
	if len(ops) == 0 {
		return 1
	}
	total := 0.0
	for j := 1; j < len(ops); j++ {
		c := contractionValue(ops[0], ops[j])
		if c == 0 {
			continue
		}
		sign := 1.0
		if ops[0].IsFermionic() {
			// the contraction line crosses every fermionic operator
			// standing between the pair
			crossed := 0
			for _, mid := range ops[1:j] {
				if mid.IsFermionic() {
					crossed++
				}
			}
			if crossed%2 != 0 {
				sign = -1
			}
		}
		rest := make([]core.Operator, 0, len(ops)-2)
		rest = append(rest, ops[1:j]...)
		rest = append(rest, ops[j+1:]...)
		total += sign * c * pairingSum(rest)
	}
	return total
}

// contractionValue returns the elementary vacuum contraction ⟨a b⟩:
// 1 when a is an annihilation operator and b the matching creation
// operator of the same algebra on the same indices (δ_pq), 0 otherwise.
func contractionValue(a, b core.Operator) float64 {
	if !a.IsAnnihilation() || !b.IsCreation() {
		return 0
	}
	if a.Algebra() != b.Algebra() {
		return 0
	}
	if !a.Indices().Equal(b.Indices()) {
		return 0
	}
	return 1
}
