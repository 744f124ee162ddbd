package opalg

import "github.com/katalvlaran/qcalgebra/core"

// MaxBCHOrder is the highest nesting depth the expansion supports.
const MaxBCHOrder = 5

// bchCoefficients holds the series weights for e^A B e^{−A}:
// B + [A,B] + 1/2 [A,[A,B]] + 1/12 ... by nesting depth. Depth four
// vanishes identically; depth five carries −1/720.
var bchCoefficients = [MaxBCHOrder + 1]float64{1, 1, 1.0 / 2, 1.0 / 12, 0, -1.0 / 720}

// BCHExpansion expands the similarity transform e^A B e^{−A} as the
// truncated Baker–Campbell–Hausdorff series up to the given nesting
// order:
//
//	B + [A,B] + 1/2 [A,[A,B]] + 1/12 [A,[A,[A,B]]] − 1/720 [A,...[A,B]]
//
// Orders above MaxBCHOrder are clamped; negative orders yield only B.
// Terms whose series weight is zero are skipped.
func BCHExpansion(a, b core.Operator, order int) []core.OperatorProduct {
	if order < 0 {
		order = 0
	}
	if order > MaxBCHOrder {
		order = MaxBCHOrder
	}

	out := []core.OperatorProduct{core.NewProduct(b)}
	nested := []core.OperatorProduct{core.NewProduct(b)}
	aTerm := []core.OperatorProduct{core.NewProduct(a)}

	for depth := 1; depth <= order; depth++ {
		nested = commutatorTerms(aTerm, nested)
		// [A, X] above computes AX − XA with A on the left already,
		// matching [A,[A,...[A,B]]] nesting.
		c := bchCoefficients[depth]
		if c == 0 {
			continue
		}
		for _, term := range nested {
			out = append(out, term.Scale(c))
		}
	}
	return out
}
