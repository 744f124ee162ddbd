package contract

import "github.com/katalvlaran/qcalgebra/core"

// EstimateCost approximates the work of contracting a with b over the
// given contracted indices: the product of the dimension ranges of
// every distinct index label on either operand. The contracted set is
// advisory; summed labels still appear in the loop nest and therefore
// in the estimate.
func EstimateCost(a, b core.Tensor, contracted core.IndexSet) float64 {
	dims := make(map[string]float64)
	collectDims(dims, a.Indices())
	collectDims(dims, b.Indices())
	collectDims(dims, contracted)

	cost := 1.0
	for _, d := range dims {
		cost *= d
	}
	return cost
}

func collectDims(dims map[string]float64, ix core.IndexSet) {
	for i := 0; i < ix.Len(); i++ {
		idx := ix.At(i)
		if _, ok := dims[idx.Label()]; !ok {
			dims[idx.Label()] = float64(idx.Dimension())
		}
	}
}

// labelCost is the mask-level analogue of EstimateCost used by the
// planner: the product of dimensions over the union of two label sets.
func labelCost(a, b map[string]float64) float64 {
	cost := 1.0
	for _, d := range a {
		cost *= d
	}
	for l, d := range b {
		if _, ok := a[l]; !ok {
			cost *= d
		}
	}
	return cost
}

// mergeLabels returns the free labels of the intermediate produced by
// contracting two operands: the labels in exactly one of the two.
func mergeLabels(a, b map[string]float64) map[string]float64 {
	out := make(map[string]float64)
	for l, d := range a {
		if _, ok := b[l]; !ok {
			out[l] = d
		}
	}
	for l, d := range b {
		if _, ok := a[l]; !ok {
			out[l] = d
		}
	}
	return out
}

// sharedLabels returns the labels common to both operands, the ones a
// pairwise contraction sums over.
func sharedLabels(a, b map[string]float64) []string {
	var out []string
	for l := range a {
		if _, ok := b[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
