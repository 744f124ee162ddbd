package simplify

import (
	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/expr"
	"github.com/katalvlaran/qcalgebra/scope"
)

// RenameDummyIndices relabels the contracted (dummy) indices of every
// contraction node whose label also occurs elsewhere in the tree, so
// that merging independently built expressions never captures another
// term's summation label. Fresh labels derive from the colliding one:
// q becomes q1, then q2, and so on. Labels already unique to their
// contraction are kept.
//
// This is a preparation step rather than a rewrite rule: run it once
// before combining expressions, not inside the fixed-point loop.
func RenameDummyIndices(e expr.Expr) expr.Expr {
	total := make(map[string]int)
	countLabels(e, total)

	reserved := make([]string, 0, len(total))
	for l := range total {
		reserved = append(reserved, l)
	}
	gen := scope.NewNameGenerator(reserved...)
	return renameDummies(e.Clone(), total, gen)
}

// countLabels tallies index-label occurrences on tensor and operator
// leaves of the subtree.
func countLabels(e expr.Expr, into map[string]int) {
	expr.Visit(e, func(n expr.Expr) {
		switch v := n.(type) {
		case *expr.TensorExpr:
			for _, ix := range v.Ten().Indices().All() {
				into[ix.Label()]++
			}
		case *expr.OperatorExpr:
			for _, ix := range v.Op().Indices().All() {
				into[ix.Label()]++
			}
		}
	})
}

func renameDummies(e expr.Expr, total map[string]int, gen *scope.NameGenerator) expr.Expr {
	c, ok := e.(*expr.ContractionExpr)
	if !ok {
		return rebuild(e, func(child expr.Expr) expr.Expr {
			return renameDummies(child, total, gen)
		})
	}

	// a dummy collides when it occurs outside this contraction subtree
	local := make(map[string]int)
	countLabels(c, local)

	mapping := make(map[string]string)
	for _, ix := range c.Contracted().All() {
		l := ix.Label()
		if _, seen := mapping[l]; seen {
			continue
		}
		if total[l] > local[l] {
			mapping[l] = gen.Fresh(l)
		}
	}

	a := relabelLeaves(renameDummies(c.A(), total, gen), mapping)
	b := relabelLeaves(renameDummies(c.B(), total, gen), mapping)

	contracted := core.NewIndexSet()
	for _, ix := range c.Contracted().All() {
		if to, ok := mapping[ix.Label()]; ok {
			ix = ix.WithLabel(to)
		}
		contracted.Add(ix)
	}
	return expr.Contract(a, b, contracted)
}

// relabelLeaves applies a label mapping to every tensor leaf of the
// subtree.
func relabelLeaves(e expr.Expr, mapping map[string]string) expr.Expr {
	if len(mapping) == 0 {
		return e
	}
	if te, ok := e.(*expr.TensorExpr); ok {
		return expr.Tensor(te.Ten().Relabel(mapping))
	}
	return rebuild(e, func(child expr.Expr) expr.Expr {
		return relabelLeaves(child, mapping)
	})
}
