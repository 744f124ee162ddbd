package expr

import (
	"strings"

	"github.com/katalvlaran/qcalgebra/core"
)

// SumExpr is an n-ary sum whose terms each carry a float64 coefficient.
// The term count always equals the coefficient count.
type SumExpr struct {
	terms  []Expr
	coeffs []float64
}

// NewSum returns an empty sum; populate it with AddTerm. An empty sum
// renders "0".
func NewSum() *SumExpr { return &SumExpr{} }

// Sum builds a sum of clones of terms, each with coefficient 1.
func Sum(terms ...Expr) *SumExpr {
	s := NewSum()
	for _, t := range terms {
		s.AddTerm(t, 1)
	}
	return s
}

// AddTerm appends a clone of term with the given coefficient.
func (e *SumExpr) AddTerm(term Expr, coeff float64) {
	e.terms = append(e.terms, term.Clone())
	e.coeffs = append(e.coeffs, coeff)
}

// NumTerms returns the term count.
func (e *SumExpr) NumTerms() int { return len(e.terms) }

// Term returns the i-th term.
func (e *SumExpr) Term(i int) Expr { return e.terms[i] }

// Coefficient returns the i-th coefficient.
func (e *SumExpr) Coefficient(i int) float64 { return e.coeffs[i] }

// Coefficients returns a copy of the coefficient list.
func (e *SumExpr) Coefficients() []float64 {
	out := make([]float64, len(e.coeffs))
	copy(out, e.coeffs)
	return out
}

func (e *SumExpr) Kind() Kind       { return KindSum }
func (e *SumExpr) Children() []Expr { return e.terms }

func (e *SumExpr) Clone() Expr {
	c := NewSum()
	for i, t := range e.terms {
		c.AddTerm(t, e.coeffs[i])
	}
	return c
}

func (e *SumExpr) String() string {
	if len(e.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range e.terms {
		if i > 0 {
			b.WriteString(" + ")
		}
		if e.coeffs[i] != 1.0 {
			b.WriteString(core.FormatValue(e.coeffs[i]))
			b.WriteString("*")
		}
		b.WriteString(t.String())
	}
	return b.String()
}

func (e *SumExpr) Equal(other Expr) bool {
	o, ok := other.(*SumExpr)
	if !ok || len(e.terms) != len(o.terms) {
		return false
	}
	for i := range e.terms {
		if e.coeffs[i] != o.coeffs[i] || !e.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (e *SumExpr) Hash() uint64 {
	h := kindHash(KindSum)
	for i, t := range e.terms {
		h = core.HashCombine(h, t.Hash())
		h = core.HashCombine(h, core.HashFloat(e.coeffs[i]))
	}
	return h
}

// Derivative differentiates term-wise, keeping the same coefficients.
func (e *SumExpr) Derivative(v *core.Symbol) Expr {
	out := NewSum()
	for i, t := range e.terms {
		out.AddTerm(t.Derivative(v), e.coeffs[i])
	}
	return out
}

// ContractionExpr is a pairwise tensor contraction over an explicit set
// of contracted indices. Exactly two children.
type ContractionExpr struct {
	noDeriv
	a          Expr
	b          Expr
	contracted core.IndexSet
}

// Contract builds the contraction of a and b over indices.
func Contract(a, b Expr, indices core.IndexSet) *ContractionExpr {
	return &ContractionExpr{a: a.Clone(), b: b.Clone(), contracted: indices.Clone()}
}

// A returns the first operand.
func (e *ContractionExpr) A() Expr { return e.a }

// B returns the second operand.
func (e *ContractionExpr) B() Expr { return e.b }

// Contracted returns the contracted index set.
func (e *ContractionExpr) Contracted() core.IndexSet { return e.contracted }

func (e *ContractionExpr) Kind() Kind       { return KindContraction }
func (e *ContractionExpr) Children() []Expr { return []Expr{e.a, e.b} }

func (e *ContractionExpr) Clone() Expr {
	return &ContractionExpr{a: e.a.Clone(), b: e.b.Clone(), contracted: e.contracted.Clone()}
}

func (e *ContractionExpr) String() string {
	return "contract(" + e.a.String() + ", " + e.b.String() + "; " + e.contracted.String() + ")"
}

func (e *ContractionExpr) Equal(other Expr) bool {
	o, ok := other.(*ContractionExpr)
	return ok && e.a.Equal(o.a) && e.b.Equal(o.b) && e.contracted.Equal(o.contracted)
}

func (e *ContractionExpr) Hash() uint64 {
	h := kindHash(KindContraction)
	h = core.HashCombine(h, e.a.Hash())
	h = core.HashCombine(h, e.b.Hash())
	h = core.HashCombine(h, e.contracted.Hash())
	return h
}

// IndexSumExpr sums its single child over one index.
type IndexSumExpr struct {
	noDeriv
	child Expr
	index core.Index
}

// IndexSum builds the summation of child over ix.
func IndexSum(child Expr, ix core.Index) *IndexSumExpr {
	return &IndexSumExpr{child: child.Clone(), index: ix}
}

// Child returns the summand.
func (e *IndexSumExpr) Child() Expr { return e.child }

// Index returns the summation index.
func (e *IndexSumExpr) Index() core.Index { return e.index }

func (e *IndexSumExpr) Kind() Kind       { return KindIndexSum }
func (e *IndexSumExpr) Children() []Expr { return []Expr{e.child} }

func (e *IndexSumExpr) Clone() Expr {
	return &IndexSumExpr{child: e.child.Clone(), index: e.index}
}

func (e *IndexSumExpr) String() string {
	return "Σ_" + e.index.Label() + "(" + e.child.String() + ")"
}

func (e *IndexSumExpr) Equal(other Expr) bool {
	o, ok := other.(*IndexSumExpr)
	return ok && e.index.Equal(o.index) && e.child.Equal(o.child)
}

func (e *IndexSumExpr) Hash() uint64 {
	h := kindHash(KindIndexSum)
	h = core.HashCombine(h, e.index.Hash())
	h = core.HashCombine(h, e.child.Hash())
	return h
}
