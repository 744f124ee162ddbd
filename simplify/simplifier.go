package simplify

import (
	"fmt"

	"github.com/katalvlaran/qcalgebra/expr"
)

// Category groups rules by the concern they rewrite.
type Category int

const (
	CatAlgebraic Category = iota
	CatDistributive
	CatCommutator
	CatTensor
	CatOperator
	CatSymmetry
)

// String returns the category name used in trace lines.
func (c Category) String() string {
	switch c {
	case CatAlgebraic:
		return "algebraic"
	case CatDistributive:
		return "distributive"
	case CatCommutator:
		return "commutator"
	case CatTensor:
		return "tensor"
	case CatOperator:
		return "operator"
	case CatSymmetry:
		return "symmetry"
	default:
		return "unknown"
	}
}

// categoryOrder fixes the order categories run within one pass.
var categoryOrder = []Category{
	CatAlgebraic,
	CatDistributive,
	CatCommutator,
	CatTensor,
	CatOperator,
	CatSymmetry,
}

// RuleFunc attempts a local rewrite of a single node. It returns the
// replacement and true when it applies, (nil, false) otherwise. Rules
// must not mutate their input.
type RuleFunc func(e expr.Expr) (expr.Expr, bool)

// Rule is a named rewrite.
type Rule struct {
	Name  string
	Apply RuleFunc
}

const (
	// DefaultMaxIterations caps the number of full passes a Simplify
	// call may run.
	DefaultMaxIterations = 10

	maxTraceEntries = 1000
	traceDropCount  = 100
)

// Option configures a Simplifier at construction.
type Option func(*Simplifier)

// WithTrace enables recording of every rule firing.
func WithTrace() Option {
	return func(s *Simplifier) { s.traceEnabled = true }
}

// WithMaxIterations overrides the pass cap. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(s *Simplifier) {
		if n >= 1 {
			s.maxIter = n
		}
	}
}

// Simplifier rewrites expression trees to a fixed point under its rule
// set. Not safe for concurrent use; each goroutine should own one.
type Simplifier struct {
	rules        map[Category][]Rule
	traceEnabled bool
	trace        []string
	maxIter      int
}

// New creates a Simplifier with the default rule set installed.
func New(opts ...Option) *Simplifier {
	s := &Simplifier{rules: defaultRules(), maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddRule appends a rule to the category's list. Appended rules run
// after the defaults of that category.
func (s *Simplifier) AddRule(cat Category, r Rule) {
	s.rules[cat] = append(s.rules[cat], r)
}

// RemoveRules clears every rule of the category.
func (s *Simplifier) RemoveRules(cat Category) {
	delete(s.rules, cat)
}

// Trace returns a copy of the recorded rule firings.
func (s *Simplifier) Trace() []string {
	out := make([]string, len(s.trace))
	copy(out, s.trace)
	return out
}

// ClearTrace discards the recorded firings.
func (s *Simplifier) ClearTrace() { s.trace = nil }

// Simplify rewrites e to a fixed point: up to the iteration cap, each
// pass runs every category once, and the loop stops as soon as a full
// pass leaves the rendered form unchanged. The input is never mutated.
//
// Convergence is detected on the rendered string, so a pass that
// produces a differently-shaped tree with an identical rendering counts
// as converged.
func (s *Simplifier) Simplify(e expr.Expr) expr.Expr {
	cur := e.Clone()
	for i := 0; i < s.maxIter; i++ {
		before := cur.String()
		for _, cat := range categoryOrder {
			cur = s.rewrite(cur, cat)
		}
		if cur.String() == before {
			break
		}
	}
	return cur
}

// ApplyCategory runs a single bottom-up traversal of one category over
// a clone of e.
func (s *Simplifier) ApplyCategory(e expr.Expr, cat Category) expr.Expr {
	return s.rewrite(e.Clone(), cat)
}

// rewrite rebuilds e bottom-up, then tries the category's rules on the
// rebuilt node in order; the first rule that applies replaces the node.
func (s *Simplifier) rewrite(e expr.Expr, cat Category) expr.Expr {
	node := rebuild(e, func(child expr.Expr) expr.Expr {
		return s.rewrite(child, cat)
	})
	for _, r := range s.rules[cat] {
		out, ok := r.Apply(node)
		if !ok || out == nil {
			continue
		}
		s.record(cat, r.Name, node, out)
		return out
	}
	return node
}

// record appends one trace line, dropping the oldest entries when the
// log is full.
func (s *Simplifier) record(cat Category, rule string, before, after expr.Expr) {
	if !s.traceEnabled {
		return
	}
	if len(s.trace) >= maxTraceEntries {
		s.trace = append(s.trace[:0], s.trace[traceDropCount:]...)
	}
	s.trace = append(s.trace, fmt.Sprintf("%s/%s: %s => %s", cat, rule, before, after))
}

// rebuild reconstructs a node of the same shape around transformed
// children. Leaves come back untouched.
func rebuild(e expr.Expr, fn func(expr.Expr) expr.Expr) expr.Expr {
	switch n := e.(type) {
	case *expr.BinaryExpr:
		l, r := fn(n.Left()), fn(n.Right())
		switch n.Kind() {
		case expr.KindAdd:
			return expr.Add(l, r)
		case expr.KindSubtract:
			return expr.Subtract(l, r)
		case expr.KindMultiply:
			return expr.Multiply(l, r)
		case expr.KindDivide:
			return expr.Divide(l, r)
		default:
			return expr.Power(l, r)
		}
	case *expr.CommutatorExpr:
		return expr.Commutator(fn(n.A()), fn(n.B()))
	case *expr.AnticommutatorExpr:
		return expr.Anticommutator(fn(n.A()), fn(n.B()))
	case *expr.SumExpr:
		out := expr.NewSum()
		for i := 0; i < n.NumTerms(); i++ {
			out.AddTerm(fn(n.Term(i)), n.Coefficient(i))
		}
		return out
	case *expr.ContractionExpr:
		return expr.Contract(fn(n.A()), fn(n.B()), n.Contracted())
	case *expr.IndexSumExpr:
		return expr.IndexSum(fn(n.Child()), n.Index())
	case *expr.DerivativeExpr:
		return expr.Deriv(fn(n.Child()), n.Var())
	case *expr.IntegralExpr:
		return expr.Integral(fn(n.Child()), n.Var())
	case *expr.CallExpr:
		args := make([]expr.Expr, 0, len(n.Children()))
		for _, a := range n.Children() {
			args = append(args, fn(a))
		}
		return expr.Call(n.Name(), args...)
	default:
		return e
	}
}

// defaultRules returns the stock rule set, category by category.
func defaultRules() map[Category][]Rule {
	return map[Category][]Rule{
		CatAlgebraic: {
			{Name: "IdentityAddition", Apply: IdentityAddition},
			{Name: "IdentityMultiplication", Apply: IdentityMultiplication},
			{Name: "ZeroMultiplication", Apply: ZeroMultiplication},
			{Name: "CombineConstants", Apply: CombineConstants},
		},
		CatDistributive: {
			{Name: "DistributeMultiplication", Apply: DistributeMultiplication},
			{Name: "FactorCommonTerms", Apply: FactorCommonTerms},
			{Name: "DistributeOverSubtraction", Apply: DistributeOverSubtraction},
		},
		CatCommutator: {
			{Name: "Antisymmetry", Apply: Antisymmetry},
			{Name: "ZeroCommutator", Apply: ZeroCommutator},
			{Name: "ExpandCommutator", Apply: ExpandCommutator},
		},
		CatTensor: {
			{Name: "ContractKroneckerDelta", Apply: ContractKroneckerDelta},
			{Name: "CollapseRepeatedIndices", Apply: CollapseRepeatedIndices},
			{Name: "CanonicalizeTensor", Apply: CanonicalizeTensor},
		},
		CatOperator: {
			{Name: "ExpandAnticommutator", Apply: ExpandAnticommutator},
			{Name: "NormalOrderProducts", Apply: NormalOrderProducts},
			{Name: "VacuumExpectation", Apply: EvaluateVacuumExpectation},
		},
		CatSymmetry: {
			{Name: "ReduceBySymmetry", Apply: ReduceBySymmetry("C1")},
		},
	}
}
