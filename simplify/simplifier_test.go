package simplify_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/expr"
	"github.com/katalvlaran/qcalgebra/simplify"
	"github.com/stretchr/testify/require"
)

func sym(name string) expr.Expr { return expr.Symbol(core.NewSymbol(name)) }

func TestSimplify_EndToEnd(t *testing.T) {
	x, y := sym("x"), sym("y")

	// ((x+0)*(y+1*0))+0 reduces to the same form as x*y
	e := expr.Add(
		expr.Multiply(
			expr.Add(x, expr.Zero()),
			expr.Add(y, expr.Multiply(expr.One(), expr.Zero())),
		),
		expr.Zero(),
	)

	s := simplify.New()
	require.Equal(t, s.Simplify(expr.Multiply(x, y)).String(), s.Simplify(e).String())
	require.Equal(t, "x * y", s.Simplify(e).String())
}

func TestSimplify_InputNotMutated(t *testing.T) {
	x := sym("x")
	e := expr.Add(x, expr.Zero())
	before := e.String()

	_ = simplify.New().Simplify(e)
	require.Equal(t, before, e.String())
}

func TestSimplify_IterationCap(t *testing.T) {
	// a rule that always renames the leaf never converges; the pass cap
	// must still bound the run
	s := simplify.New(simplify.WithTrace())
	for _, cat := range []simplify.Category{
		simplify.CatAlgebraic, simplify.CatDistributive, simplify.CatCommutator,
		simplify.CatTensor, simplify.CatOperator, simplify.CatSymmetry,
	} {
		s.RemoveRules(cat)
	}
	s.AddRule(simplify.CatAlgebraic, simplify.Rule{
		Name: "Toggle",
		Apply: func(e expr.Expr) (expr.Expr, bool) {
			if e.String() == "a" {
				return sym("b"), true
			}
			return sym("a"), true
		},
	})

	out := s.Simplify(sym("a"))
	require.Equal(t, "a", out.String(), "even number of toggles under the default cap")
	require.Len(t, s.Trace(), simplify.DefaultMaxIterations)
}

func TestSimplify_MaxIterationsOption(t *testing.T) {
	s := simplify.New(simplify.WithTrace(), simplify.WithMaxIterations(3))
	for _, cat := range []simplify.Category{
		simplify.CatAlgebraic, simplify.CatDistributive, simplify.CatCommutator,
		simplify.CatTensor, simplify.CatOperator, simplify.CatSymmetry,
	} {
		s.RemoveRules(cat)
	}
	s.AddRule(simplify.CatSymmetry, simplify.Rule{
		Name: "Grow",
		Apply: func(e expr.Expr) (expr.Expr, bool) {
			if e.Kind() != expr.KindSymbol {
				return nil, false
			}
			return expr.Call("f", e), true
		},
	})

	out := s.Simplify(sym("x"))
	require.Equal(t, "f(f(f(x)))", out.String())
}

func TestTrace_FormatAndClear(t *testing.T) {
	s := simplify.New(simplify.WithTrace())
	_ = s.Simplify(expr.Add(sym("x"), expr.Zero()))

	tr := s.Trace()
	require.NotEmpty(t, tr)
	require.Contains(t, tr[0], "algebraic/IdentityAddition")
	require.Contains(t, tr[0], "=>")

	s.ClearTrace()
	require.Empty(t, s.Trace())
}

func TestTrace_DisabledByDefault(t *testing.T) {
	s := simplify.New()
	_ = s.Simplify(expr.Add(sym("x"), expr.Zero()))
	require.Empty(t, s.Trace())
}

func TestTrace_CapDropsOldest(t *testing.T) {
	// 1100 reducible terms fire IdentityAddition 1100 times in one pass;
	// the log must stay within its cap by shedding the oldest entries
	big := expr.NewSum()
	for i := 0; i < 1100; i++ {
		big.AddTerm(expr.Add(sym("x"), expr.Zero()), 1)
	}

	s := simplify.New(simplify.WithTrace())
	_ = s.Simplify(big)

	tr := s.Trace()
	require.LessOrEqual(t, len(tr), 1000)
	require.Greater(t, len(tr), 900)
	for _, line := range tr {
		require.True(t, strings.Contains(line, "=>"))
	}
}

func TestApplyCategory_SingleTraversal(t *testing.T) {
	x, y := sym("x"), sym("y")
	e := expr.Multiply(expr.Add(x, y), y)

	s := simplify.New()

	// the algebraic category alone leaves the product untouched
	require.Equal(t, e.String(), s.ApplyCategory(e, simplify.CatAlgebraic).String())

	// the distributive category expands it
	require.Equal(t, "x * y + y * y", s.ApplyCategory(e, simplify.CatDistributive).String())
}

func TestAddRule_RunsAfterDefaults(t *testing.T) {
	s := simplify.New()
	s.AddRule(simplify.CatAlgebraic, simplify.Rule{
		Name: "RenameQ",
		Apply: func(e expr.Expr) (expr.Expr, bool) {
			if e.String() != "q" {
				return nil, false
			}
			return sym("renamed"), true
		},
	})

	out := s.Simplify(expr.Add(sym("q"), expr.Zero()))
	require.Equal(t, "renamed", out.String())
}

func TestRemoveRules_DisablesCategory(t *testing.T) {
	s := simplify.New()
	s.RemoveRules(simplify.CatAlgebraic)

	e := expr.Add(sym("x"), expr.Zero())
	require.Equal(t, "x + 0", s.Simplify(e).String())
}

func TestCategory_String(t *testing.T) {
	require.Equal(t, "algebraic", simplify.CatAlgebraic.String())
	require.Equal(t, "symmetry", simplify.CatSymmetry.String())
	require.Equal(t, "unknown", simplify.Category(99).String())
}
