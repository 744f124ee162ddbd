package simplify_test

import (
	"fmt"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/expr"
	"github.com/katalvlaran/qcalgebra/simplify"
)

// Scenario:
//
//	Clean up an expression littered with additive zeros and a
//	multiplicative one: ((x+0)*(y+1*0))+0.
//
// The default rule set removes the identities bottom-up and converges
// to the bare product in a handful of passes.
//
// Complexity: O(passes · nodes · rules)
func ExampleSimplifier_Simplify() {
	x := expr.Symbol(core.NewSymbol("x"))
	y := expr.Symbol(core.NewSymbol("y"))

	e := expr.Add(
		expr.Multiply(
			expr.Add(x, expr.Zero()),
			expr.Add(y, expr.Multiply(expr.One(), expr.Zero())),
		),
		expr.Zero(),
	)

	s := simplify.New()
	fmt.Println(s.Simplify(e))
	// Output:
	// x * y
}

// Scenario:
//
//	Expand a commutator of two compound operands and watch each rule
//	firing through the trace log.
func ExampleSimplifier_Trace() {
	a := expr.Symbol(core.NewSymbol("A"))
	b := expr.Symbol(core.NewSymbol("B"))

	s := simplify.New(simplify.WithTrace())
	out := s.Simplify(expr.Commutator(a, b))

	fmt.Println(out)
	for _, line := range s.Trace() {
		fmt.Println(line)
	}
	// Output:
	// A * B - B * A
	// commutator/ExpandCommutator: [A, B] => A * B - B * A
}

// Scenario:
//
//	Distribute a product of sums into the canonical four-term form.
func ExampleSimplifier_ApplyCategory() {
	a := expr.Symbol(core.NewSymbol("a"))
	b := expr.Symbol(core.NewSymbol("b"))
	c := expr.Symbol(core.NewSymbol("c"))
	d := expr.Symbol(core.NewSymbol("d"))

	e := expr.Multiply(expr.Add(a, b), expr.Add(c, d))

	s := simplify.New()
	fmt.Println(s.ApplyCategory(e, simplify.CatDistributive))
	// Output:
	// a * c + a * d + b * c + b * d
}
