package expr_test

import (
	"fmt"

	"github.com/katalvlaran/qcalgebra/core"
	"github.com/katalvlaran/qcalgebra/expr"
)

// Scenario:
//
//	Build the one-electron part of a Hamiltonian term symbolically:
//	h[p,q] multiplied by the excitation a†_p a_q, and render it.
func Example() {
	p := core.General("p")
	q := core.General("q")

	h := expr.Tensor(core.OneElectronIntegral("h", p, q))
	ex := expr.Product(core.NewProduct(core.Creation(p), core.Annihilation(q)))

	term := expr.Multiply(h, ex)
	fmt.Println(term)
	// Output:
	// h[p,q] * a†[p] a[q]
}

// Scenario:
//
//	Differentiate x*y with respect to x by the product rule.
func ExampleExpr_derivative() {
	x := core.NewSymbol("x")
	y := core.NewSymbol("y")

	e := expr.Multiply(expr.Symbol(x), expr.Symbol(y))
	fmt.Println(e.Derivative(x))
	// Output:
	// 1 * y + x * 0
}
